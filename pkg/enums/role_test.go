package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHomeRoutes(t *testing.T) {
	assert.Equal(t, "/admin", RoleAdmin.HomeRoute())
	assert.Equal(t, "/dashboard", RoleCollector.HomeRoute())
	assert.Equal(t, "/nursery", RoleNursery.HomeRoute())
	assert.Equal(t, "/partner", RolePartner.HomeRoute())
	assert.Equal(t, LoginRoute, Role("superuser").HomeRoute())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("nursery")
	require.NoError(t, err)
	assert.Equal(t, RoleNursery, role)

	_, err = ParseRole("root")
	assert.Error(t, err)
}

func TestPaymentStatusValidity(t *testing.T) {
	assert.True(t, PaymentStatusPending.IsValid())
	assert.True(t, PaymentStatusRefunded.IsValid())
	assert.False(t, PaymentStatus("settled").IsValid())
}
