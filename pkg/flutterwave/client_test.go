package flutterwave

import (
	"context"
	"testing"

	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientValidatesKeyAgainstEnvironment(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, config.FlutterwaveConfig{Env: "test"}, nil)
	assert.ErrorIs(t, err, errPublicKeyRequired)

	_, err = NewClient(ctx, config.FlutterwaveConfig{Env: "test", PublicKey: "FLWPUBK-live-key-X"}, nil)
	assert.Error(t, err)

	_, err = NewClient(ctx, config.FlutterwaveConfig{Env: "live", PublicKey: "FLWPUBK_TEST-abc-X"}, nil)
	assert.Error(t, err)

	_, err = NewClient(ctx, config.FlutterwaveConfig{Env: "staging", PublicKey: "FLWPUBK_TEST-abc-X"}, nil)
	assert.Error(t, err)

	client, err := NewClient(ctx, config.FlutterwaveConfig{Env: "test", PublicKey: "FLWPUBK_TEST-abc-X"}, nil)
	require.NoError(t, err)
	assert.True(t, client.Ready())
	assert.Equal(t, "UGX", client.Currency())
}

func TestNilClientIsNotReady(t *testing.T) {
	var client *Client
	assert.False(t, client.Ready())
	assert.Empty(t, client.PublicKey())
}

func TestCallbackSuccessful(t *testing.T) {
	assert.True(t, Callback{Status: "successful"}.Successful())
	assert.False(t, Callback{Status: "cancelled"}.Successful())
	assert.False(t, Callback{}.Successful())
}
