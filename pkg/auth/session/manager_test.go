package session

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoUser() models.User {
	return models.User{ID: "u-1", Email: "admin@example.com", Name: "Admin", Role: enums.RoleAdmin}
}

func TestMintTokenFormat(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	token := MintToken("u-42", at)
	assert.Equal(t, "mock-token-u-42-1700000000000", token)
}

func TestCreateAndLookup(t *testing.T) {
	mgr := NewManager(store.NewMemory(), nil)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, demoUser())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sess.Token, "mock-token-u-1-"))

	found, err := mgr.Lookup(ctx, sess.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "admin@example.com", found.User.Email)
}

func TestLookupUnknownTokenIsAbsent(t *testing.T) {
	mgr := NewManager(store.NewMemory(), nil)

	found, err := mgr.Lookup(context.Background(), "mock-token-nobody-1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestReloginReplacesPreviousSession(t *testing.T) {
	mgr := NewManager(store.NewMemory(), nil)
	ctx := context.Background()

	first, err := mgr.Create(ctx, demoUser())
	require.NoError(t, err)
	second, err := mgr.Create(ctx, demoUser())
	require.NoError(t, err)

	found, err := mgr.Lookup(ctx, first.Token)
	require.NoError(t, err)
	if first.Token != second.Token {
		assert.Nil(t, found, "old session should be gone after re-login")
	}

	found, err = mgr.Lookup(ctx, second.Token)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestRevoke(t *testing.T) {
	mgr := NewManager(store.NewMemory(), nil)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, demoUser())
	require.NoError(t, err)
	require.NoError(t, mgr.Revoke(ctx, sess.Token))

	found, err := mgr.Lookup(ctx, sess.Token)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Revoking again is a no-op.
	assert.NoError(t, mgr.Revoke(ctx, sess.Token))
}

func TestCorruptSessionBlobTreatedAsAbsent(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Write(ctx, collectionKey, []byte("###")))

	corrupted := false
	mgr := NewManager(kv, func(string, error) { corrupted = true })

	found, err := mgr.Lookup(ctx, "mock-token-u-1-1")
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.True(t, corrupted)
}

func TestInvalidRecordTreatedAsAbsent(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()

	mgr := NewManager(kv, nil)
	broken := models.Session{Token: "mock-token-ghost-1", User: models.User{ID: "", Role: "ghost"}}
	require.NoError(t, kv.Write(ctx, collectionKey, mustJSON(t, []models.Session{broken})))

	found, err := mgr.Lookup(ctx, broken.Token)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
