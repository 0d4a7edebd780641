// Package session persists authenticated sessions in the storage port and
// mints the demo's opaque tokens. Tokens carry no signature or expiry; the
// format is part of the preserved contract and is not a security mechanism.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
)

const collectionKey = "auth_sessions"

// Manager owns the persisted session collection.
type Manager struct {
	sessions *store.Collection[models.Session]
}

// NewManager binds the manager to the storage backend. A corrupt session
// blob is reseeded to empty: every session simply becomes absent and users
// log in again.
func NewManager(kv store.KV, onCorrupt store.CorruptHook) *Manager {
	return &Manager{
		sessions: store.NewCollection(kv, collectionKey, []models.Session{}, onCorrupt),
	}
}

// MintToken builds the opaque demo token for a user id.
func MintToken(userID string, now time.Time) string {
	return fmt.Sprintf("mock-token-%s-%d", userID, now.UnixMilli())
}

// Create mints a token for the user and persists the session.
func (m *Manager) Create(ctx context.Context, user models.User) (models.Session, error) {
	sess := models.Session{User: user, Token: MintToken(user.ID, time.Now())}
	err := m.sessions.Mutate(ctx, func(items []models.Session) ([]models.Session, error) {
		// One live session per user: a re-login replaces the previous one.
		kept := items[:0]
		for _, s := range items {
			if s.User.ID != user.ID {
				kept = append(kept, s)
			}
		}
		return append(kept, sess), nil
	})
	if err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Lookup resolves a token to its session. Records that do not reference
// exactly one valid user are treated as absent, never as errors.
func (m *Manager) Lookup(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	items, err := m.sessions.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range items {
		if s.Token == token && sessionValid(s) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

// Revoke drops the session holding the token. Revoking an unknown token is
// not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.sessions.Mutate(ctx, func(items []models.Session) ([]models.Session, error) {
		kept := items[:0]
		for _, s := range items {
			if s.Token != token {
				kept = append(kept, s)
			}
		}
		return kept, nil
	})
}

func sessionValid(s models.Session) bool {
	return s.Token != "" && s.User.ID != "" && s.User.Role.IsValid()
}
