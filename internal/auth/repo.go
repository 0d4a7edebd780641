package auth

import (
	"context"
	"strings"

	"github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
)

const usersKey = "auth_users"

const invalidCredentialsMessage = "Invalid credentials. Use demo123 as password."

// Repository resolves credentials against the seeded user list.
type Repository interface {
	Login(ctx context.Context, creds LoginRequest) (models.User, error)
	Logout(ctx context.Context) error
}

type repository struct {
	users *store.Collection[models.SeedUser]
}

// NewRepository builds an auth repository over the storage backend, seeding
// the given user list on first read.
func NewRepository(kv store.KV, seed []models.SeedUser, onCorrupt store.CorruptHook) Repository {
	if seed == nil {
		seed = DefaultUsers()
	}
	return &repository{
		users: store.NewCollection(kv, usersKey, seed, onCorrupt),
	}
}

// Login matches the email case-insensitively, compares the stored demo
// password verbatim, and returns the user with the password stripped.
func (r *repository) Login(ctx context.Context, creds LoginRequest) (models.User, error) {
	users, err := r.users.All(ctx)
	if err != nil {
		return models.User{}, errors.Wrap(errors.CodeDependency, err, "loading users")
	}

	email := strings.ToLower(creds.Email)
	for _, candidate := range users {
		if strings.ToLower(candidate.Email) != email {
			continue
		}
		if candidate.Password != creds.Password {
			break
		}
		return candidate.User, nil
	}
	return models.User{}, errors.New(errors.CodeUnauthorized, invalidCredentialsMessage)
}

// Logout has no repository-side work: there is no server-side token state
// beyond the session record, which the service revokes.
func (r *repository) Logout(ctx context.Context) error {
	return nil
}
