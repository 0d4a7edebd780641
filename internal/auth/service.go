package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
)

// Service defines the behavior the auth controller depends on.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type sessionManager interface {
	Create(ctx context.Context, user models.User) (models.Session, error)
	Revoke(ctx context.Context, token string) error
}

type service struct {
	repo     Repository
	sessions sessionManager
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Repo     Repository
	Sessions sessionManager
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("auth repository is required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{repo: params.Repo, sessions: params.Sessions}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, errors.New(errors.CodeValidation, "Email is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, errors.New(errors.CodeValidation, "Password is required")
	}

	user, err := s.repo.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "persisting session")
	}

	return &LoginResponse{User: user, Token: sess.Token}, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "revoking session")
	}
	return s.repo.Logout(ctx)
}
