package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/shared"
)

// Service wraps account and login business rules.
type Service struct {
	repo     Repository
	sessions *session.Manager
}

// NewService constructs a new Service.
func NewService(repo Repository, sessions *session.Manager) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// SignupInput carries a registration request.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Signup registers a new account with the default role.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     RoleUser,
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginResult is returned to a successfully authenticated client.
type LoginResult struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// Login validates credentials, starts a fresh session (invalidating any
// previous one for the account), and issues a bearer token. Every failure
// reads as invalid credentials.
func (s *Service) Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error) {
	user, err := s.repo.FindByLogin(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.sessions.Begin(ctx, user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Token:    token,
	}, nil
}

// Logout deletes the caller's session record, invalidating all outstanding
// tokens for the account.
func (s *Service) Logout(ctx context.Context, subjectID string) error {
	return s.sessions.End(ctx, subjectID)
}

// Me loads the account behind a verified identity.
func (s *Service) Me(ctx context.Context, subjectID string) (*User, error) {
	return s.repo.FindByID(ctx, subjectID)
}

// ResolveInfo is the User entity resolution entry point for the federation
// layer.
func (s *Service) ResolveInfo(ctx context.Context, id string) (any, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, federation.ErrEntityNotFound
		}
		return nil, err
	}
	return user.Public(), nil
}

// RegisterEntities installs this service's entity resolvers.
func (s *Service) RegisterEntities(registry *federation.Registry) {
	registry.Register("User", s.ResolveInfo)
}
