package leagues

import (
	"context"
	"errors"

	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/filter"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/shared"
)

// Service wraps league business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries a league creation request.
type CreateInput struct {
	Name string `json:"name" validate:"required,min=3,max=64"`
}

// Create registers a new league owned by the calling identity.
func (s *Service) Create(ctx context.Context, identity *session.Identity, input CreateInput) (*League, error) {
	league := &League{
		Name:    input.Name,
		OwnerID: identity.SubjectID,
	}
	if err := s.repo.Insert(ctx, league); err != nil {
		return nil, err
	}
	return league, nil
}

// List returns leagues matching a client filter expression.
func (s *Service) List(ctx context.Context, expr map[string]any) ([]League, error) {
	query, err := filter.Document(expr)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, query)
}

// ByID loads a single league.
func (s *Service) ByID(ctx context.Context, id string) (*League, error) {
	return s.repo.FindByID(ctx, id)
}

// ByOwner lists leagues owned by an account.
func (s *Service) ByOwner(ctx context.Context, ownerID string) ([]League, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// ResolveLeague is the League entity resolution entry point.
func (s *Service) ResolveLeague(ctx context.Context, id string) (any, error) {
	league, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, federation.ErrEntityNotFound
		}
		return nil, err
	}
	return league.Public(), nil
}

// RegisterEntities installs this service's entity resolvers.
func (s *Service) RegisterEntities(registry *federation.Registry) {
	registry.Register("League", s.ResolveLeague)
}
