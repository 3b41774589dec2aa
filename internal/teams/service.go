package teams

import (
	"context"
	"errors"

	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/filter"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/shared"
	"github.com/goblinball/goblinball/internal/users"
)

// Treasury and roster failures surfaced to handlers.
var (
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrUnknownSlot      = errors.New("unknown roster slot")
	ErrNotOwner         = errors.New("caller does not own the team")
)

// Service wraps team business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries a team creation request.
type CreateInput struct {
	Name     string `json:"name" validate:"required,min=3,max=64"`
	LeagueID string `json:"league" validate:"required"`
}

// Create registers a new team owned by the calling identity, funded with
// the starting treasury.
func (s *Service) Create(ctx context.Context, identity *session.Identity, input CreateInput) (*Team, error) {
	team := &Team{
		Name:     input.Name,
		LeagueID: input.LeagueID,
		OwnerID:  identity.SubjectID,
		Gold:     StartingGold,
	}
	if err := s.repo.Insert(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// List returns teams matching a client filter expression.
func (s *Service) List(ctx context.Context, expr map[string]any) ([]Team, error) {
	query, err := filter.Document(expr)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, query)
}

// ByID loads a single team.
func (s *Service) ByID(ctx context.Context, id string) (*Team, error) {
	return s.repo.FindByID(ctx, id)
}

// ByOwner lists teams owned by an account.
func (s *Service) ByOwner(ctx context.Context, ownerID string) ([]Team, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// ByLeague lists teams registered in a league.
func (s *Service) ByLeague(ctx context.Context, leagueID string) ([]Team, error) {
	return s.repo.FindByLeague(ctx, leagueID)
}

// loadOwned fetches a team and checks the caller may manage it. Admin and
// integration accounts manage any team.
func (s *Service) loadOwned(ctx context.Context, identity *session.Identity, id string) (*Team, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch identity.Role {
	case users.RoleAdmin, users.RoleIntegration:
	default:
		if team.OwnerID != identity.SubjectID {
			return nil, ErrNotOwner
		}
	}
	return team, nil
}

// AdjustGold credits (positive delta) or debits (negative delta) the team
// treasury. The balance never goes negative.
func (s *Service) AdjustGold(ctx context.Context, identity *session.Identity, id string, delta int64) (*Team, error) {
	team, err := s.loadOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if team.Gold+delta < 0 {
		return nil, ErrInsufficientGold
	}
	team.Gold += delta
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// AssignSlot places a player into a named roster slot on the team.
func (s *Service) AssignSlot(ctx context.Context, identity *session.Identity, id, slot, playerID string) (*Team, error) {
	team, err := s.loadOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if !team.Roster.Assign(slot, playerID) {
		return nil, ErrUnknownSlot
	}
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// ResolveTeam is the Team entity resolution entry point.
func (s *Service) ResolveTeam(ctx context.Context, id string) (any, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, federation.ErrEntityNotFound
		}
		return nil, err
	}
	return team.Public(), nil
}

// RegisterEntities installs this service's entity resolvers.
func (s *Service) RegisterEntities(registry *federation.Registry) {
	registry.Register("Team", s.ResolveTeam)
}
