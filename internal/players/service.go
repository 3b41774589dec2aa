package players

import (
	"context"
	"errors"

	"github.com/goblinball/goblinball/internal/enums"
	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/filter"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/shared"
	"github.com/goblinball/goblinball/internal/users"
)

// ErrNotIntegration rejects player minting by ordinary accounts. Only the
// generator's integration account and admins create players.
var ErrNotIntegration = errors.New("caller may not create players")

// Service wraps player business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries a fully rolled player from the generator.
type CreateInput struct {
	Name         string           `json:"name" validate:"required"`
	LeagueID     string           `json:"league" validate:"required"`
	Cost         int64            `json:"cost" validate:"gte=0"`
	Gender       enums.Gender     `json:"gender" validate:"required"`
	Race         enums.Race       `json:"race" validate:"required"`
	Class        enums.Class      `json:"class" validate:"required"`
	Handedness   enums.Handedness `json:"handedness" validate:"required"`
	MaxHealth    int              `json:"maxHealth" validate:"gt=0"`
	Abilities    Abilities        `json:"abilities"`
	Traits       []enums.Trait    `json:"traits"`
	HiddenTraits []enums.Trait    `json:"hiddenTraits"`
}

// Validate checks the enum fields carry known wire values.
func (in CreateInput) Validate() error {
	if !in.Gender.Valid() || !in.Race.Valid() || !in.Class.Valid() || !in.Handedness.Valid() {
		return shared.ErrInvalidInput
	}
	for _, trait := range in.Traits {
		if !trait.Valid() {
			return shared.ErrInvalidInput
		}
	}
	for _, trait := range in.HiddenTraits {
		if !trait.Valid() {
			return shared.ErrInvalidInput
		}
	}
	return nil
}

// Create mints a player into the free pool of a league. Restricted to
// integration and admin accounts.
func (s *Service) Create(ctx context.Context, identity *session.Identity, input CreateInput) (*Player, error) {
	switch identity.Role {
	case users.RoleIntegration, users.RoleAdmin:
	default:
		return nil, ErrNotIntegration
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	player := &Player{
		Name:         input.Name,
		LeagueID:     input.LeagueID,
		Cost:         input.Cost,
		Gender:       input.Gender,
		Race:         input.Race,
		Class:        input.Class,
		Handedness:   input.Handedness,
		Health:       input.MaxHealth,
		MaxHealth:    input.MaxHealth,
		Abilities:    input.Abilities,
		Traits:       input.Traits,
		HiddenTraits: input.HiddenTraits,
	}
	if err := s.repo.Insert(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// List returns players matching a client filter expression, optionally
// ordered by a client sort object.
func (s *Service) List(ctx context.Context, expr, sortExpr map[string]any) ([]Player, error) {
	query, err := filter.Document(expr)
	if err != nil {
		return nil, err
	}
	sort, err := filter.SortDocument(sortExpr)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, query, sort)
}

// ByID loads a single player.
func (s *Service) ByID(ctx context.Context, id string) (*Player, error) {
	return s.repo.FindByID(ctx, id)
}

// ByLeague lists the players registered in a league.
func (s *Service) ByLeague(ctx context.Context, leagueID string) ([]Player, error) {
	return s.repo.FindByLeague(ctx, leagueID)
}

// ByTeam lists the players signed to a team.
func (s *Service) ByTeam(ctx context.Context, teamID string) ([]Player, error) {
	return s.repo.FindByTeam(ctx, teamID)
}

// SetTeam signs the player to a team, or releases them to the free pool
// when teamID is empty.
func (s *Service) SetTeam(ctx context.Context, id, teamID string) (*Player, error) {
	player, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	player.TeamID = teamID
	if err := s.repo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// SetLeague moves the player to another league.
func (s *Service) SetLeague(ctx context.Context, id, leagueID string) (*Player, error) {
	player, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	player.LeagueID = leagueID
	if err := s.repo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// ResolvePlayer is the Player entity resolution entry point.
func (s *Service) ResolvePlayer(ctx context.Context, id string) (any, error) {
	player, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, federation.ErrEntityNotFound
		}
		return nil, err
	}
	return player.Public(), nil
}

// RegisterEntities installs this service's entity resolvers.
func (s *Service) RegisterEntities(registry *federation.Registry) {
	registry.Register("Player", s.ResolvePlayer)
}
