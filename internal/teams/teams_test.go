package teams_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/shared"
	"github.com/goblinball/goblinball/internal/teams"
	"github.com/goblinball/goblinball/internal/users"
)

type stubRepo struct {
	byID      map[string]*teams.Team
	lastQuery bson.D
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: map[string]*teams.Team{}}
}

func (s *stubRepo) Insert(ctx context.Context, team *teams.Team) error {
	for _, existing := range s.byID {
		if existing.Name == team.Name {
			return shared.ErrDuplicate
		}
	}
	team.ID = primitive.NewObjectID()
	s.byID[team.ID.Hex()] = team
	return nil
}

func (s *stubRepo) FindByID(ctx context.Context, id string) (*teams.Team, error) {
	if team, ok := s.byID[id]; ok {
		copied := *team
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubRepo) FindByOwner(ctx context.Context, ownerID string) ([]teams.Team, error) {
	out := []teams.Team{}
	for _, team := range s.byID {
		if team.OwnerID == ownerID {
			out = append(out, *team)
		}
	}
	return out, nil
}

func (s *stubRepo) FindByLeague(ctx context.Context, leagueID string) ([]teams.Team, error) {
	out := []teams.Team{}
	for _, team := range s.byID {
		if team.LeagueID == leagueID {
			out = append(out, *team)
		}
	}
	return out, nil
}

func (s *stubRepo) Find(ctx context.Context, query bson.D) ([]teams.Team, error) {
	s.lastQuery = query
	return []teams.Team{}, nil
}

func (s *stubRepo) Update(ctx context.Context, team *teams.Team) error {
	if _, ok := s.byID[team.ID.Hex()]; !ok {
		return shared.ErrNotFound
	}
	copied := *team
	s.byID[team.ID.Hex()] = &copied
	return nil
}

var owner = &session.Identity{SubjectID: "owner-1", Username: "grimgor", Role: users.RoleUser}

func seedTeam(t *testing.T, service *teams.Service) *teams.Team {
	t.Helper()
	team, err := service.Create(context.Background(), owner, teams.CreateInput{
		Name:     "Badlands Bashers",
		LeagueID: "league-1",
	})
	require.NoError(t, err)
	return team
}

func TestCreateFundsStartingTreasury(t *testing.T) {
	service := teams.NewService(newStubRepo())
	team := seedTeam(t, service)

	require.Equal(t, teams.StartingGold, team.Gold)
	require.Equal(t, "owner-1", team.OwnerID)
	require.Equal(t, "league-1", team.LeagueID)
}

func TestAdjustGold(t *testing.T) {
	service := teams.NewService(newStubRepo())
	team := seedTeam(t, service)
	ctx := context.Background()

	updated, err := service.AdjustGold(ctx, owner, team.ID.Hex(), -400000)
	require.NoError(t, err)
	require.Equal(t, int64(100000), updated.Gold)

	updated, err = service.AdjustGold(ctx, owner, team.ID.Hex(), 50000)
	require.NoError(t, err)
	require.Equal(t, int64(150000), updated.Gold)

	// The treasury never goes negative, and a rejected debit leaves the
	// balance untouched.
	_, err = service.AdjustGold(ctx, owner, team.ID.Hex(), -200000)
	require.ErrorIs(t, err, teams.ErrInsufficientGold)
	current, err := service.ByID(ctx, team.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, int64(150000), current.Gold)
}

func TestAdjustGoldRequiresOwnership(t *testing.T) {
	service := teams.NewService(newStubRepo())
	team := seedTeam(t, service)
	ctx := context.Background()

	stranger := &session.Identity{SubjectID: "other", Role: users.RoleUser}
	_, err := service.AdjustGold(ctx, stranger, team.ID.Hex(), -1000)
	require.ErrorIs(t, err, teams.ErrNotOwner)

	admin := &session.Identity{SubjectID: "other", Role: users.RoleAdmin}
	_, err = service.AdjustGold(ctx, admin, team.ID.Hex(), -1000)
	require.NoError(t, err)
}

func TestAssignSlot(t *testing.T) {
	service := teams.NewService(newStubRepo())
	team := seedTeam(t, service)
	ctx := context.Background()

	updated, err := service.AssignSlot(ctx, owner, team.ID.Hex(), teams.SlotStartingPitcher, "player-1")
	require.NoError(t, err)
	require.Equal(t, "player-1", updated.Roster.StartingPitcher)

	// Singular slots replace; reserve slots accumulate.
	updated, err = service.AssignSlot(ctx, owner, team.ID.Hex(), teams.SlotStartingPitcher, "player-2")
	require.NoError(t, err)
	require.Equal(t, "player-2", updated.Roster.StartingPitcher)

	_, err = service.AssignSlot(ctx, owner, team.ID.Hex(), teams.SlotReliefPitchers, "player-3")
	require.NoError(t, err)
	updated, err = service.AssignSlot(ctx, owner, team.ID.Hex(), teams.SlotReliefPitchers, "player-4")
	require.NoError(t, err)
	require.Equal(t, []string{"player-3", "player-4"}, updated.Roster.ReliefPitchers)

	_, err = service.AssignSlot(ctx, owner, team.ID.Hex(), "dugout", "player-5")
	require.ErrorIs(t, err, teams.ErrUnknownSlot)
}

func TestListTranslatesFilter(t *testing.T) {
	repo := newStubRepo()
	service := teams.NewService(repo)

	_, err := service.List(context.Background(), map[string]any{
		"gold": map[string]any{"_gte": 100000},
	})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "gold", Value: bson.D{{Key: "$gte", Value: int32(100000)}}}}, repo.lastQuery)
}

func TestResolveTeamBuildsStubs(t *testing.T) {
	service := teams.NewService(newStubRepo())
	team := seedTeam(t, service)

	registry := federation.NewRegistry()
	service.RegisterEntities(registry)

	resolved, err := registry.Resolve(context.Background(), "Team", team.ID.Hex())
	require.NoError(t, err)
	projection, ok := resolved.(teams.Resolved)
	require.True(t, ok)
	require.Equal(t, federation.Stub{ID: "league-1", Service: federation.ServiceLeagues}, projection.League)
	require.Equal(t, federation.Stub{ID: "owner-1", Service: federation.ServiceUsers}, projection.Owner)

	_, err = registry.Resolve(context.Background(), "Team", primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, federation.ErrEntityNotFound)
}
