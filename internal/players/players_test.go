package players_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goblinball/goblinball/internal/enums"
	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/players"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/shared"
	"github.com/goblinball/goblinball/internal/users"
)

type stubRepo struct {
	byID      map[string]*players.Player
	lastQuery bson.D
	lastSort  bson.D
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: map[string]*players.Player{}}
}

func (s *stubRepo) Insert(ctx context.Context, player *players.Player) error {
	player.ID = primitive.NewObjectID()
	s.byID[player.ID.Hex()] = player
	return nil
}

func (s *stubRepo) FindByID(ctx context.Context, id string) (*players.Player, error) {
	if player, ok := s.byID[id]; ok {
		copied := *player
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubRepo) FindByLeague(ctx context.Context, leagueID string) ([]players.Player, error) {
	out := []players.Player{}
	for _, player := range s.byID {
		if player.LeagueID == leagueID {
			out = append(out, *player)
		}
	}
	return out, nil
}

func (s *stubRepo) FindByTeam(ctx context.Context, teamID string) ([]players.Player, error) {
	out := []players.Player{}
	for _, player := range s.byID {
		if player.TeamID == teamID {
			out = append(out, *player)
		}
	}
	return out, nil
}

func (s *stubRepo) Find(ctx context.Context, query, sort bson.D) ([]players.Player, error) {
	s.lastQuery = query
	s.lastSort = sort
	return []players.Player{}, nil
}

func (s *stubRepo) Update(ctx context.Context, player *players.Player) error {
	if _, ok := s.byID[player.ID.Hex()]; !ok {
		return shared.ErrNotFound
	}
	copied := *player
	s.byID[player.ID.Hex()] = &copied
	return nil
}

var generator = &session.Identity{SubjectID: "gen-1", Username: "generator", Role: users.RoleIntegration}

func rolledPlayer() players.CreateInput {
	return players.CreateInput{
		Name:       "Zogwort",
		LeagueID:   "league-1",
		Cost:       42000,
		Gender:     enums.GenderMale,
		Race:       enums.RaceGoblin,
		Class:      enums.ClassRogue,
		Handedness: enums.HandednessLeft,
		MaxHealth:  9,
		Abilities: players.Abilities{
			Strength: 8, Dexterity: 17, Constitution: 12,
			Intelligence: 13, Wisdom: 10, Charisma: 11,
		},
		Traits:       []enums.Trait{enums.TraitQuick},
		HiddenTraits: []enums.Trait{enums.TraitCleptomaniac},
	}
}

func TestCreateRestrictedToIntegration(t *testing.T) {
	service := players.NewService(newStubRepo())
	ctx := context.Background()

	mortal := &session.Identity{SubjectID: "u-1", Role: users.RoleUser}
	_, err := service.Create(ctx, mortal, rolledPlayer())
	require.ErrorIs(t, err, players.ErrNotIntegration)

	player, err := service.Create(ctx, generator, rolledPlayer())
	require.NoError(t, err)
	require.Equal(t, player.MaxHealth, player.Health)
	require.Empty(t, player.TeamID)
}

func TestCreateRejectsUnknownEnumValues(t *testing.T) {
	service := players.NewService(newStubRepo())

	input := rolledPlayer()
	input.Race = enums.Race("TROLL")
	_, err := service.Create(context.Background(), generator, input)
	require.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestListTranslatesFilterAndSort(t *testing.T) {
	repo := newStubRepo()
	service := players.NewService(repo)

	_, err := service.List(context.Background(),
		map[string]any{"cost": map[string]any{"_lte": float64(50000)}},
		map[string]any{"cost": float64(-1)},
	)
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "cost", Value: bson.D{{Key: "$lte", Value: float64(50000)}}}}, repo.lastQuery)
	// Sort keys are field names; no operator rewriting applies.
	require.Equal(t, bson.D{{Key: "cost", Value: float64(-1)}}, repo.lastSort)
}

func TestSetTeamAndRelease(t *testing.T) {
	service := players.NewService(newStubRepo())
	ctx := context.Background()

	player, err := service.Create(ctx, generator, rolledPlayer())
	require.NoError(t, err)

	signed, err := service.SetTeam(ctx, player.ID.Hex(), "team-1")
	require.NoError(t, err)
	require.Equal(t, "team-1", signed.TeamID)

	released, err := service.SetTeam(ctx, player.ID.Hex(), "")
	require.NoError(t, err)
	require.Empty(t, released.TeamID)
}

func TestResolvePlayerHidesHiddenTraits(t *testing.T) {
	service := players.NewService(newStubRepo())
	ctx := context.Background()

	player, err := service.Create(ctx, generator, rolledPlayer())
	require.NoError(t, err)

	registry := federation.NewRegistry()
	service.RegisterEntities(registry)

	resolved, err := registry.Resolve(ctx, "Player", player.ID.Hex())
	require.NoError(t, err)
	projection, ok := resolved.(players.Resolved)
	require.True(t, ok)
	require.Equal(t, federation.Stub{ID: "league-1", Service: federation.ServiceLeagues}, projection.League)
	require.Nil(t, projection.Team)

	raw, err := json.Marshal(projection)
	require.NoError(t, err)
	require.NotContains(t, string(raw), string(enums.TraitCleptomaniac))
}

func TestHiddenTraitsNeverSerialize(t *testing.T) {
	service := players.NewService(newStubRepo())
	player, err := service.Create(context.Background(), generator, rolledPlayer())
	require.NoError(t, err)

	raw, err := json.Marshal(player)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "hiddenTraits")
}

func TestMetaEndpoints(t *testing.T) {
	handler := players.NewHandler(slog.Default(), players.NewService(newStubRepo()))
	router := chi.NewRouter()
	handler.MountRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	res, err := http.Get(server.URL + "/meta/classes")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var meta players.MetaSelect
	require.NoError(t, json.NewDecoder(res.Body).Decode(&meta))
	require.Len(t, meta.Values, 7)
	require.Len(t, meta.Labels, 7)
	require.Contains(t, meta.Values, "WIZARD")
	require.Contains(t, meta.Labels, "Wizard")
}
