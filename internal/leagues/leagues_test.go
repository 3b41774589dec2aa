package leagues_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/leagues"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/shared"
)

type stubRepo struct {
	byID      map[string]*leagues.League
	lastQuery bson.D
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: map[string]*leagues.League{}}
}

func (s *stubRepo) Insert(ctx context.Context, league *leagues.League) error {
	for _, existing := range s.byID {
		if existing.Name == league.Name {
			return shared.ErrDuplicate
		}
	}
	league.ID = primitive.NewObjectID()
	s.byID[league.ID.Hex()] = league
	return nil
}

func (s *stubRepo) FindByID(ctx context.Context, id string) (*leagues.League, error) {
	if league, ok := s.byID[id]; ok {
		return league, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubRepo) FindByOwner(ctx context.Context, ownerID string) ([]leagues.League, error) {
	out := []leagues.League{}
	for _, league := range s.byID {
		if league.OwnerID == ownerID {
			out = append(out, *league)
		}
	}
	return out, nil
}

func (s *stubRepo) Find(ctx context.Context, query bson.D) ([]leagues.League, error) {
	s.lastQuery = query
	return []leagues.League{}, nil
}

func TestCreateAssignsCallerAsOwner(t *testing.T) {
	repo := newStubRepo()
	service := leagues.NewService(repo)

	identity := &session.Identity{SubjectID: "owner-1", Username: "grimgor", Role: "user"}
	league, err := service.Create(context.Background(), identity, leagues.CreateInput{Name: "Badlands"})
	require.NoError(t, err)
	require.Equal(t, "owner-1", league.OwnerID)
	require.False(t, league.ID.IsZero())

	_, err = service.Create(context.Background(), identity, leagues.CreateInput{Name: "Badlands"})
	require.ErrorIs(t, err, shared.ErrDuplicate)
}

func TestListTranslatesFilter(t *testing.T) {
	repo := newStubRepo()
	service := leagues.NewService(repo)

	_, err := service.List(context.Background(), map[string]any{
		"name": map[string]any{"_eq": "Badlands"},
	})
	require.NoError(t, err)

	// The repo must see the store operator, not the client marker.
	require.Equal(t, bson.D{{Key: "name", Value: bson.D{{Key: "$eq", Value: "Badlands"}}}}, repo.lastQuery)
}

func TestResolveLeagueBuildsOwnerStub(t *testing.T) {
	repo := newStubRepo()
	service := leagues.NewService(repo)

	identity := &session.Identity{SubjectID: "owner-1"}
	league, err := service.Create(context.Background(), identity, leagues.CreateInput{Name: "Badlands"})
	require.NoError(t, err)

	registry := federation.NewRegistry()
	service.RegisterEntities(registry)

	resolved, err := registry.Resolve(context.Background(), "League", league.ID.Hex())
	require.NoError(t, err)
	projection, ok := resolved.(leagues.Resolved)
	require.True(t, ok)
	require.Equal(t, federation.Stub{ID: "owner-1", Service: federation.ServiceUsers}, projection.Owner)

	_, err = registry.Resolve(context.Background(), "League", primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, federation.ErrEntityNotFound)
}

func TestCreateRequiresIdentity(t *testing.T) {
	handler := leagues.NewHandler(slog.Default(), leagues.NewService(newStubRepo()))
	router := chi.NewRouter()
	handler.MountRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	res, err := http.Post(server.URL+"/leagues", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestListRejectsMalformedFilterParam(t *testing.T) {
	handler := leagues.NewHandler(slog.Default(), leagues.NewService(newStubRepo()))
	router := chi.NewRouter()
	handler.MountRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	res, err := http.Get(server.URL + "/leagues?filter=" + url.QueryEscape("not-json"))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}
