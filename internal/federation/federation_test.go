package federation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/goblinball/goblinball/internal/federation"
)

type league struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newRegistry() *federation.Registry {
	registry := federation.NewRegistry()
	registry.Register("League", func(ctx context.Context, id string) (any, error) {
		if id == "l1" {
			return league{ID: "l1", Name: "Badlands"}, nil
		}
		return nil, federation.ErrEntityNotFound
	})
	return registry
}

func TestRegistryResolve(t *testing.T) {
	registry := newRegistry()

	entity, err := registry.Resolve(context.Background(), "League", "l1")
	require.NoError(t, err)
	require.Equal(t, league{ID: "l1", Name: "Badlands"}, entity)

	_, err = registry.Resolve(context.Background(), "League", "missing")
	require.ErrorIs(t, err, federation.ErrEntityNotFound)

	// Unknown entity types look like missing entities.
	_, err = registry.Resolve(context.Background(), "Dragon", "d1")
	require.ErrorIs(t, err, federation.ErrEntityNotFound)
}

func TestRegistryDuplicateRegistrationPanics(t *testing.T) {
	registry := newRegistry()
	require.Panics(t, func() {
		registry.Register("League", func(context.Context, string) (any, error) { return nil, nil })
	})
}

func newServer(t *testing.T, registry *federation.Registry) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	federation.NewHandler(slog.Default(), registry).MountRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestHandlerPartialSuccess(t *testing.T) {
	server := newServer(t, newRegistry())

	body, err := json.Marshal(map[string]any{
		"representations": []map[string]string{
			{"type": "League", "id": "l1"},
			{"type": "League", "id": "missing"},
			{"type": "League", "id": "l1"},
		},
	})
	require.NoError(t, err)

	res, err := http.Post(server.URL+"/entities", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var decoded struct {
		Entities []json.RawMessage `json:"entities"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))
	require.Len(t, decoded.Entities, 3)
	require.JSONEq(t, `{"id":"l1","name":"Badlands"}`, string(decoded.Entities[0]))
	require.Equal(t, "null", string(decoded.Entities[1]))
	require.JSONEq(t, `{"id":"l1","name":"Badlands"}`, string(decoded.Entities[2]))
}

func TestHandlerStorageFailureFailsBatch(t *testing.T) {
	registry := federation.NewRegistry()
	registry.Register("Team", func(context.Context, string) (any, error) {
		return nil, errors.New("store unreachable")
	})
	server := newServer(t, registry)

	res, err := http.Post(server.URL+"/entities", "application/json",
		bytes.NewReader([]byte(`{"representations":[{"type":"Team","id":"t1"}]}`)))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestClientResolveStub(t *testing.T) {
	server := newServer(t, newRegistry())
	client := federation.NewClient(server.URL)

	raw, err := client.ResolveStub(context.Background(), "League", federation.Stub{ID: "l1", Service: federation.ServiceLeagues})
	require.NoError(t, err)

	var got league
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, "Badlands", got.Name)

	_, err = client.ResolveStub(context.Background(), "League", federation.Stub{ID: "missing", Service: federation.ServiceLeagues})
	require.ErrorIs(t, err, federation.ErrEntityNotFound)
}

func TestResolverFansOutAcrossServices(t *testing.T) {
	leaguesServer := newServer(t, newRegistry())

	userRegistry := federation.NewRegistry()
	userRegistry.Register("User", func(ctx context.Context, id string) (any, error) {
		if id == "u1" {
			return map[string]string{"id": "u1", "username": "grimgor"}, nil
		}
		return nil, federation.ErrEntityNotFound
	})
	usersServer := newServer(t, userRegistry)

	resolver := federation.NewResolver(map[string]string{
		federation.ServiceLeagues: leaguesServer.URL,
		federation.ServiceUsers:   usersServer.URL,
	})

	results, err := resolver.ResolveAll(context.Background(),
		[]string{"User", "League", "User"},
		[]federation.Stub{
			{ID: "u1", Service: federation.ServiceUsers},
			{ID: "l1", Service: federation.ServiceLeagues},
			{ID: "missing", Service: federation.ServiceUsers},
		})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.JSONEq(t, `{"id":"u1","username":"grimgor"}`, string(results[0]))
	require.JSONEq(t, `{"id":"l1","name":"Badlands"}`, string(results[1]))
	require.Equal(t, "null", string(results[2]))

	_, err = resolver.ResolveAll(context.Background(),
		[]string{"Team"},
		[]federation.Stub{{ID: "t1", Service: federation.ServiceTeams}})
	require.Error(t, err)
}
