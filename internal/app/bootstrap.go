package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goblinball/goblinball/internal/federation"
	"github.com/goblinball/goblinball/internal/observability"
	"github.com/goblinball/goblinball/internal/platform/cache"
	"github.com/goblinball/goblinball/internal/platform/db"
	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/token"
)

// Runtime bundles the dependencies every service main wires the same way.
type Runtime struct {
	Cfg      *Config
	Logger   *slog.Logger
	Mongo    *mongo.Database
	Redis    *redis.Client
	Sessions *session.Manager
	Auth     *session.Authenticator
	Metrics  *observability.Metrics
	Registry *federation.Registry
	Resolver *federation.Resolver
}

// Bootstrap loads configuration and connects the shared backends for a
// named service. The returned cleanup closes the connections.
func Bootstrap(ctx context.Context, service string) (*Runtime, func(), error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := NewLogger(cfg).With(slog.String("service", service))

	mongoClient, err := db.New(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, nil, err
	}

	codec := token.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	store := session.NewRedisStore(redisClient, cfg.SessionTTL)

	rt := &Runtime{
		Cfg:      cfg,
		Logger:   logger,
		Mongo:    mongoClient.Database(cfg.MongoDB),
		Redis:    redisClient,
		Sessions: session.NewManager(codec, store),
		Auth:     session.NewAuthenticator(codec, store),
		Metrics:  observability.NewMetrics(service),
		Registry: federation.NewRegistry(),
		Resolver: federation.NewResolver(cfg.PeerURLs()),
	}
	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect", slog.Any("error", err))
		}
	}
	return rt, cleanup, nil
}

// Router assembles the service router: common middleware, health and
// metrics endpoints, the entity resolution endpoint, and the service's own
// routes.
func (rt *Runtime) Router(mount func(chi.Router)) chi.Router {
	router := chi.NewRouter()
	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:        rt.Logger,
		Config:        rt.Cfg,
		Authenticator: rt.Auth,
		Metrics:       rt.Metrics,
	}) {
		router.Use(mw)
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", rt.Metrics.Handler())

	federation.NewHandler(rt.Logger, rt.Registry).MountRoutes(router)
	if mount != nil {
		mount(router)
	}
	return router
}
