package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"

	"github.com/goblinball/goblinball/internal/app"
	"github.com/goblinball/goblinball/internal/players"
	"github.com/goblinball/goblinball/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, cleanup, err := app.Bootstrap(ctx, "players")
	if err != nil {
		slog.Default().Error("bootstrap", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup()

	repo := players.NewRepository(rt.Mongo)
	if err := repo.EnsureIndexes(ctx); err != nil {
		rt.Logger.Error("ensure indexes", slog.Any("error", err))
		os.Exit(1)
	}

	service := players.NewService(repo)
	service.RegisterEntities(rt.Registry)
	handler := players.NewHandler(rt.Logger, service)

	queue, err := jobs.NewClient(asynq.RedisClientOpt{Addr: rt.Cfg.RedisAddr})
	if err != nil {
		rt.Logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := queue.Close(); err != nil {
			rt.Logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	router := rt.Router(func(r chi.Router) {
		handler.MountRoutes(r)
		r.Post("/players/generate", queue.GenerateHandler(rt.Logger))
	})
	if err := app.Serve(ctx, rt.Logger, rt.Cfg, router); err != nil {
		rt.Logger.Error("serve", slog.Any("error", err))
		os.Exit(1)
	}
}
