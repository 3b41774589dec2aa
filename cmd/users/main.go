package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goblinball/goblinball/internal/app"
	"github.com/goblinball/goblinball/internal/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, cleanup, err := app.Bootstrap(ctx, "users")
	if err != nil {
		slog.Default().Error("bootstrap", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup()

	repo := users.NewRepository(rt.Mongo)
	if err := repo.EnsureIndexes(ctx); err != nil {
		rt.Logger.Error("ensure indexes", slog.Any("error", err))
		os.Exit(1)
	}

	service := users.NewService(repo, rt.Sessions)
	service.RegisterEntities(rt.Registry)
	handler := users.NewHandler(rt.Logger, service)

	router := rt.Router(handler.MountRoutes)
	if err := app.Serve(ctx, rt.Logger, rt.Cfg, router); err != nil {
		rt.Logger.Error("serve", slog.Any("error", err))
		os.Exit(1)
	}
}
