// @title JStream API
// @version 1.0
// @description Playlist sharing backend: playlists, songs, likes and comments.
// @BasePath /

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jstream-server/bootstrap"
	"jstream-server/config"
	"jstream-server/database"
	"jstream-server/internal/logging"
	"jstream-server/internal/repository"
	"jstream-server/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo unavailable", "err", err)
	}
	logger.Info("connected to MongoDB", "db", cfg.MongoDB)

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsurePlaylistIndexes(ctx, db); err != nil {
		logger.Fatal("ensure indexes failed", "err", err)
	}

	app := routes.NewApp(routes.Deps{
		Config:    cfg,
		Logger:    logger,
		Playlists: repository.NewPlaylistRepository(db),
		Users:     repository.NewUserRepository(db),
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("listening", "addr", "http://localhost:"+cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
	}

	dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := database.DisconnectMongo(dctx, client); err != nil {
		logger.Error("mongo disconnect", "err", err)
	}
}
