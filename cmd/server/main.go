package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiqsoft/routecore/internal/server"
	"github.com/hiqsoft/routecore/modules"
	"github.com/hiqsoft/routecore/pkg/application"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/eventbus"
)

func main() {
	conf := configuration.Use()
	logger := conf.Logger()

	pool, err := pgxpool.New(context.Background(), conf.Database.Opts)
	if err != nil {
		logger.WithError(err).Fatal("failed to create database pool")
	}
	defer pool.Close()

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		Config:   conf,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app); err != nil {
		logger.WithError(err).Fatal("failed to register modules")
	}

	srv := server.Default(app)
	logger.WithField("address", conf.SocketAddress).Info("listening")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
