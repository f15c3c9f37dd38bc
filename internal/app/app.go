package app

import (
	"auth_backend/internal/config"
	"auth_backend/internal/repository/migrations"
	"context"
	"log"
	"net/http"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx := context.Background()

	// Накатить миграции до создания пула
	err = migrations.Run(ctx, s.ServiceProvider.PgConfig().DSN())
	if err != nil {
		return err
	}

	r := s.ServiceProvider.Router(ctx)

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
