package main

import (
	"log/slog"

	"creditdesk/config"
	"creditdesk/internal/domain/repository"
	"creditdesk/internal/infra/api"
	logs "creditdesk/internal/infra/log"
)

// app holds the shared wiring every subcommand needs: config, logger and
// the remote API client.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	directory repository.DirectoryRepository
}

func newApp() (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		directory: api.NewClient(cfg, logger),
	}, nil
}
