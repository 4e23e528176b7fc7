// Package store selects the key-value store implementation from
// configuration.
package store

import (
	"log/slog"

	"washline/config"
	"washline/internal/domain/kvstore"
	"washline/internal/infra/store/memory"
	"washline/internal/infra/store/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerMemory   = "memory"
	providerPostgres = "postgres"
)

// Params holds dependencies for the store provider, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a kvstore.Store based on configuration.
func New(params Params) (kvstore.Store, error) {
	cfg := params.Config.Store
	logger := params.Logger

	// Default to the in-process store when nothing is configured.
	if cfg == nil || cfg.Provider == "" || cfg.Provider == providerMemory {
		logger.Info("Using in-memory key-value store; data will not survive restarts")

		return memory.New(), nil
	}

	switch cfg.Provider {
	case providerPostgres:
		logger.Info("Using PostgreSQL key-value store",
			slog.String("table", cfg.Table),
		)

		return postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}
}
