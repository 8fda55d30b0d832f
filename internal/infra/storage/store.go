// Package storage provides the key-value blob primitive behind the
// persistence layer. Each entity collection is stored whole under one key;
// the backend only needs read and overwrite semantics.
package storage

import (
	"context"
	"log/slog"

	"stylebank/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Store provider names accepted in configuration.
const (
	ProviderMemory = "memory"
	ProviderBucket = "bucket"
)

// Store is the minimal key-value contract the repositories are built on.
// Reading an absent key yields (nil, false, nil), never an error.
type Store interface {
	// Read returns the blob stored under key, and whether the key exists.
	Read(ctx context.Context, key string) ([]byte, bool, error)

	// Write overwrites the blob stored under key.
	Write(ctx context.Context, key string, data []byte) error
}

// StoreParams holds dependencies for the Store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates a Store based on configuration. An absent storage
// section falls back to the in-memory backend.
func NewStore(params StoreParams) (Store, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderMemory {
		logger.Info("Using in-memory key-value store")

		return NewMemoryStore(), nil
	}

	switch cfg.Provider {
	case ProviderBucket:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for bucket provider")
		}
		logger.Info("Using bucket key-value store",
			slog.String("url", cfg.BucketURL),
		)

		store, err := NewBucketStore(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing bucket store")

				return store.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
