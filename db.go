package main

import (
	"context"

	"go.uber.org/zap"

	"exhibition-catalog/internal/config"
	"exhibition-catalog/internal/repository"
	"exhibition-catalog/internal/store"
)

func initStore(cfg config.Config, logger *zap.Logger) store.Store {
	st, err := store.Open(cfg)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	logger.Info("store ready", zap.String("driver", cfg.StoreDriver))
	return st
}

// seedDefaults forces first-load seeding of both collections at startup.
// Listing seeds an empty store and is a no-op on one that already holds
// data.
func seedDefaults(categories *repository.Categories, exhibits *repository.Exhibits) error {
	ctx := context.Background()
	if _, err := categories.List(ctx); err != nil {
		return err
	}
	if _, err := exhibits.List(ctx); err != nil {
		return err
	}
	return nil
}
