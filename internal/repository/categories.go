// Package repository implements read/replace-all access to the two catalog
// collections. Every write is read-full, transform (by the caller),
// write-full; nothing is cached between calls.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"exhibition-catalog/internal/metrics"
	"exhibition-catalog/internal/store"
	"exhibition-catalog/models"
)

type Categories struct {
	store store.Store
	log   *zap.Logger
}

func NewCategories(st store.Store, log *zap.Logger) *Categories {
	return &Categories{store: st, log: log}
}

// List returns the stored categories in order, seeding the built-in
// defaults the first time the store comes up empty.
func (r *Categories) List(ctx context.Context) ([]models.Category, error) {
	raw, ok, err := r.store.Get(ctx, store.CategoriesKey)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	metrics.StoreReads.WithLabelValues(store.CategoriesKey).Inc()
	if !ok {
		seed := models.DefaultCategories()
		if err := r.ReplaceAll(ctx, seed); err != nil {
			return nil, err
		}
		r.log.Info("seeded default categories", zap.Int("count", len(seed)))
		return seed, nil
	}
	var list []models.Category
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return list, nil
}

// ReplaceAll overwrites the stored collection with exactly the given list.
// Callers pass the complete desired collection; this is not a merge.
func (r *Categories) ReplaceAll(ctx context.Context, list []models.Category) error {
	if list == nil {
		list = []models.Category{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	if err := r.store.Put(ctx, store.CategoriesKey, raw); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	metrics.StoreWrites.WithLabelValues(store.CategoriesKey).Inc()
	return nil
}

// Find returns the category with the given id; the second return value is
// false when no such category exists.
func (r *Categories) Find(ctx context.Context, id string) (models.Category, bool, error) {
	list, err := r.List(ctx)
	if err != nil {
		return models.Category{}, false, err
	}
	for _, c := range list {
		if c.ID == id {
			return c, true, nil
		}
	}
	return models.Category{}, false, nil
}
