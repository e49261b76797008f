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

type Exhibits struct {
	store store.Store
	log   *zap.Logger
}

func NewExhibits(st store.Store, log *zap.Logger) *Exhibits {
	return &Exhibits{store: st, log: log}
}

// List returns the full exhibit collection across all categories, seeding
// the built-in defaults the first time the store comes up empty.
func (r *Exhibits) List(ctx context.Context) ([]models.Exhibit, error) {
	raw, ok, err := r.store.Get(ctx, store.ExhibitsKey)
	if err != nil {
		return nil, fmt.Errorf("load exhibits: %w", err)
	}
	metrics.StoreReads.WithLabelValues(store.ExhibitsKey).Inc()
	if !ok {
		seed := models.DefaultExhibits()
		if err := r.ReplaceAll(ctx, seed); err != nil {
			return nil, err
		}
		r.log.Info("seeded default exhibits", zap.Int("count", len(seed)))
		return seed, nil
	}
	var list []models.Exhibit
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode exhibits: %w", err)
	}
	return list, nil
}

// ListByCategory filters the global collection down to one category,
// preserving relative order. A category with no exhibits yields an empty
// list, not an error.
func (r *Exhibits) ListByCategory(ctx context.Context, categoryID string) ([]models.Exhibit, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Exhibit, 0, len(all))
	for _, e := range all {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ReplaceAll overwrites the stored collection with exactly the given list.
// Callers pass the complete global collection; this is not a merge.
func (r *Exhibits) ReplaceAll(ctx context.Context, list []models.Exhibit) error {
	if list == nil {
		list = []models.Exhibit{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode exhibits: %w", err)
	}
	if err := r.store.Put(ctx, store.ExhibitsKey, raw); err != nil {
		return fmt.Errorf("save exhibits: %w", err)
	}
	metrics.StoreWrites.WithLabelValues(store.ExhibitsKey).Inc()
	return nil
}
