package repositories

import (
	"context"

	"kankou/internal/models/dataset_models"
)

type SpotRepository interface {
	ListSpots(ctx context.Context) ([]dataset_models.SpotRecord, error)
	FindSpotByName(ctx context.Context, name string) (*dataset_models.SpotRecord, error)
}

type spotRepository struct {
	store *DatasetStore
}

func NewSpotRepository(store *DatasetStore) SpotRepository {
	return &spotRepository{store: store}
}

func (r *spotRepository) ListSpots(ctx context.Context) ([]dataset_models.SpotRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Spots()
}

// FindSpotByName returns the first spot with exactly this name, or nil when there is none.
func (r *spotRepository) FindSpotByName(ctx context.Context, name string) (*dataset_models.SpotRecord, error) {
	spots, err := r.ListSpots(ctx)
	if err != nil {
		return nil, err
	}

	i, ok := r.store.spotIndex[name]
	if !ok {
		return nil, nil // default model
	}
	spot := spots[i]
	return &spot, nil
}
