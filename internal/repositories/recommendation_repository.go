package repositories

import (
	"context"

	"kankou/internal/models/dataset_models"
)

type RecommendationRepository interface {
	ListRecommendations(ctx context.Context) ([]dataset_models.RecommendationRow, error)
}

type recommendationRepository struct {
	store *DatasetStore
}

func NewRecommendationRepository(store *DatasetStore) RecommendationRepository {
	return &recommendationRepository{store: store}
}

func (r *recommendationRepository) ListRecommendations(ctx context.Context) ([]dataset_models.RecommendationRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Recommendations()
}
