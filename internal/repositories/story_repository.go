package repositories

import (
	"context"

	"kankou/internal/models/dataset_models"
)

type StoryRepository interface {
	ListStories(ctx context.Context) ([]dataset_models.AudioStory, error)
}

type storyRepository struct {
	store *DatasetStore
}

func NewStoryRepository(store *DatasetStore) StoryRepository {
	return &storyRepository{store: store}
}

func (r *storyRepository) ListStories(ctx context.Context) ([]dataset_models.AudioStory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Stories()
}
