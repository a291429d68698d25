package services

import (
	"context"

	"kankou/internal/models/dataset_models"
)

type fakeSpotRepo struct {
	spots []dataset_models.SpotRecord
	err   error
}

func (f *fakeSpotRepo) ListSpots(ctx context.Context) ([]dataset_models.SpotRecord, error) {
	return f.spots, f.err
}

func (f *fakeSpotRepo) FindSpotByName(ctx context.Context, name string) (*dataset_models.SpotRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.spots {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, nil
}

type fakeRecommendationRepo struct {
	rows []dataset_models.RecommendationRow
	err  error
}

func (f *fakeRecommendationRepo) ListRecommendations(ctx context.Context) ([]dataset_models.RecommendationRow, error) {
	return f.rows, f.err
}

type fakeStoryRepo struct {
	stories []dataset_models.AudioStory
	err     error
}

func (f *fakeStoryRepo) ListStories(ctx context.Context) ([]dataset_models.AudioStory, error) {
	return f.stories, f.err
}

func spot(name string, opts ...func(*dataset_models.SpotRecord)) dataset_models.SpotRecord {
	s := dataset_models.SpotRecord{Name: name, Address: name + "の住所"}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func withTags(tags string) func(*dataset_models.SpotRecord) {
	return func(s *dataset_models.SpotRecord) { s.Tags = dataset_models.StringPtr(tags) }
}

func withCoords(raw string) func(*dataset_models.SpotRecord) {
	return func(s *dataset_models.SpotRecord) { s.Coordinates = dataset_models.StringPtr(raw) }
}

func withImage(url string) func(*dataset_models.SpotRecord) {
	return func(s *dataset_models.SpotRecord) { s.ImageURL = dataset_models.StringPtr(url) }
}

func names(spots []dataset_models.SpotRecord) []string {
	out := make([]string, 0, len(spots))
	for _, s := range spots {
		out = append(out, s.Name)
	}
	return out
}
