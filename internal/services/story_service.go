package services

import (
	"context"
	"fmt"

	"kankou/internal/models/dataset_models"
	"kankou/internal/models/response_models"
	"kankou/internal/repositories"
)

var trackLabels = map[string]string{
	dataset_models.LanguageJapanese: "日本語",
	dataset_models.LanguageEnglish:  "英語版",
	dataset_models.LanguageChinese:  "中国語版",
}

type StoryServiceInterface interface {
	ListStories(ctx context.Context) ([]response_models.StoryCard, error)
}

type StoryService struct {
	storyRepository repositories.StoryRepository
}

func NewStoryService(storyRepository repositories.StoryRepository) StoryServiceInterface {
	return &StoryService{storyRepository: storyRepository}
}

func (s *StoryService) ListStories(ctx context.Context) ([]response_models.StoryCard, error) {
	stories, err := s.storyRepository.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	cards := make([]response_models.StoryCard, 0, len(stories))
	for _, story := range stories {
		card := response_models.StoryCard{
			Title:       story.Title,
			HeaderImage: dataset_models.StringPtrValue(story.HeaderImageURL),
			Tracks:      make([]response_models.StoryTrack, 0, len(story.Tracks)),
		}
		for _, t := range story.Tracks {
			card.Tracks = append(card.Tracks, response_models.StoryTrack{
				Language: t.Language,
				Label:    trackLabels[t.Language],
				URL:      t.URL,
			})
		}
		cards = append(cards, card)
	}
	return cards, nil
}
