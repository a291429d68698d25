package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"kankou/internal/models/request_models"
	"kankou/internal/models/response_models"
	"kankou/internal/repositories"
	"kankou/pkg/metrics"
	"kankou/pkg/utils"
)

type RecommendationServiceInterface interface {
	Questions() []request_models.QuizQuestion
	Recommend(ctx context.Context, req request_models.QuizRequest) (response_models.RecommendationResult, error)
}

type RecommendationService struct {
	spotRepository           repositories.SpotRepository
	recommendationRepository repositories.RecommendationRepository
	log                      *zap.Logger
}

func NewRecommendationService(
	spotRepository repositories.SpotRepository,
	recommendationRepository repositories.RecommendationRepository,
	log *zap.Logger,
) RecommendationServiceInterface {
	return &RecommendationService{
		spotRepository:           spotRepository,
		recommendationRepository: recommendationRepository,
		log:                      log,
	}
}

func (r *RecommendationService) Questions() []request_models.QuizQuestion {
	return QuizQuestions
}

func (r *RecommendationService) Recommend(ctx context.Context, req request_models.QuizRequest) (response_models.RecommendationResult, error) {
	key, err := AnswerKeyFrom(req.Answers)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues("invalid").Inc()
		return response_models.RecommendationResult{}, err
	}

	rows, err := r.recommendationRepository.ListRecommendations(ctx)
	if err != nil {
		return response_models.RecommendationResult{}, fmt.Errorf("recommend: %w", err)
	}
	spots, err := r.spotRepository.ListSpots(ctx)
	if err != nil {
		return response_models.RecommendationResult{}, fmt.Errorf("recommend: %w", err)
	}

	match := MatchRecommendation(rows, spots, key)
	result := response_models.RecommendationResult{
		Answers:    key,
		Matched:    match.Matched,
		Spots:      make([]response_models.SpotDetail, 0, len(match.Spots)),
		Unresolved: match.Unresolved,
	}
	for _, spot := range match.Spots {
		result.Spots = append(result.Spots, RenderDetail(spot, r.log))
	}

	for _, name := range match.Unresolved {
		metrics.RecommendationUnresolvedTotal.Inc()
		r.log.Warn("recommended spot missing from dataset",
			zap.String("spot", name),
			zap.Error(utils.ErrUnresolvedReference))
	}

	outcome := "no_match"
	if match.Matched {
		outcome = "matched"
	}
	metrics.RecommendationsTotal.WithLabelValues(outcome).Inc()

	return result, nil
}
