package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"kankou/internal/models/dataset_models"
	"kankou/internal/models/response_models"
	"kankou/internal/repositories"
	"kankou/pkg/utils"
)

type SpotServiceInterface interface {
	ListSpots(ctx context.Context, query string, page, pageSize int) (response_models.SpotListPage, error)
	GetSpot(ctx context.Context, name string) (dataset_models.SpotRecord, error)
	GetSpotDetail(ctx context.Context, name string) (response_models.SpotDetail, error)
}

type SpotService struct {
	spotRepository repositories.SpotRepository
	log            *zap.Logger
}

func NewSpotService(spotRepository repositories.SpotRepository, log *zap.Logger) SpotServiceInterface {
	return &SpotService{
		spotRepository: spotRepository,
		log:            log,
	}
}

func (s *SpotService) ListSpots(ctx context.Context, query string, page, pageSize int) (response_models.SpotListPage, error) {
	if pageSize < 1 {
		return response_models.SpotListPage{}, utils.ErrInvalidPageSize
	}
	if page < 1 {
		page = 1
	}

	spots, err := s.spotRepository.ListSpots(ctx)
	if err != nil {
		return response_models.SpotListPage{}, fmt.Errorf("list spots: %w", err)
	}

	filtered := FilterSpots(spots, query)
	visible, totalPages := Paginate(filtered, pageSize, page)
	nav := PageNavigation(page, totalPages)

	items := make([]response_models.SpotSummary, 0, len(visible))
	for _, spot := range visible {
		items = append(items, response_models.SpotSummary{
			Name:     spot.Name,
			ImageURL: spot.ImageURL,
			Tags:     dataset_models.StringPtrValue(spot.Tags),
			Address:  spot.Address,
		})
	}

	return response_models.SpotListPage{
		Items:      items,
		Query:      query,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      len(filtered),
		HasPrev:    nav.HasPrev,
		HasNext:    nav.HasNext,
	}, nil
}

func (s *SpotService) GetSpot(ctx context.Context, name string) (dataset_models.SpotRecord, error) {
	spot, err := s.spotRepository.FindSpotByName(ctx, name)
	if err != nil {
		return dataset_models.SpotRecord{}, fmt.Errorf("find spot %q: %w", name, err)
	}
	if spot == nil {
		return dataset_models.SpotRecord{}, fmt.Errorf("%w: %q", utils.ErrSpotNotFound, name)
	}
	return *spot, nil
}

func (s *SpotService) GetSpotDetail(ctx context.Context, name string) (response_models.SpotDetail, error) {
	spot, err := s.GetSpot(ctx, name)
	if err != nil {
		return response_models.SpotDetail{}, err
	}
	return RenderDetail(spot, s.log), nil
}
