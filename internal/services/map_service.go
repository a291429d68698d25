package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"kankou/internal/models/dataset_models"
	"kankou/internal/models/response_models"
	"kankou/internal/repositories"
)

type MapServiceInterface interface {
	RenderMap(ctx context.Context) (response_models.MapView, error)
}

type MapService struct {
	spotRepository repositories.SpotRepository
	center         dataset_models.Coordinate
	zoom           int
	log            *zap.Logger
}

func NewMapService(spotRepository repositories.SpotRepository, center dataset_models.Coordinate, zoom int, log *zap.Logger) MapServiceInterface {
	return &MapService{
		spotRepository: spotRepository,
		center:         center,
		zoom:           zoom,
		log:            log,
	}
}

func (m *MapService) RenderMap(ctx context.Context) (response_models.MapView, error) {
	spots, err := m.spotRepository.ListSpots(ctx)
	if err != nil {
		return response_models.MapView{}, fmt.Errorf("render map: %w", err)
	}

	view := BuildMapView(spots, m.center, m.zoom, m.log)
	if view.Skipped > 0 {
		m.log.Info("map rendered with skipped spots",
			zap.Int("markers", len(view.Markers)),
			zap.Int("skipped", view.Skipped))
	}
	return view, nil
}
