package dataset_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"kankou/internal/config"
	"kankou/internal/repositories"
	"kankou/internal/services"
)

var Module = fx.Provide(
	provideDatasetStore,
	provideStatusSource,
	repositories.NewSpotRepository,
	repositories.NewRecommendationRepository,
	repositories.NewStoryRepository,
	services.NewHealthService,
)

func provideDatasetStore(cfg config.Config, log *zap.Logger) *repositories.DatasetStore {
	return repositories.NewDatasetStore(repositories.DatasetPaths{
		Spots:           cfg.SpotsPath,
		Recommendations: cfg.RecommendationsPath,
		Stories:         cfg.StoriesPath,
		Comma:           cfg.Delimiter,
	}, log)
}

func provideStatusSource(store *repositories.DatasetStore) services.DatasetStatusSource {
	return store
}
