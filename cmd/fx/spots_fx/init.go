package spots_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"kankou/internal/config"
	"kankou/internal/repositories"
	"kankou/internal/services"
)

var Module = fx.Provide(
	provideSpotService, provideMapService)

func provideSpotService(spotRepo repositories.SpotRepository, log *zap.Logger) services.SpotServiceInterface {
	return services.NewSpotService(spotRepo, log)
}

func provideMapService(spotRepo repositories.SpotRepository, cfg config.Config, log *zap.Logger) services.MapServiceInterface {
	return services.NewMapService(spotRepo, cfg.MapCenter, cfg.MapZoom, log)
}
