package style_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"kankou/internal/config"
	"kankou/internal/services"
)

var Module = fx.Provide(provideStyleService)

func provideStyleService(cfg config.Config, log *zap.Logger) services.StyleServiceInterface {
	return services.NewStyleService(cfg.StylePath, log)
}
