package config_fx

import (
	"go.uber.org/fx"
	"kankou/internal/config"
)

var Module = fx.Provide(config.Load)
