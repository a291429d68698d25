package recommendation_fx

import (
	"go.uber.org/fx"
	"kankou/internal/services"
)

var Module = fx.Provide(services.NewRecommendationService)
