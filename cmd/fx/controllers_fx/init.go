package controllers_fx

import (
	"go.uber.org/fx"
	"kankou/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSpotsController),
	fx.Provide(controllers.NewMapController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewStoriesController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewPagesController))
