package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"kankou/cmd/fx/config_fx"
	"kankou/cmd/fx/controllers_fx"
	"kankou/cmd/fx/dataset_fx"
	"kankou/cmd/fx/logger_fx"
	"kankou/cmd/fx/memcache_fx"
	"kankou/cmd/fx/recommendation_fx"
	"kankou/cmd/fx/spots_fx"
	"kankou/cmd/fx/stories_fx"
	"kankou/cmd/fx/style_fx"
	"kankou/internal/api/controllers"
	"kankou/internal/config"
	"kankou/pkg/metrics"
	"kankou/pkg/middleware"
	"kankou/web"
)

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		dataset_fx.Module,
		memcache_fx.Module,
		spots_fx.Module,
		recommendation_fx.Module,
		stories_fx.Module,
		style_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config   config.Config
	Log      *zap.Logger
	Sessions *middleware.SessionManager

	Pages           *controllers.PagesController
	Spots           *controllers.SpotsController
	Map             *controllers.MapController
	Recommendations *controllers.RecommendationController
	Stories         *controllers.StoriesController
	Health          *controllers.HealthController
}

func ProvideRouter(p routerParams) (*gin.Engine, error) {
	gin.SetMode(p.Config.GinMode)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AccessLogMiddleware(p.Log.Named("http")))
	r.SetHTMLTemplate(tmpl)

	RegisterRoutes(r, p)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	pages := r.Group("/", p.Sessions.Middleware())
	pages.GET("/", p.Pages.Index)
	pages.GET("/spots", p.Pages.Spots)
	pages.POST("/spots/select", p.Pages.SelectSpot)
	pages.POST("/spots/back", p.Pages.Back)
	pages.POST("/spots/page", p.Pages.MovePage)
	pages.GET("/map", p.Pages.Map)
	pages.GET("/proposal", p.Pages.Proposal)
	pages.POST("/proposal", p.Pages.SubmitProposal)
	pages.GET("/stories", p.Pages.Stories)

	api := r.Group("/api")
	api.GET("/spots", p.Spots.ListSpots)
	api.GET("/spots/*name", p.Spots.GetSpot)
	api.GET("/map", p.Map.GetMap)
	api.GET("/quiz", p.Recommendations.GetQuestions)
	api.POST("/recommendations", p.Recommendations.PostRecommendation)
	api.GET("/stories", p.Stories.ListStories)

	r.GET("/healthz", p.Health.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
