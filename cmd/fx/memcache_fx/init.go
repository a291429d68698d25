package memcache_fx

import (
	"go.uber.org/fx"
	"kankou/internal/config"
	"kankou/internal/models/session_models"
	mem "kankou/pkg/memcache"
	"kankou/pkg/middleware"
)

var Module = fx.Provide(provideSessionStore, provideSessionManager)

func provideSessionStore() mem.Store[session_models.ViewerSession] {
	return mem.NewTTLStore[session_models.ViewerSession]()
}

func provideSessionManager(store mem.Store[session_models.ViewerSession], cfg config.Config) *middleware.SessionManager {
	return middleware.NewSessionManager(store, cfg.SessionTTL)
}
