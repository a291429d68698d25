package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kankou/internal/models/session_models"
	"kankou/pkg/memcache"
	"kankou/pkg/metrics"
)

const (
	SessionCookie = "kankou_sid"
	sessionKey    = "viewer_session"
)

// SessionManager keeps one ViewerSession per browser, keyed by an opaque cookie.
type SessionManager struct {
	store memcache.Store[session_models.ViewerSession]
	ttl   time.Duration
}

func NewSessionManager(store memcache.Store[session_models.ViewerSession], ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, ttl: ttl}
}

// Middleware loads the viewer's session, or starts a new one, before the handler runs and
// writes it back afterwards. Every request extends the cookie and the stored entry by ttl.
func (m *SessionManager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.load(c)

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, int(m.ttl.Seconds()), "/", "", false, true)
		c.Set(sessionKey, sess)

		c.Next()

		m.store.Set(sess.ID, *sess, m.ttl)
		metrics.ActiveSessions.Set(float64(m.store.Len()))
	}
}

func (m *SessionManager) load(c *gin.Context) *session_models.ViewerSession {
	if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
		if sess, ok := m.store.Get(id); ok {
			return &sess
		}
	}
	sess := session_models.NewViewerSession(uuid.New().String())
	return &sess
}

// Session returns the viewer session attached by SessionManager.Middleware. Changes made
// through the pointer are saved when the request completes. Outside the middleware it
// returns a throwaway session so handlers never see nil.
func Session(c *gin.Context) *session_models.ViewerSession {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*session_models.ViewerSession); ok {
			return sess
		}
	}
	sess := session_models.NewViewerSession("")
	c.Set(sessionKey, &sess)
	return &sess
}
