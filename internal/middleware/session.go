package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/log"
)

const (
	DefaultCookieName = "cal_session"
	SessionHeader     = "X-Session-ID"

	scopeKey = "scope"
)

// Session resolves the caller's session from the X-Session-ID header or the
// session cookie, minting a new one when neither holds a valid id. The id is
// echoed in both the header and a refreshed cookie.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := m.sessionID(c)

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cfg.CookieName, id, int(m.cfg.SessionTTL.Seconds()), "/", "", m.cfg.SecureCookie, true)
		c.Header(SessionHeader, id)

		c.Set(scopeKey, model.Scope{SessionID: id})
		c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), id))

		c.Next()
	}
}

func (m Middleware) sessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); validSessionID(id) {
		return id
	}
	if id, err := c.Cookie(m.cfg.CookieName); err == nil && validSessionID(id) {
		return id
	}
	return uuid.NewString()
}

func validSessionID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// GetScope returns the scope set by Session. Routes without the Session
// middleware get an empty scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}

// SetScope stores sc on the context. Used by tests and by routes that
// resolve the session differently.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}
