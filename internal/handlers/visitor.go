package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/breakout-talents/internal/session"
)

const visitorKey = "visitor"

// VisitorMiddleware resolves the visitor cookie into a session.Visitor and
// (re)issues the cookie when a new visitor was created.
func VisitorMiddleware(store *session.Store, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)
		v := store.Resolve(id)
		if v.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, v.ID, int(ttl.Seconds()), "/", "", secure, true)
		}
		c.Set(visitorKey, v)
		c.Next()
	}
}

func visitorFrom(c *gin.Context) *session.Visitor {
	return c.MustGet(visitorKey).(*session.Visitor)
}
