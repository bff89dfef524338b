package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
	"github.com/yukikurage/blog/internal/session"
)

// RequireAuth checks if the user is authenticated via session. Anonymous
// requests are sent to the login page with the original URL as "next".
func RequireAuth(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !manager.Current(c).IsAnonymous() {
			c.Next()
			return
		}

		manager.Flash(c, constants.FlashLoginRequired)
		c.Redirect(http.StatusFound, LoginURL(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// LoginURL returns the login page address that comes back to next afterwards
func LoginURL(next string) string {
	if next == "" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}
