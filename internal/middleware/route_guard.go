package middleware

import (
	"net/http"
	"strings"

	"selfcare_portal/internal/config"
	"selfcare_portal/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthCookieName = "auth-token"
	AuthAccountKey = "authAccount"
)

// RouteGuard screens every request against the public allow-lists.
// API routes answer 401 without a valid session; pages redirect to login.
// Public pages redirect a signed-in subscriber to the home page.
func RouteGuard(routes config.RouteConfig, jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		var accountID string
		if token := TokenFromRequest(c); token != "" {
			if claims, err := jwtUtil.ValidateToken(token); err == nil {
				accountID = claims.AccountID
			}
		}
		authenticated := accountID != ""
		if authenticated {
			c.Set(AuthAccountKey, accountID)
		}

		if hasPathPrefix(path, routes.APIPrefix) {
			if !authenticated && !matchesAny(path, routes.PublicAPI) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Next()
			return
		}

		public := matchesAny(path, routes.PublicPages)
		switch {
		case public && authenticated:
			c.Redirect(http.StatusFound, routes.HomePath)
			c.Abort()
			return
		case !public && !authenticated:
			c.Redirect(http.StatusFound, routes.LoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

// TokenFromRequest returns the session token from the auth cookie or, failing that,
// from a Bearer authorization header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// AuthAccountID returns the account id the guard attached to the context
func AuthAccountID(c *gin.Context) (string, bool) {
	id := c.GetString(AuthAccountKey)
	return id, id != ""
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if hasPathPrefix(path, p) {
			return true
		}
	}
	return false
}

// hasPathPrefix matches whole path segments, so /login matches /login/x but not /loginx
func hasPathPrefix(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}
