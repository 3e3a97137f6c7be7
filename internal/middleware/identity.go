package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-be/internal/auth"
	"storefront-be/internal/logger"
	"storefront-be/internal/user"
)

// Identity resolves the request's principal from the session token.
// Missing, malformed, expired or otherwise invalid tokens all degrade
// to an anonymous request; the route guards decide whether anonymous
// is acceptable.
func Identity(tokens *auth.TokenManager, users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokens.ExtractToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		log := logger.FromCtx(c.Request.Context())

		username, err := tokens.Parse(tokenStr)
		if err != nil {
			log.Debug("token rejected", zap.Error(err))
			c.Next()
			return
		}

		u, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			log.Debug("token subject unknown", zap.String("username", username))
			c.Next()
			return
		}

		roles := make([]string, 0, len(u.Roles))
		for _, r := range u.Roles {
			roles = append(roles, string(r))
		}

		ctx := auth.WithPrincipal(c.Request.Context(), &auth.Principal{
			UserID:   u.ID,
			Username: u.Username,
			Email:    u.Email,
			Roles:    roles,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.PrincipalFrom(c.Request.Context()) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Full authentication is required to access this resource",
				"status":  false,
			})
			return
		}
		c.Next()
	}
}

// RequireRole rejects authenticated requests lacking the role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := auth.PrincipalFrom(c.Request.Context())
		if p == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Full authentication is required to access this resource",
				"status":  false,
			})
			return
		}
		if !p.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Access Denied",
				"status":  false,
			})
			return
		}
		c.Next()
	}
}
