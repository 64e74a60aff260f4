package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
	"github.com/ngoconnect/ngo-connect-api/pkg/response"
)

// RequireRoles lets the request through only when the authenticated user holds one of roles.
// It must run after JWT.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !claims.HasRole(roles...) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "your role cannot perform this action"))
			c.Abort()
			return
		}
		c.Next()
	}
}
