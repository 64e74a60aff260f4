package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ngoconnect/ngo-connect-api/internal/middleware"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
	"github.com/ngoconnect/ngo-connect-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	return middleware.Claims(c)
}

// bindJSON decodes the request body into dst and writes a validation error when it cannot.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return false
	}
	return true
}
