// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/seller-products/internal/i18n"
	"github.com/javajoker/seller-products/internal/utils"
)

// SellerAuth requires a bearer token whose seller matches the :sellerId path parameter.
func SellerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			return
		}

		if !strings.EqualFold(claims.SellerID, c.Param("sellerId")) {
			utils.ForbiddenResponse(c, "")
			return
		}

		c.Set(utils.ContextKeyAuthSellerID, claims.SellerID)
		c.Next()
	}
}
