package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
)

// AuthMiddleware validates the bearer token and rejects tokens revoked at
// logout. Identity is exposed to handlers via user_id/role/claims keys.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid or expired token"))
			c.Abort()
			return
		}

		revoked, err := utils.GetTokenRevoker().IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			utils.ErrorLogger.Printf("Token revocation check failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("could not verify token"))
			c.Abort()
			return
		}
		if revoked {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Token has been revoked"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}
