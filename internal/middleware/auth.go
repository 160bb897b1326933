package middleware

import (
	"net/http"
	"strings"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if len(allowedRoles) > 0 {
			roleAllowed := false
			for _, role := range allowedRoles {
				if role == claims.Role {
					roleAllowed = true
					break
				}
			}
			if !roleAllowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}
		}

		c.Set("retailerID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RetailerID reads the authenticated retailer identity the middleware stored
// on the request. Zero means unauthenticated; handlers pass the value on
// explicitly instead of letting lower layers read ambient state.
func RetailerID(c *gin.Context) uint {
	return c.GetUint("retailerID")
}
