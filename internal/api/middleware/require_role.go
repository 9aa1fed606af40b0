package middleware

import (
	"log"
	"net/http"

	"hirely-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects authenticated callers whose role is not in roles.
// Must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := GetIdentity(c)
		if err != nil {
			log.Printf("Role middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		log.Printf("Role middleware: user %s with role %q denied", identity.UserID, identity.Role)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
	}
}
