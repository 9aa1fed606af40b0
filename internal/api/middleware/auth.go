package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"hirely-api/internal/models"
	"hirely-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	identityCtx         = "identity" // Key to store the caller identity in context
)

// Identity is the verified caller attached to the request context. Handlers
// thread it into request DTOs explicitly rather than reading ambient state.
type Identity struct {
	UserID uuid.UUID
	Role   models.Role
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &services.Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*services.Claims)
		if !ok || !token.Valid {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: Error parsing user ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid user identifier in token"})
			return
		}

		c.Set(identityCtx, Identity{UserID: userID, Role: claims.Role})
		c.Next()
	}
}

// GetIdentity returns the verified caller identity set by JWTAuthMiddleware.
func GetIdentity(c *gin.Context) (Identity, error) {
	identityAny, exists := c.Get(identityCtx)
	if !exists {
		return Identity{}, errors.New("identity not found in context")
	}

	identity, ok := identityAny.(Identity)
	if !ok {
		return Identity{}, errors.New("identity in context is of invalid type")
	}

	return identity, nil
}
