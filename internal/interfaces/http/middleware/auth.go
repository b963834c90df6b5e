package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/pkg/jwt"
	"streaming-service.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SubjectKey is the context key for the token subject
	SubjectKey = "subject"
	// RoleKey is the context key for the token role
	RoleKey = "role"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    domainerrors.CodeUnauthorized,
		"message": message,
	})
}

// AuthMiddleware validates the bearer token and stores its claims on the context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Debug(c.Request.Context(), "Authorization header missing", zap.String("path", c.Request.URL.Path))
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization format. Use: Bearer <token>")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			logger.Warn(c.Request.Context(), "Token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			if errors.Is(err, jwt.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}

// GetSubject gets the token subject from context
func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(SubjectKey)
	if !exists {
		return "", false
	}
	s, ok := subject.(string)
	return s, ok
}

// GetRole gets the token role from context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(RoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}

// RequireRole creates a middleware that requires one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRole(c)
		if !exists {
			abortUnauthorized(c, "Role not found")
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    domainerrors.CodeForbidden,
			"message": "Insufficient permissions",
		})
	}
}

// RequireAdmin creates a middleware that requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(jwt.RoleAdmin)
}
