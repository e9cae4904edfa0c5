package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sweet-moments/storefront-api/internal/config"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"go.uber.org/zap"
)

// Context keys set by the session middleware.
const (
	ContextUserEmail = "user_email"
	ContextUserID    = "user_id"
)

// sessionClaims are the provider-issued access token claims this service
// cares about.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func parseSessionToken(cfg *config.Config, tokenString string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.IdentityJWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("token carries no email claim")
	}
	return claims, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// SessionAuth requires a valid provider-issued access token and stores the
// authenticated email and subject in the request context.
func SessionAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		claims, err := parseSessionToken(cfg, token)
		if err != nil {
			observability.Logger().Debug("session token rejected", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserID, claims.Subject)
		c.Next()
	}
}

// OptionalSessionAuth extracts identity when a valid token is present but
// never rejects the request. Used on endpoints guests may call.
func OptionalSessionAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := parseSessionToken(cfg, token); err == nil {
				c.Set(ContextUserEmail, claims.Email)
				c.Set(ContextUserID, claims.Subject)
			}
		}
		c.Next()
	}
}

// RequireAdmin checks the authenticated email against the admin allowlist.
// Must run after SessionAuth.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !cfg.IsAdminEmail(email) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
