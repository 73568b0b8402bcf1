package auth

import (
	"net/http"
	"strings"

	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const claimsKey = "auth_claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the admin context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		SetAuthClaims(c, claims)
		c.Next()
	}
}

// bearerToken extracts the token or aborts the request with 401
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		c.Abort()
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return "", false
	}
	return tokenString, true
}

// SetAuthClaims stores the claims and the logging keys derived from them
func SetAuthClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(logger.KeyAdminID, claims.AdminID.String())
	c.Set(logger.KeyEmail, claims.Email)
	c.Set(logger.KeyOrganizationID, claims.OrganizationID.String())
	c.Set(claimsKey, claims)
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// GetOrganizationID returns the organization of the authenticated admin
func GetOrganizationID(c *gin.Context) (uuid.UUID, error) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		return uuid.Nil, apperrors.ErrMissingClaims
	}
	return claims.OrganizationID, nil
}
