package middleware

import (
	"net/http"
	"strings"
	"time"

	"fleetsecure-api/authz"
	"fleetsecure-api/config"
	"fleetsecure-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	IsActive bool   `json:"is_active"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given account
func GenerateToken(account *models.Account) (string, error) {
	claims := Claims{
		UserID:   account.ID,
		Username: account.Username,
		IsAdmin:  account.IsAdmin,
		IsActive: account.IsActive,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects the principal into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		if !claims.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
			c.Abort()
			return
		}
		c.Set(principalKey, &authz.Principal{
			ID:       claims.UserID,
			IsAdmin:  claims.IsAdmin,
			IsActive: claims.IsActive,
		})
		c.Next()
	}
}

// Principal extracts the authenticated principal from context; nil when the
// request did not pass AuthRequired.
func Principal(c *gin.Context) *authz.Principal {
	val, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	return val.(*authz.Principal)
}
