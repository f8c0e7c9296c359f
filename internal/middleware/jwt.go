package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"chakula/internal/config"
	"chakula/internal/models"
)

var (
	secret   []byte
	tokenTTL = time.Hour
)

// Setup wires the signing secret and token lifetime from the process config.
// Must be called once before any token is generated or validated.
func Setup(cfg *config.Config) {
	secret = []byte(cfg.JWTSecret)
	tokenTTL = cfg.TokenTTL
}

// GenerateToken issues the session credential: a signed, time-boxed JWT
// carrying the user's id, email and role.
func GenerateToken(userID uint, email string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// authenticate parses the bearer token and stores its claims on the context.
// It aborts with 401 and returns false on any failure. It never advances the
// handler chain; callers decide when c.Next() runs, so role checks can happen
// before the endpoint does.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return false
	}
	c.Set("user_id", claims["user_id"])
	c.Set("email", claims["email"])
	c.Set("role", claims["role"])
	return true
}

// RequireAuth ensures a valid JWT is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireRole ensures the JWT is valid and the user holds the given role.
func RequireRole(required models.Role) gin.HandlerFunc {
	return RequireAnyRole(required)
}

// RequireAnyRole ensures the JWT is valid and the user holds one of the
// given roles.
func RequireAnyRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		role, ok := c.MustGet("role").(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		for _, want := range allowed {
			if models.Role(role) == want {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// UserID pulls the authenticated user's id out of the JWT claims stored on
// the context.
func UserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if f, ok := v.(float64); ok {
			return uint(f)
		}
	}
	return 0
}
