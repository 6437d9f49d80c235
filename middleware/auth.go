package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultUserID is the identity assumed for unauthenticated requests. The
// service runs without a signup flow, so anonymous traffic maps to one
// shared demo account.
const DefaultUserID = "default"

// Identity resolves the requesting user. Requests without an Authorization
// header fall back to the default user; requests that do present a bearer
// token must carry a valid one.
func Identity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Set("user_id", DefaultUserID)
		c.Next()
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		userID = DefaultUserID
	}
	c.Set("user_id", userID)

	c.Next()
}

// UserID reads the identity set by Identity.
func UserID(c *gin.Context) string {
	if id, ok := c.Get("user_id"); ok {
		if s, ok := id.(string); ok && s != "" {
			return s
		}
	}
	return DefaultUserID
}
