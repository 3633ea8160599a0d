package utils

import (
	"errors"
	"strings"
	"time"

	"media-service/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ClaimsFromRequest extracts and validates the bearer token. A missing
// header returns nil claims with no error so public routes can share it.
func ClaimsFromRequest(c *gin.Context) (*Claims, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return nil, nil
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	return ValidateJWT(tokenString)
}

// GenerateJWT is used by tests and local tooling; production tokens come
// from the campus identity service.
func GenerateJWT(userID, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
