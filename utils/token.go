package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	AccessTokenTTL  = time.Hour * 24 * 7
	RefreshTokenTTL = time.Hour * 24 * 30
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateAccessToken signs a short-lived HS256 token carrying the user id as
// its subject claim.
func GenerateAccessToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
	})
	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
	})
	return token.SignedString(jwtSecret())
}

// VerifyToken checks signature and expiry. It reports validity only; claim
// extraction is left to DecodeToken.
func VerifyToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	return err == nil && token.Valid
}

// DecodeToken extracts the subject user id without re-verifying the
// signature. Callers must only trust the result after VerifyToken succeeded.
func DecodeToken(tokenString string) (uint, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return 0, err
	}
	sub, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("token has no user_id claim")
	}
	return uint(sub), nil
}
