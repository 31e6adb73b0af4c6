package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

var jwtSecret []byte

// JWTSecret loads the signing key on first use so binaries that never mint
// or verify tokens do not require the env var.
func JWTSecret() []byte {
	if jwtSecret == nil {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "property-crm-dev-secret"
		}
		jwtSecret = []byte(secret)
	}
	return jwtSecret
}

// GenerateAccessToken creates a new JWT access token for the given user
func GenerateAccessToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString(JWTSecret())
}
