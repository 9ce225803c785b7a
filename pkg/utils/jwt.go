package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// CreateSessionToken mints the locally signed token used when the remote auth
// endpoint cannot be reached and the dev fallback credentials were provided.
func CreateSessionToken(userID string, role string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userId"] = userID
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}
