package test

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// BearerFor returns the request headers authenticating the given user,
// signed with the secret the router verifies against.
func BearerFor(t *testing.T, user string) map[string]string {
	secret, ok := os.LookupEnv("API_JWT_SECRET")
	require.True(t, ok, "environment variable API_JWT_SECRET must be set")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err, "signing the test token failed")

	return map[string]string{"Authorization": "Bearer " + signed}
}
