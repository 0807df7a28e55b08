package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ServiceIdentity struct {
	Name     string
	DeviceID string
}

type ServiceClaims struct {
	Name     string `json:"name"`
	DeviceID string `json:"sid"`
	jwt.RegisteredClaims
}

// CreateServiceToken signs an HS256 token a device or batch job presents to
// the API. The secret is base64 encoded because it travels through config
// files and environment variables.
func CreateServiceToken(identity *ServiceIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}

	claims := ServiceClaims{
		Name:     identity.Name,
		DeviceID: identity.DeviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "hr-management",
			Audience:  []string{"hr-management-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretBytes)
}
