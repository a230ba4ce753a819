package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CreateToken signs an HS256 token whose subject is the cliente id and whose
// expiry is now plus the configured TTL.
func CreateToken(clienteID uuid.UUID, secret []byte, ttl time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   clienteID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a token, returning the cliente id carried
// in the subject. Bad signature, expiry or a missing/malformed subject all
// fail with ErrTokenInvalid.
func ValidateToken(tokenString string, secret []byte) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	clienteID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return clienteID, nil
}
