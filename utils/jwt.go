package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// LocalVerifier verifies HS256 tokens signed with a shared secret. It stands
// in for the identity provider in development environments where no Firebase
// credentials are configured.
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier creates a LocalVerifier with the given secret.
func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

// GenerateLocalToken creates a signed HS256 token with the given subject and email.
// The token expires after the specified duration.
func GenerateLocalToken(secret, subject, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses and validates a token string and extracts the subject and email claims.
func (v *LocalVerifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, errors.New("token does not contain a valid 'sub' claim")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Identity{}, errors.New("token does not contain a valid 'email' claim")
	}

	return Identity{UID: sub, Email: email}, nil
}
