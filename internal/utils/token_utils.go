package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tallyhq/tally_pro_app/internal/platform/config"
)

// GenerateJWT creates a signed JWT for the given user ID using the
// configured secret, issuer and expiry duration.
func GenerateJWT(userID string, cfg *config.Config) (string, error) {
	if cfg.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTExpiryDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseAndValidateJWT parses the token string and returns the subject
// (user ID) if the token is valid.
func ParseAndValidateJWT(tokenString string, jwtSecret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}
