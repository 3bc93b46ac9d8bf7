package services

import (
	"context"
	"time"

	sentinal_errors "chatdb/pkg/errors"
	"chatdb/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService verifies the bearer tokens that identify API callers.
// The subject claim carries the user id.
type TokenService struct {
	jwtSecret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{jwtSecret: []byte(secret)}
}

// Issue signs a token for userID. It is used by tooling and tests; the
// service itself only verifies tokens.
func (s *TokenService) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *TokenService) ParseAccessToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", sentinal_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, sentinal_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", sentinal_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", sentinal_errors.ErrUnauthorized
	}

	return claims.Subject, nil
}

// WithUserContext stores the caller's id where both UserIDFromContext and
// the logger find it.
func WithUserContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, logger.UserIdKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(logger.UserIdKey).(string)
	return userID, ok && userID != ""
}
