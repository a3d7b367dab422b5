// internal/auth/context.go
package auth

import (
	"context"
	"errors"
	"fmt"
)

type contextKey string

const userIDKey = contextKey("userID")

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Сохраняет userID в контексте
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Достает userID из контекста
func GetUserIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", fmt.Errorf("user ID not found in context: %w", ErrUnauthorized)
	}
	return id, nil
}
