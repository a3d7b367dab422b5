package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Middleware извлекает userID из JWT и кладет его в UserContext запроса.
// Без токена или с невалидным токеном запрос проходит анонимно.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := extractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if tokenStr == "" {
			return c.Next()
		}

		userID, err := ParseToken(tokenStr)
		if errors.Is(err, ErrSecretNotSet) {
			return fiber.NewError(fiber.StatusInternalServerError, "JWT secret not set")
		}
		if err != nil {
			return c.Next() // невалидный токен, пропускаем анонимно
		}

		c.SetUserContext(WithUserID(c.UserContext(), userID))
		return c.Next()
	}
}

// RequireAuth отклоняет анонимные запросы
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := GetUserIDFromContext(c.UserContext()); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return c.Next()
	}
}

func extractTokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
