package api

import (
	"errors"
	"log"

	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/validation"
	"github.com/VitaminP8/bloccit/internal/vote"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error  string            `json:"error" example:"post 42: not found"`
	Fields map[string]string `json:"fields,omitempty"`
}

var errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "invalid body")

// ErrorHandler переводит ошибки хранилищ и бизнес-логики в HTTP-статусы
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := statusOf(err)

	resp := ErrorResponse{Error: err.Error()}

	var verr *validation.Error
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		resp.Error = "internal server error"
	}

	return c.Status(status).JSON(resp)
}

func statusOf(err error) int {
	var verr *validation.Error
	var ferr *fiber.Error

	switch {
	case errors.As(err, &verr), errors.Is(err, vote.ErrInvalidVoteValue):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, auth.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.As(err, &ferr):
		return ferr.Code
	default:
		return fiber.StatusInternalServerError
	}
}
