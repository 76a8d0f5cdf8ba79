package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrRefreshMismatch    = errors.New("refresh token mismatch")
	ErrForbidden          = errors.New("forbidden")
	ErrDeckNotFound       = errors.New("deck not found")
	ErrCardNotFound       = errors.New("card not found")
	ErrSessionNotFound    = errors.New("quiz session not found")
	ErrValidation         = errors.New("validation failed")
)

// StatusOf maps a service error to the HTTP status handlers respond with.
// Unknown errors are treated as internal.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrRefreshMismatch):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrDeckNotFound),
		errors.Is(err, ErrCardNotFound),
		errors.Is(err, ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
