package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RicardoPBJ/Vemynd-Store/internal/apperrors"
)

// MsgUnexpectedError is the only detail a client sees for a fault that is
// not a business-rule rejection.
const MsgUnexpectedError = "Ocorreu um erro inesperado."

// ErrorHandler is the single chokepoint where errors escaping a handler
// become client-visible responses: business-rule rejections map to 422
// with their message, framework errors keep their status, and anything
// else becomes a 500 with a generic body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var businessErr *apperrors.BusinessError
	if errors.As(err, &businessErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": businessErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": MsgUnexpectedError,
	})
}
