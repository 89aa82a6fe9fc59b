package response

import (
	"errors"
	"log"

	apperrors "officedesk/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *fiber.Ctx) error {
	return Error(c, fiber.StatusForbidden, "Insufficient permissions")
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ValidationError(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": errs,
	})
}

var statusByCode = map[string]int{
	apperrors.ErrNotFound.Code:           fiber.StatusNotFound,
	apperrors.ErrSessionNotFound.Code:    fiber.StatusNotFound,
	apperrors.ErrForbidden.Code:          fiber.StatusForbidden,
	apperrors.ErrInvalidCredentials.Code: fiber.StatusUnauthorized,
	apperrors.ErrEmailTaken.Code:         fiber.StatusConflict,
	apperrors.ErrInvalidInput.Code:       fiber.StatusBadRequest,
	apperrors.ErrUnavailable.Code:        fiber.StatusServiceUnavailable,
}

// FromError maps domain errors to their status; anything else is a 500
// with the detail only logged.
func FromError(c *fiber.Ctx, err error) error {
	if de, ok := apperrors.As(err); ok {
		if status, known := statusByCode[de.Code]; known {
			return c.Status(status).JSON(fiber.Map{
				"error": de.Message,
				"code":  de.Code,
			})
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return ServerError(c, "internal server error")
}
