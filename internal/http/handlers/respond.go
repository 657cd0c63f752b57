package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "marketplace/internal/log"
	"marketplace/internal/services"
)

const genericFailure = "Something went wrong. Please try again."

// fail maps service errors onto the JSON error surface. Anything unknown is
// logged under action and answered with a generic 500.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": err.Error()})
	case errors.Is(err, services.ErrInvalid):
		msg := strings.TrimPrefix(err.Error(), services.ErrInvalid.Error()+": ")
		applog.Security(c, "validation.fail", map[string]any{"action": action, "reason": msg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": msg})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": genericFailure})
}

func notFound(c *fiber.Ctx, resource string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": resource + " not found"})
}

func badRequest(c *fiber.Ctx, field, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": msg})
}

// parseBody decodes a JSON body, answering 422 itself when it cannot.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "request body must be valid JSON"})
	}
	return true, nil
}

// ErrorHandler is the app-wide fallback: client errors keep their code and
// message, everything else is logged and answered generically.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{"detail": fe.Message})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": genericFailure})
}
