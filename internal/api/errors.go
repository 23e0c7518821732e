package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/logging"
)

// errorHandler maps the error taxonomy onto HTTP responses. Validation
// failures are 400 with the field-naming message, absent update targets
// are 404, and store failures are 500 with a generic message; the
// internal cause is logged here and never returned to the caller.
func errorHandler(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message})
	}

	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Message})
	}

	if se, ok := apperr.AsStore(err); ok {
		logging.Error("store operation failed",
			"method", c.Method(), "path", c.Path(), "error", se.Cause)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": se.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	logging.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
