package handlers

import (
	"errors"

	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MsgInvalidBody is returned when a request body cannot be decoded.
const MsgInvalidBody = "Invalid request body"

// NewErrorHandler maps service errors onto HTTP responses. Every response
// carries a "message"; unexpected errors are logged and, when exposeDetails
// is set, echo the underlying error under "error".
func NewErrorHandler(log *zap.SugaredLogger, exposeDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			authErr       *services.AuthError
			validationErr *services.ValidationError
			notFoundErr   *services.NotFoundError
			fiberErr      *fiber.Error
		)

		switch {
		case errors.As(err, &authErr):
			if authErr.Status < fiber.StatusInternalServerError {
				return c.Status(authErr.Status).JSON(fiber.Map{"message": authErr.Message})
			}
		case errors.As(err, &validationErr):
			body := fiber.Map{"message": validationErr.Message}
			if len(validationErr.Fields) > 0 {
				body["errors"] = validationErr.Fields
			}
			return c.Status(fiber.StatusBadRequest).JSON(body)
		case errors.As(err, &notFoundErr):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": notFoundErr.Error()})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
		case errors.As(err, &fiberErr):
			if fiberErr.Code < fiber.StatusInternalServerError {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
			}
		}

		log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "err", err)
		body := fiber.Map{"message": services.MsgInternalError}
		if exposeDetails {
			body["error"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

// parseBody decodes the request body into dst, turning any decode failure
// into a 400.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody)
	}
	return nil
}
