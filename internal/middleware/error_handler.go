package middleware

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"jstream-server/dto"
	"jstream-server/internal/apperr"
)

// ErrorHandler is the only place request errors become HTTP responses.
func ErrorHandler(logger *log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := Classify(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", RequestID(c),
				"err", err,
			)
		}
		return c.Status(status).JSON(body)
	}
}

// Classify maps err to a status code and JSON body.
func Classify(err error) (int, dto.ErrorResponse) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			return fiber.StatusBadRequest, dto.ErrorResponse{Error: ae.Message}
		case apperr.KindNotFound:
			return fiber.StatusNotFound, dto.ErrorResponse{Error: ae.Message}
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return fe.Code, dto.ErrorResponse{Error: fe.Message}
	}

	return fiber.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Server error: %v", err)}
}
