package handler

import (
	"github.com/gofiber/fiber/v2"

	"docshare/internal/http/middleware"
)

// errorPayload is the standardized error response body. Message carries
// optional human-readable detail; Error is the terse summary.
type errorPayload struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a terse JSON error body without leaking internal detail.
func writeError(c *fiber.Ctx, status int, errText string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     errText,
		RequestID: requestIDFromCtx(c),
	})
}

// writeErrorMessage is writeError with an extra human-readable message.
func writeErrorMessage(c *fiber.Ctx, status int, errText, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     errText,
		Message:   message,
		RequestID: requestIDFromCtx(c),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors that escape the route handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "File too large")
		default:
			return writeError(c, status, "Internal server error")
		}
	}
}
