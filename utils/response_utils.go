package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Error categories surfaced in the response envelope.
const (
	CategoryInvalidInput = "invalid_input"
	CategoryUnauthorized = "unauthorized"
	CategoryNotFound     = "not_found"
	CategoryProcessing   = "processing"
	CategoryInternal     = "internal"
)

// RespondWithError sends a JSON error response with a machine-readable category.
func RespondWithError(c *fiber.Ctx, statusCode int, category, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":   "error",
		"category": category,
		"message":  message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// FormatValidationErrors flattens validator/v10 errors into one readable message.
func FormatValidationErrors(err error) string {
	var parts []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			element := fmt.Sprintf("field '%s' failed on the '%s' rule", verr.Field(), verr.Tag())
			if verr.Param() != "" {
				element = fmt.Sprintf("%s (allowed: %s)", element, verr.Param())
			}
			parts = append(parts, element)
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

// SanitizeInput trims surrounding whitespace from user-provided text.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
