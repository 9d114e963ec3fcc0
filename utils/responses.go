package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/streambingo/database/models"
)

// SendJSON sends a JSON response using Fiber.
func SendJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// SendError sends an error JSON response in the `{error, details?}` shape.
func SendError(c *fiber.Ctx, statusCode int, message, details string) error {
	body := fiber.Map{"error": message}
	if details != "" {
		body["details"] = details
	}
	return SendJSON(c, statusCode, body)
}

// SendBadRequest sends a bad request error response.
func SendBadRequest(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusBadRequest, message, "")
}

// SendUnauthorized sends an unauthorized error response.
func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, message, "")
}

// SendForbidden sends a forbidden error response.
func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, message, "")
}

// SendNotFound sends a not found error response.
func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, message, "")
}

// SendInternalServerError sends an internal server error response with the
// underlying failure attached, matching the upstream-store failure policy.
func SendInternalServerError(c *fiber.Ctx, message string, err error) error {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return SendError(c, http.StatusInternalServerError, message, details)
}

// ExtractUser extracts the authenticated user from the Fiber context.
// Returns false for anonymous requests.
func ExtractUser(c *fiber.Ctx) (*models.User, bool) {
	user := c.Locals("user")
	if user == nil {
		return nil, false
	}

	authUser, ok := user.(*models.User)
	return authUser, ok
}

// GetIPAddress extracts the client IP address.
func GetIPAddress(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}

// GetUserAgent extracts the user agent.
func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
