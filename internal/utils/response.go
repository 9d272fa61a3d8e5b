package utils

import "github.com/gofiber/fiber/v2"

// Response is the `{success, message}` envelope mutating endpoints answer
// with. Listing endpoints return bare JSON arrays/objects instead.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
	})
}

func SuccessDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: false,
		Message: message,
	})
}
