// Package middleware contiene los middleware de autenticación y autorización.
package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
)

// JSONResponse responde JSON con Content-Type: application/json; charset=utf-8.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse responde un error al cliente con el envelope estándar.
// Vive en este package para evitar un ciclo de imports con los handlers.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
