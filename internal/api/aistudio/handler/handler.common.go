// Package aistudiohdl - handlers del AI Studio.
package aistudiohdl

import (
	authmodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID extrae el ObjectID del usuario autenticado.
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID de usuario inválido en el contexto", common.StatusBadRequest, err)
	}
	return objID, nil
}

// isAdmin indica si el usuario autenticado tiene rol admin.
func isAdmin(c fiber.Ctx) bool {
	user, ok := c.Locals("user").(*authmodels.User)
	return ok && user != nil && user.HasRole(authmodels.RoleAdmin)
}

// parseIDParam valida y convierte el parámetro :id de la URL.
func parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := utility.String2ObjectID(c.Params("id"))
	if id.IsZero() {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "El ID no tiene formato de ObjectID", common.StatusBadRequest, nil)
	}
	return id, nil
}

// parseLessonQuery lee el parámetro opcional ?lessonId= del listado.
func parseLessonQuery(c fiber.Ctx) *primitive.ObjectID {
	return utility.String2ObjectIDPtr(c.Query("lessonId"))
}
