// Package authhdl - handlers del dominio auth.
package authhdl

import (
	"fmt"

	authdto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	authsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler atiende los requests de autenticación y gestión de usuarios.
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler crea un UserHandler nuevo.
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de usuarios: %v", err)
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService),
		userService: userService,
	}, nil
}

// currentUserID extrae el ObjectID del usuario autenticado desde el contexto.
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

// HandleRegister registra un usuario nuevo.
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.RegisterInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Register(c.Context(), &input)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleLogin autentica con email y contraseña.
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.LoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.userService.Login(c.Context(), &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleGetProfile retorna el perfil del usuario autenticado.
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	objID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.GetProfile(c.Context(), objID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUpdateProfile actualiza el perfil del usuario autenticado.
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	objID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UpdateProfileInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.UpdateProfile(c.Context(), objID, &input)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleChangePassword cambia la contraseña del usuario autenticado.
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	objID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.ChangePasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.userService.ChangePassword(c.Context(), objID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleEnroll matricula a un estudiante en un curso. El ID del estudiante
// viene en la URL; solo admin/author llegan aquí.
func (h *UserHandler) HandleEnroll(c fiber.Ctx) error {
	studentID := utility.String2ObjectID(c.Params("id"))
	if studentID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del estudiante no es válido", common.StatusBadRequest, nil))
		return nil
	}
	var input authdto.EnrollInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	courseID := utility.String2ObjectID(input.CourseID)
	if courseID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del curso no es válido", common.StatusBadRequest, nil))
		return nil
	}
	user, err := h.userService.Enroll(c.Context(), studentID, courseID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUnenroll retira la matrícula de un estudiante en un curso.
func (h *UserHandler) HandleUnenroll(c fiber.Ctx) error {
	studentID := utility.String2ObjectID(c.Params("id"))
	if studentID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del estudiante no es válido", common.StatusBadRequest, nil))
		return nil
	}
	var input authdto.EnrollInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	courseID := utility.String2ObjectID(input.CourseID)
	if courseID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del curso no es válido", common.StatusBadRequest, nil))
		return nil
	}
	user, err := h.userService.Unenroll(c.Context(), studentID, courseID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleBlockUser deshabilita una cuenta por email.
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err := h.userService.BlockUser(c.Context(), &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleUnBlockUser habilita una cuenta deshabilitada.
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err := h.userService.UnBlockUser(c.Context(), &input)
	h.HandleResponse(c, nil, err)
	return nil
}
