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
	"go.mongodb.org/mongo-driver/bson"
)

// AccessCodeHandler atiende los requests de códigos de acceso de estudiantes.
type AccessCodeHandler struct {
	*basehdl.BaseHandler[models.AccessCode, authdto.AccessCodeGenerateInput, authdto.AccessCodeGenerateInput]
	codeService *authsvc.AccessCodeService
}

// NewAccessCodeHandler crea un AccessCodeHandler nuevo.
func NewAccessCodeHandler() (*AccessCodeHandler, error) {
	codeService, err := authsvc.NewAccessCodeService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de códigos de acceso: %v", err)
	}
	return &AccessCodeHandler{
		BaseHandler: basehdl.NewBaseHandler[models.AccessCode, authdto.AccessCodeGenerateInput, authdto.AccessCodeGenerateInput](codeService),
		codeService: codeService,
	}, nil
}

// HandleGenerate genera un código de acceso nuevo para un estudiante.
func (h *AccessCodeHandler) HandleGenerate(c fiber.Ctx) error {
	generatedBy, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.AccessCodeGenerateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	code, err := h.codeService.Generate(c.Context(), generatedBy, &input)
	h.HandleResponse(c, code, err)
	return nil
}

// HandleValidate valida un código de acceso y retorna el token de sesión.
// Endpoint público: el estudiante aún no está autenticado.
func (h *AccessCodeHandler) HandleValidate(c fiber.Ctx) error {
	var input authdto.AccessCodeValidateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.codeService.Validate(c.Context(), &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleRevoke desactiva un código de acceso por su ID.
func (h *AccessCodeHandler) HandleRevoke(c fiber.Ctx) error {
	codeID := utility.String2ObjectID(c.Params("id"))
	if codeID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del código no es válido", common.StatusBadRequest, nil))
		return nil
	}
	code, err := h.codeService.Revoke(c.Context(), codeID)
	h.HandleResponse(c, code, err)
	return nil
}

// HandleListByStudent lista los códigos de acceso de un estudiante.
func (h *AccessCodeHandler) HandleListByStudent(c fiber.Ctx) error {
	studentID := utility.String2ObjectID(c.Params("id"))
	if studentID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del estudiante no es válido", common.StatusBadRequest, nil))
		return nil
	}
	codes, err := h.codeService.Find(c.Context(), bson.M{"studentId": studentID}, nil)
	if codes == nil {
		codes = []models.AccessCode{}
	}
	h.HandleResponse(c, codes, err)
	return nil
}
