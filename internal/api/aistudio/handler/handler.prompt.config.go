package aistudiohdl

import (
	"fmt"
	"strconv"

	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"

	"github.com/gofiber/fiber/v3"
)

// PromptConfigHandler atiende la configuración de prompts del AI Studio.
type PromptConfigHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	configService *aistudiosvc.PromptConfigService
	assembler     *aistudiosvc.PromptAssembler
}

// NewPromptConfigHandler crea un PromptConfigHandler nuevo.
func NewPromptConfigHandler() (*PromptConfigHandler, error) {
	configService, err := aistudiosvc.GetPromptConfigService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de configuración de prompts: %v", err)
	}
	return &PromptConfigHandler{
		BaseHandler:   basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		configService: configService,
		assembler:     aistudiosvc.NewPromptAssembler(configService),
	}, nil
}

// currentUserName devuelve el identificador textual del usuario para los
// registros de versión.
func currentUserName(c fiber.Ctx) string {
	if userID, ok := c.Locals("user_id").(string); ok {
		return userID
	}
	return ""
}

// HandleGetMasterPrompt devuelve el prompt maestro actual.
func (h *PromptConfigHandler) HandleGetMasterPrompt(c fiber.Ctx) error {
	prompt, err := h.configService.GetMasterPrompt(c.Context())
	h.HandleResponse(c, prompt, err)
	return nil
}

// HandleUpdateMasterPrompt crea una versión nueva del prompt maestro.
func (h *PromptConfigHandler) HandleUpdateMasterPrompt(c fiber.Ctx) error {
	var input dto.MasterPromptUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	prompt, err := h.configService.UpdateMasterPrompt(c.Context(), input.Content, input.Notes, currentUserName(c))
	h.HandleResponse(c, prompt, err)
	return nil
}

// HandleGetVersions devuelve el historial de versiones del prompt maestro.
func (h *PromptConfigHandler) HandleGetVersions(c fiber.Ctx) error {
	versions, err := h.configService.GetMasterPromptVersions(c.Context())
	h.HandleResponse(c, versions, err)
	return nil
}

// HandleRollback restaura una versión anterior del prompt maestro.
func (h *PromptConfigHandler) HandleRollback(c fiber.Ctx) error {
	version, err := strconv.Atoi(c.Params("version"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
			"La versión debe ser un número", common.StatusBadRequest, nil))
		return nil
	}
	prompt, err := h.configService.RollbackMasterPrompt(c.Context(), version, currentUserName(c))
	h.HandleResponse(c, prompt, err)
	return nil
}

// HandleGetStructureTemplate devuelve la plantilla de estructura.
func (h *PromptConfigHandler) HandleGetStructureTemplate(c fiber.Ctx) error {
	tmpl, err := h.configService.GetStructureTemplate(c.Context())
	h.HandleResponse(c, tmpl, err)
	return nil
}

// HandleUpdateStructureTemplate actualiza la plantilla de estructura.
func (h *PromptConfigHandler) HandleUpdateStructureTemplate(c fiber.Ctx) error {
	var input dto.StructureTemplateUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	tmpl, err := h.configService.UpdateStructureTemplate(c.Context(), input.Content, currentUserName(c))
	h.HandleResponse(c, tmpl, err)
	return nil
}

// HandleListExtensions devuelve las extensiones de todos los módulos.
func (h *PromptConfigHandler) HandleListExtensions(c fiber.Ctx) error {
	extensions, err := h.configService.ListModuleExtensions(c.Context())
	h.HandleResponse(c, extensions, err)
	return nil
}

// HandleGetExtension devuelve la extensión de un módulo.
func (h *PromptConfigHandler) HandleGetExtension(c fiber.Ctx) error {
	ext, err := h.configService.GetModuleExtension(c.Context(), c.Params("module"))
	h.HandleResponse(c, ext, err)
	return nil
}

// HandleUpdateExtension actualiza la extensión de un módulo.
func (h *PromptConfigHandler) HandleUpdateExtension(c fiber.Ctx) error {
	var input dto.ModuleExtensionUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	ext, err := h.configService.UpdateModuleExtension(c.Context(), c.Params("module"), input.Content, input.Parameters, currentUserName(c))
	h.HandleResponse(c, ext, err)
	return nil
}

// HandlePreview ensambla el prompt completo sin generar contenido.
func (h *PromptConfigHandler) HandlePreview(c fiber.Ctx) error {
	var input dto.PromptPreviewInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	genCtx := models.NewGenerationContext(input.Tema)
	if input.Nivel != "" {
		genCtx.Nivel = input.Nivel
	}
	genCtx.Unidad = input.Unidad
	genCtx.Duracion = input.Duracion
	genCtx.Objetivo = input.Objetivo
	genCtx.AdditionalContext = input.AdditionalContext
	genCtx.ModuleParams = input.ModuleParams

	preview, err := h.assembler.Preview(c.Context(), input.Module, genCtx)
	h.HandleResponse(c, preview, err)
	return nil
}

// HandleListModules resume los módulos disponibles.
func (h *PromptConfigHandler) HandleListModules(c fiber.Ctx) error {
	modules, err := h.configService.ListModules(c.Context())
	h.HandleResponse(c, modules, err)
	return nil
}

// HandleResetDefaults restaura toda la configuración a los valores por
// defecto.
func (h *PromptConfigHandler) HandleResetDefaults(c fiber.Ctx) error {
	err := h.configService.ResetDefaults(c.Context(), currentUserName(c))
	h.HandleResponse(c, fiber.Map{"reset": err == nil}, err)
	return nil
}
