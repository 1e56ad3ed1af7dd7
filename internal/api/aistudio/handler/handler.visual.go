package aistudiohdl

import (
	"fmt"

	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// PresentationHandler atiende la generación de presentaciones.
type PresentationHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.PresentationService
}

// NewPresentationHandler crea un PresentationHandler nuevo.
func NewPresentationHandler() (*PresentationHandler, error) {
	assembler, err := aistudiosvc.GetPromptAssembler()
	if err != nil {
		return nil, fmt.Errorf("error al crear el handler de presentaciones: %v", err)
	}
	service, err := aistudiosvc.NewPresentationService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de presentaciones: %v", err)
	}
	return &PresentationHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleGenerate genera una presentación sobre un tema.
func (h *PresentationHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.PresentationGenerateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	presentation, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, presentation, err)
	return nil
}

// HandleList lista las presentaciones del usuario.
func (h *PresentationHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	presentations, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, presentations, err)
	return nil
}

// HandleGet devuelve una presentación por id.
func (h *PresentationHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	presentation, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, presentation, err)
	return nil
}

// HandleDelete elimina una presentación del usuario.
func (h *PresentationHandler) HandleDelete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.service.Delete(c.Context(), id, userID, isAdmin(c))
	h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
	return nil
}

// MindmapHandler atiende la generación de mapas mentales.
type MindmapHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.MindmapService
}

// NewMindmapHandler crea un MindmapHandler nuevo.
func NewMindmapHandler() (*MindmapHandler, error) {
	assembler, err := aistudiosvc.GetPromptAssembler()
	if err != nil {
		return nil, fmt.Errorf("error al crear el handler de mapas mentales: %v", err)
	}
	service, err := aistudiosvc.NewMindmapService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de mapas mentales: %v", err)
	}
	return &MindmapHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleGenerate genera un mapa mental sobre un tema.
func (h *MindmapHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.MindmapGenerateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	mindmap, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, mindmap, err)
	return nil
}

// HandleList lista los mapas mentales del usuario.
func (h *MindmapHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	mindmaps, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, mindmaps, err)
	return nil
}

// HandleGet devuelve un mapa mental por id.
func (h *MindmapHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	mindmap, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, mindmap, err)
	return nil
}

// HandleDelete elimina un mapa mental del usuario.
func (h *MindmapHandler) HandleDelete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.service.Delete(c.Context(), id, userID, isAdmin(c))
	h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
	return nil
}

// HandleColors devuelve la paleta de colores por nivel del mapa.
func (h *MindmapHandler) HandleColors(c fiber.Ctx) error {
	h.HandleResponse(c, h.service.Colors(), nil)
	return nil
}
