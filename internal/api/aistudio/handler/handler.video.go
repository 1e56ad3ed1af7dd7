package aistudiohdl

import (
	"fmt"

	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// VideoHandler atiende la generación de videos con avatar.
type VideoHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.VideoService
}

// NewVideoHandler crea un VideoHandler nuevo.
func NewVideoHandler() (*VideoHandler, error) {
	service, err := aistudiosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de videos: %v", err)
	}
	return &VideoHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// Service expone el service para el worker de sondeo de estados.
func (h *VideoHandler) Service() *aistudiosvc.VideoService {
	return h.service
}

// HandleGenerate envía un guión al proveedor de videos con avatar.
func (h *VideoHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.VideoGenerateInput
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
	video, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, video, err)
	return nil
}

// HandleStatus consulta el estado del video contra el proveedor.
func (h *VideoHandler) HandleStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	video, err := h.service.RefreshStatus(c.Context(), id)
	h.HandleResponse(c, video, err)
	return nil
}

// HandleCancel cancela un video en curso.
func (h *VideoHandler) HandleCancel(c fiber.Ctx) error {
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
	video, err := h.service.Cancel(c.Context(), id, userID, isAdmin(c))
	h.HandleResponse(c, video, err)
	return nil
}

// HandleRegenerate reenvía un video al proveedor desde cero.
func (h *VideoHandler) HandleRegenerate(c fiber.Ctx) error {
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
	video, err := h.service.Regenerate(c.Context(), id, userID, isAdmin(c))
	h.HandleResponse(c, video, err)
	return nil
}

// HandleUpdate edita el título o la descripción de un video.
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input dto.VideoUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	video, err := h.service.Update(c.Context(), id, &input)
	h.HandleResponse(c, video, err)
	return nil
}

// HandleList lista los videos del usuario.
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videos, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, videos, err)
	return nil
}

// HandleGet devuelve un video por id.
func (h *VideoHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	video, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, video, err)
	return nil
}

// HandleDelete elimina un video del usuario.
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
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

// HandleAvatars devuelve el catálogo de avatares del proveedor.
func (h *VideoHandler) HandleAvatars(c fiber.Ctx) error {
	avatars, err := h.service.Avatars(c.Context())
	h.HandleResponse(c, avatars, err)
	return nil
}

// HandleProviderVoices devuelve las voces del proveedor de videos.
func (h *VideoHandler) HandleProviderVoices(c fiber.Ctx) error {
	voices, err := h.service.ProviderVoices(c.Context(), c.Query("language"))
	h.HandleResponse(c, voices, err)
	return nil
}

// HandleQuota devuelve la cuota restante del proveedor.
func (h *VideoHandler) HandleQuota(c fiber.Ctx) error {
	quota, err := h.service.Quota(c.Context())
	h.HandleResponse(c, quota, err)
	return nil
}
