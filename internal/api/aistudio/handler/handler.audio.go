package aistudiohdl

import (
	"fmt"

	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// AudioHandler atiende la generación de audio por texto a voz.
type AudioHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.AudioService
}

// NewAudioHandler crea un AudioHandler nuevo.
func NewAudioHandler() (*AudioHandler, error) {
	service, err := aistudiosvc.NewAudioService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de audio: %v", err)
	}
	return &AudioHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleGenerate sintetiza un audio a partir de texto.
func (h *AudioHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.AudioGenerateInput
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
	audio, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, audio, err)
	return nil
}

// HandleList lista los audios del usuario, opcionalmente por lección.
func (h *AudioHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	audios, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, audios, err)
	return nil
}

// HandleGet devuelve un audio por id.
func (h *AudioHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	audio, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, audio, err)
	return nil
}

// HandleDelete elimina un audio del usuario.
func (h *AudioHandler) HandleDelete(c fiber.Ctx) error {
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

// HandleVoices devuelve el catálogo de voces, filtrable por idioma.
func (h *AudioHandler) HandleVoices(c fiber.Ctx) error {
	h.HandleResponse(c, h.service.Voices(c.Query("language")), nil)
	return nil
}
