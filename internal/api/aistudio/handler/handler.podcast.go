package aistudiohdl

import (
	"fmt"

	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// PodcastHandler atiende la generación de podcasts educativos.
type PodcastHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.PodcastService
}

// NewPodcastHandler crea un PodcastHandler nuevo.
func NewPodcastHandler() (*PodcastHandler, error) {
	assembler, err := aistudiosvc.GetPromptAssembler()
	if err != nil {
		return nil, fmt.Errorf("error al crear el handler de podcasts: %v", err)
	}
	service, err := aistudiosvc.NewPodcastService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de podcasts: %v", err)
	}
	return &PodcastHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleGenerate genera un podcast completo: guión y audio.
func (h *PodcastHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.PodcastGenerateInput
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
	podcast, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, podcast, err)
	return nil
}

// HandleUpdate edita el título o el guión de un podcast.
func (h *PodcastHandler) HandleUpdate(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input dto.PodcastUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	podcast, err := h.service.Update(c.Context(), id, &input)
	h.HandleResponse(c, podcast, err)
	return nil
}

// HandleRegenerateScript vuelve a generar el guión y el audio.
func (h *PodcastHandler) HandleRegenerateScript(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	podcast, err := h.service.RegenerateScript(c.Context(), id)
	h.HandleResponse(c, podcast, err)
	return nil
}

// HandleGenerateAudio sintetiza el audio del guión actual.
func (h *PodcastHandler) HandleGenerateAudio(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	podcast, err := h.service.GenerateAudio(c.Context(), id)
	h.HandleResponse(c, podcast, err)
	return nil
}

// HandleTranscript devuelve la transcripción textual del podcast.
func (h *PodcastHandler) HandleTranscript(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	transcript, err := h.service.GetTranscript(c.Context(), id)
	h.HandleResponse(c, fiber.Map{"transcript": transcript}, err)
	return nil
}

// HandleList lista los podcasts del usuario.
func (h *PodcastHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	podcasts, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, podcasts, err)
	return nil
}

// HandleGet devuelve un podcast por id.
func (h *PodcastHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	podcast, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, podcast, err)
	return nil
}

// HandleDelete elimina un podcast del usuario.
func (h *PodcastHandler) HandleDelete(c fiber.Ctx) error {
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

// HandleVoices devuelve las voces disponibles para los hablantes.
func (h *PodcastHandler) HandleVoices(c fiber.Ctx) error {
	h.HandleResponse(c, h.service.Voices(), nil)
	return nil
}

// HandleStyles devuelve los estilos de podcast disponibles.
func (h *PodcastHandler) HandleStyles(c fiber.Ctx) error {
	h.HandleResponse(c, h.service.Styles(), nil)
	return nil
}
