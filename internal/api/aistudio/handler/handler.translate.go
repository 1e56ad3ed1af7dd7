package aistudiohdl

import (
	"fmt"

	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// TranslateHandler atiende el traductor español/portugués.
type TranslateHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.TranslateService
}

// NewTranslateHandler crea un TranslateHandler nuevo.
func NewTranslateHandler() (*TranslateHandler, error) {
	service, err := aistudiosvc.NewTranslateService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de traducción: %v", err)
	}
	return &TranslateHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleTranslate traduce un texto entre español y portugués.
func (h *TranslateHandler) HandleTranslate(c fiber.Ctx) error {
	var input dto.TranslateInput
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
	result, err := h.service.Translate(c.Context(), &input, userID)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleDetect detecta el idioma de un texto.
func (h *TranslateHandler) HandleDetect(c fiber.Ctx) error {
	var input dto.DetectLanguageInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	language, err := h.service.DetectLanguage(c.Context(), input.Text)
	h.HandleResponse(c, fiber.Map{"language": language}, err)
	return nil
}

// HandleLanguages devuelve los idiomas soportados.
func (h *TranslateHandler) HandleLanguages(c fiber.Ctx) error {
	h.HandleResponse(c, h.service.Languages(), nil)
	return nil
}

// HandleHistory devuelve las traducciones recientes del usuario.
func (h *TranslateHandler) HandleHistory(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	history, err := h.service.History(c.Context(), userID)
	h.HandleResponse(c, history, err)
	return nil
}
