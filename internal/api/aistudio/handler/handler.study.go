package aistudiohdl

import (
	"fmt"

	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// FlashcardHandler atiende la generación de sets de flashcards.
type FlashcardHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.FlashcardService
}

// NewFlashcardHandler crea un FlashcardHandler nuevo.
func NewFlashcardHandler() (*FlashcardHandler, error) {
	assembler, err := aistudiosvc.GetPromptAssembler()
	if err != nil {
		return nil, fmt.Errorf("error al crear el handler de flashcards: %v", err)
	}
	service, err := aistudiosvc.NewFlashcardService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de flashcards: %v", err)
	}
	return &FlashcardHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleGenerate genera un set de flashcards sobre un tema.
func (h *FlashcardHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.FlashcardGenerateInput
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
	set, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, set, err)
	return nil
}

// HandleList lista los sets de flashcards del usuario.
func (h *FlashcardHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	sets, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, sets, err)
	return nil
}

// HandleGet devuelve un set de flashcards por id.
func (h *FlashcardHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	set, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, set, err)
	return nil
}

// HandleDelete elimina un set de flashcards del usuario.
func (h *FlashcardHandler) HandleDelete(c fiber.Ctx) error {
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

// QuizHandler atiende la generación de cuestionarios.
type QuizHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.QuizService
}

// NewQuizHandler crea un QuizHandler nuevo.
func NewQuizHandler() (*QuizHandler, error) {
	assembler, err := aistudiosvc.GetPromptAssembler()
	if err != nil {
		return nil, fmt.Errorf("error al crear el handler de cuestionarios: %v", err)
	}
	service, err := aistudiosvc.NewQuizService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de cuestionarios: %v", err)
	}
	return &QuizHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleGenerate genera un cuestionario sobre un tema.
func (h *QuizHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.QuizGenerateInput
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
	quiz, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, quiz, err)
	return nil
}

// HandleList lista los cuestionarios del usuario.
func (h *QuizHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	quizzes, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, quizzes, err)
	return nil
}

// HandleGet devuelve un cuestionario por id, con respuestas.
func (h *QuizHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	quiz, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, quiz, err)
	return nil
}

// HandleDelete elimina un cuestionario del usuario.
func (h *QuizHandler) HandleDelete(c fiber.Ctx) error {
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

// LessonContentHandler atiende la generación de contenido de lecciones.
type LessonContentHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.LessonContentService
}

// NewLessonContentHandler crea un LessonContentHandler nuevo.
func NewLessonContentHandler() (*LessonContentHandler, error) {
	assembler, err := aistudiosvc.GetPromptAssembler()
	if err != nil {
		return nil, fmt.Errorf("error al crear el handler de lecciones generadas: %v", err)
	}
	service, err := aistudiosvc.NewLessonContentService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de lecciones generadas: %v", err)
	}
	return &LessonContentHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// HandleGenerate genera el contenido de una lección sobre un tema.
func (h *LessonContentHandler) HandleGenerate(c fiber.Ctx) error {
	var input dto.LessonGenerateInput
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
	lesson, err := h.service.Generate(c.Context(), &input, userID)
	h.HandleResponse(c, lesson, err)
	return nil
}

// HandleList lista las lecciones generadas del usuario.
func (h *LessonContentHandler) HandleList(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	lessons, err := h.service.List(c.Context(), parseLessonQuery(c), userID, isAdmin(c))
	h.HandleResponse(c, lessons, err)
	return nil
}

// HandleGet devuelve una lección generada por id.
func (h *LessonContentHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	lesson, err := h.service.Get(c.Context(), id)
	h.HandleResponse(c, lesson, err)
	return nil
}

// HandleDelete elimina una lección generada del usuario.
func (h *LessonContentHandler) HandleDelete(c fiber.Ctx) error {
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
