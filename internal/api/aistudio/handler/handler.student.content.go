package aistudiohdl

import (
	"fmt"

	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// StudentContentHandler expone a los estudiantes el contenido generado
// que ya está completado para una lección.
type StudentContentHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *aistudiosvc.StudentContentService
}

// NewStudentContentHandler crea un StudentContentHandler nuevo.
func NewStudentContentHandler() (*StudentContentHandler, error) {
	assembler, err := aistudiosvc.GetPromptAssembler()
	if err != nil {
		return nil, fmt.Errorf("error al crear el handler de contenido para estudiantes: %v", err)
	}
	flashcards, err := aistudiosvc.NewFlashcardService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de flashcards: %v", err)
	}
	quizzes, err := aistudiosvc.NewQuizService(assembler)
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de cuestionarios: %v", err)
	}
	return &StudentContentHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     aistudiosvc.NewStudentContentService(flashcards, quizzes),
	}, nil
}

// HandleLessonFlashcards devuelve los sets de flashcards de una lección.
func (h *StudentContentHandler) HandleLessonFlashcards(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	sets, err := h.service.LessonFlashcards(c.Context(), lessonID)
	h.HandleResponse(c, sets, err)
	return nil
}

// HandleLessonQuizzes devuelve los cuestionarios de una lección sin
// marcar las respuestas correctas.
func (h *StudentContentHandler) HandleLessonQuizzes(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	quizzes, err := h.service.LessonQuizzes(c.Context(), lessonID)
	h.HandleResponse(c, quizzes, err)
	return nil
}

// HandleLessonContent devuelve todo el contenido generado de una lección.
func (h *StudentContentHandler) HandleLessonContent(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	content, err := h.service.LessonContent(c.Context(), lessonID)
	h.HandleResponse(c, content, err)
	return nil
}
