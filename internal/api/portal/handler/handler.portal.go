package portalhdl

import (
	"fmt"

	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"
	portalsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/service"

	"github.com/gofiber/fiber/v3"
)

// PortalHandler atiende el portal de estudiantes.
type PortalHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	portalService   *portalsvc.PortalService
	progressService *portalsvc.StudentProgressService
}

// NewPortalHandler crea un PortalHandler nuevo.
func NewPortalHandler() (*PortalHandler, error) {
	portalService, err := portalsvc.NewPortalService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service del portal: %v", err)
	}
	progressService, err := portalsvc.NewStudentProgressService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de progreso: %v", err)
	}
	return &PortalHandler{
		BaseHandler:     basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		portalService:   portalService,
		progressService: progressService,
	}, nil
}

// HandleMe devuelve el perfil del estudiante autenticado.
func (h *PortalHandler) HandleMe(c fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	student, err := h.portalService.Me(c.Context(), studentID)
	h.HandleResponse(c, student, err)
	return nil
}

// HandleMyCourses lista los cursos matriculados con su avance.
func (h *PortalHandler) HandleMyCourses(c fiber.Ctx) error {
	studentID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	courses, err := h.portalService.MyCourses(c.Context(), studentID)
	h.HandleResponse(c, courses, err)
	return nil
}

// HandleCourseDetail devuelve la jerarquía del curso con bloqueo por nivel.
func (h *PortalHandler) HandleCourseDetail(c fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	studentID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	detail, err := h.portalService.CourseDetail(c.Context(), studentID, courseID)
	h.HandleResponse(c, detail, err)
	return nil
}

// HandleLessonContent agrega el contenido de estudio de una lección.
func (h *PortalHandler) HandleLessonContent(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	studentID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	content, err := h.portalService.GetLessonContent(c.Context(), studentID, lessonID)
	h.HandleResponse(c, content, err)
	return nil
}

// HandleMarkCompleted registra la lección como completada (idempotente).
func (h *PortalHandler) HandleMarkCompleted(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	studentID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	progress, err := h.progressService.MarkCompleted(c.Context(), studentID, lessonID)
	h.HandleResponse(c, progress, err)
	return nil
}

// HandleCourseProgress devuelve el avance del estudiante en un curso.
func (h *PortalHandler) HandleCourseProgress(c fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	studentID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	progress, err := h.progressService.CourseProgress(c.Context(), studentID, courseID)
	h.HandleResponse(c, progress, err)
	return nil
}
