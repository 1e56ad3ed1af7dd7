// Package coursehdl - handlers del dominio de cursos.
package coursehdl

import (
	"fmt"

	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"
	coursedto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	coursesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseHandler atiende los requests de cursos.
type CourseHandler struct {
	*basehdl.BaseHandler[models.Course, coursedto.CourseCreateInput, coursedto.CourseUpdateInput]
	courseService    *coursesvc.CourseService
	hierarchyService *coursesvc.HierarchyService
}

// NewCourseHandler crea un CourseHandler nuevo.
func NewCourseHandler() (*CourseHandler, error) {
	courseService, err := coursesvc.NewCourseService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de cursos: %v", err)
	}
	hierarchyService, err := coursesvc.NewHierarchyService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de jerarquía: %v", err)
	}
	return &CourseHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.Course, coursedto.CourseCreateInput, coursedto.CourseUpdateInput](courseService),
		courseService:    courseService,
		hierarchyService: hierarchyService,
	}, nil
}

// parseIDParam valida y convierte el parámetro :id de la URL.
func parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := utility.String2ObjectID(c.Params("id"))
	if id.IsZero() {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "El ID no tiene formato de ObjectID", common.StatusBadRequest, nil)
	}
	return id, nil
}

// HandlePublish publica un curso.
func (h *CourseHandler) HandlePublish(c fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	course, err := h.courseService.Publish(c.Context(), courseID)
	h.HandleResponse(c, course, err)
	return nil
}

// HandleArchive archiva un curso.
func (h *CourseHandler) HandleArchive(c fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	course, err := h.courseService.Archive(c.Context(), courseID)
	h.HandleResponse(c, course, err)
	return nil
}

// HandleAssignTutor asigna un tutor al curso.
func (h *CourseHandler) HandleAssignTutor(c fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input coursedto.AssignTutorInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	tutorID := utility.String2ObjectID(input.TutorID)
	if tutorID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del tutor no es válido", common.StatusBadRequest, nil))
		return nil
	}
	course, err := h.courseService.AssignTutor(c.Context(), courseID, tutorID)
	h.HandleResponse(c, course, err)
	return nil
}

// HandleRemoveTutor retira un tutor del curso.
func (h *CourseHandler) HandleRemoveTutor(c fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input coursedto.AssignTutorInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	tutorID := utility.String2ObjectID(input.TutorID)
	if tutorID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El ID del tutor no es válido", common.StatusBadRequest, nil))
		return nil
	}
	course, err := h.courseService.RemoveTutor(c.Context(), courseID, tutorID)
	h.HandleResponse(c, course, err)
	return nil
}

// HandleGetHierarchy retorna el árbol completo del curso.
func (h *CourseHandler) HandleGetHierarchy(c fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	hierarchy, err := h.hierarchyService.GetHierarchy(c.Context(), courseID)
	h.HandleResponse(c, hierarchy, err)
	return nil
}

// HandleLessonPath resuelve la cadena lección→módulo→nivel→curso.
func (h *CourseHandler) HandleLessonPath(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	path, err := h.hierarchyService.FindLessonPath(c.Context(), lessonID)
	h.HandleResponse(c, path, err)
	return nil
}

// CategoryHandler atiende los requests de categorías.
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, coursedto.CategoryCreateInput, coursedto.CategoryUpdateInput]
}

// NewCategoryHandler crea un CategoryHandler nuevo.
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := coursesvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de categorías: %v", err)
	}
	return &CategoryHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Category, coursedto.CategoryCreateInput, coursedto.CategoryUpdateInput](categoryService),
	}, nil
}
