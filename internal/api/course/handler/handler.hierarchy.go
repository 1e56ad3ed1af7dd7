package coursehdl

import (
	"fmt"

	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"
	coursedto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	coursesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// LevelHandler atiende los requests de niveles.
type LevelHandler struct {
	*basehdl.BaseHandler[models.Level, coursedto.LevelCreateInput, coursedto.LevelUpdateInput]
}

// NewLevelHandler crea un LevelHandler nuevo.
func NewLevelHandler() (*LevelHandler, error) {
	service, err := coursesvc.NewLevelService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de niveles: %v", err)
	}
	return &LevelHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Level, coursedto.LevelCreateInput, coursedto.LevelUpdateInput](service),
	}, nil
}

// ModuleHandler atiende los requests de módulos.
type ModuleHandler struct {
	*basehdl.BaseHandler[models.CourseModule, coursedto.ModuleCreateInput, coursedto.ModuleUpdateInput]
}

// NewModuleHandler crea un ModuleHandler nuevo.
func NewModuleHandler() (*ModuleHandler, error) {
	service, err := coursesvc.NewModuleService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de módulos: %v", err)
	}
	return &ModuleHandler{
		BaseHandler: basehdl.NewBaseHandler[models.CourseModule, coursedto.ModuleCreateInput, coursedto.ModuleUpdateInput](service),
	}, nil
}

// SectionHandler atiende los requests de secciones.
type SectionHandler struct {
	*basehdl.BaseHandler[models.Section, coursedto.SectionCreateInput, coursedto.SectionUpdateInput]
}

// NewSectionHandler crea un SectionHandler nuevo.
func NewSectionHandler() (*SectionHandler, error) {
	service, err := coursesvc.NewSectionService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de secciones: %v", err)
	}
	return &SectionHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Section, coursedto.SectionCreateInput, coursedto.SectionUpdateInput](service),
	}, nil
}

// LessonHandler atiende los requests de lecciones.
type LessonHandler struct {
	*basehdl.BaseHandler[models.Lesson, coursedto.LessonCreateInput, coursedto.LessonUpdateInput]
	lessonService *coursesvc.LessonService
	courseService *coursesvc.CourseService
}

// NewLessonHandler crea un LessonHandler nuevo.
func NewLessonHandler() (*LessonHandler, error) {
	lessonService, err := coursesvc.NewLessonService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de lecciones: %v", err)
	}
	courseService, err := coursesvc.NewCourseService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de cursos: %v", err)
	}
	return &LessonHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Lesson, coursedto.LessonCreateInput, coursedto.LessonUpdateInput](lessonService),
		lessonService: lessonService,
		courseService: courseService,
	}, nil
}

// InsertOne crea la lección y recalcula lessonsCount del curso.
func (h *LessonHandler) InsertOne(c fiber.Ctx) error {
	var input coursedto.LessonCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	lesson, err := h.TransformCreateInputToModel(&input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if lesson.ContentType == "" {
		lesson.ContentType = models.LessonContentTypeArticle
	}
	created, err := h.lessonService.InsertOne(c.Context(), *lesson)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.courseService.RefreshLessonsCount(c.Context(), created.CourseID); err != nil {
		// El conteo es informativo, no bloquea la creación
		h.HandleResponse(c, created, nil)
		return nil
	}
	h.HandleResponse(c, created, nil)
	return nil
}

// DeleteById elimina la lección y recalcula lessonsCount del curso.
func (h *LessonHandler) DeleteById(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	lesson, err := h.lessonService.FindOneById(c.Context(), lessonID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.lessonService.DeleteOne(c.Context(), bson.M{"_id": lessonID}); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	_ = h.courseService.RefreshLessonsCount(c.Context(), lesson.CourseID)
	h.HandleResponse(c, lesson, nil)
	return nil
}

// LessonMaterialHandler atiende los requests de materiales de lecciones.
type LessonMaterialHandler struct {
	*basehdl.BaseHandler[models.LessonMaterial, coursedto.LessonMaterialCreateInput, coursedto.LessonMaterialUpdateInput]
	materialService *coursesvc.LessonMaterialService
}

// NewLessonMaterialHandler crea un LessonMaterialHandler nuevo.
func NewLessonMaterialHandler() (*LessonMaterialHandler, error) {
	materialService, err := coursesvc.NewLessonMaterialService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de materiales: %v", err)
	}
	return &LessonMaterialHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.LessonMaterial, coursedto.LessonMaterialCreateInput, coursedto.LessonMaterialUpdateInput](materialService),
		materialService: materialService,
	}, nil
}

// HandleListByLesson lista los materiales de una lección.
func (h *LessonMaterialHandler) HandleListByLesson(c fiber.Ctx) error {
	lessonID, err := parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	materials, err := h.materialService.Find(c.Context(), bson.M{"lessonId": lessonID}, nil)
	if materials == nil {
		materials = []models.LessonMaterial{}
	}
	h.HandleResponse(c, materials, err)
	return nil
}
