package coursesvc

import (
	"context"
	"fmt"
	"sort"

	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LevelService gestiona los niveles de la jerarquía de cursos.
type LevelService struct {
	*basesvc.BaseServiceMongoImpl[models.Level]
}

// NewLevelService crea un LevelService nuevo.
func NewLevelService() (*LevelService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Levels)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de niveles: %v", common.ErrNotFound)
	}
	return &LevelService{basesvc.NewBaseServiceMongo[models.Level](collection)}, nil
}

// ModuleService gestiona los módulos de la jerarquía de cursos.
type ModuleService struct {
	*basesvc.BaseServiceMongoImpl[models.CourseModule]
}

// NewModuleService crea un ModuleService nuevo.
func NewModuleService() (*ModuleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CourseModules)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de módulos: %v", common.ErrNotFound)
	}
	return &ModuleService{basesvc.NewBaseServiceMongo[models.CourseModule](collection)}, nil
}

// SectionService gestiona las secciones de la jerarquía de cursos.
type SectionService struct {
	*basesvc.BaseServiceMongoImpl[models.Section]
}

// NewSectionService crea un SectionService nuevo.
func NewSectionService() (*SectionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sections)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de secciones: %v", common.ErrNotFound)
	}
	return &SectionService{basesvc.NewBaseServiceMongo[models.Section](collection)}, nil
}

// LessonService gestiona las lecciones.
type LessonService struct {
	*basesvc.BaseServiceMongoImpl[models.Lesson]
}

// NewLessonService crea un LessonService nuevo.
func NewLessonService() (*LessonService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Lessons)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de lecciones: %v", common.ErrNotFound)
	}
	return &LessonService{basesvc.NewBaseServiceMongo[models.Lesson](collection)}, nil
}

// LessonMaterialService gestiona los materiales descargables de lecciones.
type LessonMaterialService struct {
	*basesvc.BaseServiceMongoImpl[models.LessonMaterial]
}

// NewLessonMaterialService crea un LessonMaterialService nuevo.
func NewLessonMaterialService() (*LessonMaterialService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.LessonMaterials)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de materiales: %v", common.ErrNotFound)
	}
	return &LessonMaterialService{basesvc.NewBaseServiceMongo[models.LessonMaterial](collection)}, nil
}

// HierarchyService arma el árbol de jerarquía y resuelve rutas de lecciones.
type HierarchyService struct {
	courseService *CourseService
	levelService  *LevelService
	moduleService *ModuleService
	lessonService *LessonService
}

// NewHierarchyService crea un HierarchyService nuevo.
func NewHierarchyService() (*HierarchyService, error) {
	courseService, err := NewCourseService()
	if err != nil {
		return nil, err
	}
	levelService, err := NewLevelService()
	if err != nil {
		return nil, err
	}
	moduleService, err := NewModuleService()
	if err != nil {
		return nil, err
	}
	lessonService, err := NewLessonService()
	if err != nil {
		return nil, err
	}
	return &HierarchyService{
		courseService: courseService,
		levelService:  levelService,
		moduleService: moduleService,
		lessonService: lessonService,
	}, nil
}

// GetHierarchy arma el árbol completo Course→Levels→Modules→Lessons,
// ordenado por order en cada nivel. Tres consultas (niveles, módulos,
// lecciones del curso) y el armado en memoria.
func (s *HierarchyService) GetHierarchy(ctx context.Context, courseID primitive.ObjectID) (*models.CourseHierarchy, error) {
	course, err := s.courseService.FindOneById(ctx, courseID)
	if err != nil {
		return nil, err
	}

	levels, err := s.levelService.Find(ctx, bson.M{"courseId": courseID}, nil)
	if err != nil {
		return nil, err
	}
	modules, err := s.moduleService.Find(ctx, bson.M{"courseId": courseID}, nil)
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessonService.Find(ctx, bson.M{"courseId": courseID}, nil)
	if err != nil {
		return nil, err
	}

	lessonsByModule := map[primitive.ObjectID][]models.HierarchyLesson{}
	for _, lesson := range lessons {
		lessonsByModule[lesson.ModuleID] = append(lessonsByModule[lesson.ModuleID], models.HierarchyLesson{
			ID:          lesson.ID,
			Name:        lesson.Name,
			Order:       lesson.Order,
			ContentType: lesson.ContentType,
			Duration:    lesson.Duration,
			IsFree:      lesson.IsFree,
		})
	}
	for _, moduleLessons := range lessonsByModule {
		sort.SliceStable(moduleLessons, func(i, j int) bool {
			return moduleLessons[i].Order < moduleLessons[j].Order
		})
	}

	modulesByLevel := map[primitive.ObjectID][]models.HierarchyModule{}
	for _, module := range modules {
		moduleLessons := lessonsByModule[module.ID]
		if moduleLessons == nil {
			moduleLessons = []models.HierarchyLesson{}
		}
		modulesByLevel[module.LevelID] = append(modulesByLevel[module.LevelID], models.HierarchyModule{
			ID:           module.ID,
			Name:         module.Name,
			Description:  module.Description,
			Order:        module.Order,
			TotalClasses: module.TotalClasses,
			Lessons:      moduleLessons,
		})
	}
	for _, levelModules := range modulesByLevel {
		sort.SliceStable(levelModules, func(i, j int) bool {
			return levelModules[i].Order < levelModules[j].Order
		})
	}

	hierarchyLevels := make([]models.HierarchyLevel, 0, len(levels))
	for _, level := range levels {
		levelModules := modulesByLevel[level.ID]
		if levelModules == nil {
			levelModules = []models.HierarchyModule{}
		}
		hierarchyLevels = append(hierarchyLevels, models.HierarchyLevel{
			ID:          level.ID,
			Name:        level.Name,
			Description: level.Description,
			Order:       level.Order,
			Modules:     levelModules,
		})
	}
	sort.SliceStable(hierarchyLevels, func(i, j int) bool {
		return hierarchyLevels[i].Order < hierarchyLevels[j].Order
	})

	return &models.CourseHierarchy{
		CourseID:   course.ID,
		CourseName: course.Name,
		Levels:     hierarchyLevels,
	}, nil
}

// FindLessonPath resuelve la cadena lección→módulo→nivel→curso.
// Módulo y nivel son opcionales (lecciones legacy sin jerarquía completa).
func (s *HierarchyService) FindLessonPath(ctx context.Context, lessonID primitive.ObjectID) (*models.LessonPath, error) {
	lesson, err := s.lessonService.FindOneById(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	path := &models.LessonPath{
		LessonID:   lesson.ID,
		LessonName: lesson.Name,
		CourseID:   lesson.CourseID,
	}

	course, err := s.courseService.FindOneById(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	path.CourseName = course.Name

	if !lesson.ModuleID.IsZero() {
		module, err := s.moduleService.FindOneById(ctx, lesson.ModuleID)
		if err == nil {
			path.ModuleID = module.ID
			path.ModuleName = module.Name
			if !module.LevelID.IsZero() {
				level, err := s.levelService.FindOneById(ctx, module.LevelID)
				if err == nil {
					path.LevelID = level.ID
					path.LevelName = level.Name
				}
			}
		}
	}

	return path, nil
}
