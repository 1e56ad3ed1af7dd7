package portalsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	aistudiomodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	authmodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	authsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/service"
	coursemodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	coursesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/service"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PortalService arma las vistas del portal de estudiantes: cursos
// matriculados, detalle con bloqueo por nivel y contenido de lecciones.
type PortalService struct {
	userService     *authsvc.UserService
	courseService   *coursesvc.CourseService
	levelService    *coursesvc.LevelService
	moduleService   *coursesvc.ModuleService
	lessonService   *coursesvc.LessonService
	materialService *coursesvc.LessonMaterialService
	progressService *StudentProgressService

	flashcardCollection    *mongo.Collection
	quizCollection         *mongo.Collection
	presentationCollection *mongo.Collection
}

// NewPortalService crea un PortalService nuevo.
func NewPortalService() (*PortalService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	courseService, err := coursesvc.NewCourseService()
	if err != nil {
		return nil, err
	}
	levelService, err := coursesvc.NewLevelService()
	if err != nil {
		return nil, err
	}
	moduleService, err := coursesvc.NewModuleService()
	if err != nil {
		return nil, err
	}
	lessonService, err := coursesvc.NewLessonService()
	if err != nil {
		return nil, err
	}
	materialService, err := coursesvc.NewLessonMaterialService()
	if err != nil {
		return nil, err
	}
	progressService, err := NewStudentProgressService()
	if err != nil {
		return nil, err
	}

	flashcardCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedFlashcards)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de flashcards: %v", common.ErrNotFound)
	}
	quizCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedQuizzes)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de cuestionarios: %v", common.ErrNotFound)
	}
	presentationCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedPresentations)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de presentaciones: %v", common.ErrNotFound)
	}

	return &PortalService{
		userService:            userService,
		courseService:          courseService,
		levelService:           levelService,
		moduleService:          moduleService,
		lessonService:          lessonService,
		materialService:        materialService,
		progressService:        progressService,
		flashcardCollection:    flashcardCollection,
		quizCollection:         quizCollection,
		presentationCollection: presentationCollection,
	}, nil
}

// StudentLevelOrder mapea el nivel de un estudiante a su orden numérico.
// Acepta las variantes en español e inglés; desconocido cuenta como básico.
func StudentLevelOrder(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "intermedio", "intermediate":
		return 2
	case "avanzado", "advanced":
		return 3
	default:
		return 1
	}
}

// LevelDifficultyOrder deduce la dificultad de un nivel del curso por las
// palabras clave de su nombre; sin coincidencia, decide por su orden.
func LevelDifficultyOrder(name string, order int) int {
	lower := strings.ToLower(name)
	for _, keyword := range []string{"básico", "basico", "basic", "beginner", "principiante"} {
		if strings.Contains(lower, keyword) {
			return 1
		}
	}
	for _, keyword := range []string{"intermedio", "intermediate", "medium"} {
		if strings.Contains(lower, keyword) {
			return 2
		}
	}
	for _, keyword := range []string{"avanzado", "advanced", "expert"} {
		if strings.Contains(lower, keyword) {
			return 3
		}
	}

	switch {
	case order <= 1:
		return 1
	case order <= 2:
		return 2
	default:
		return 3
	}
}

// findStudent carga al estudiante y valida que la cuenta esté activa.
func (s *PortalService) findStudent(ctx context.Context, studentID primitive.ObjectID) (*authmodels.User, error) {
	student, err := s.userService.FindOneById(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.IsDisabled {
		return nil, common.ErrUserDisabled
	}
	student.Password = ""
	return &student, nil
}

// Me retorna el perfil del estudiante autenticado sin la contraseña.
func (s *PortalService) Me(ctx context.Context, studentID primitive.ObjectID) (*authmodels.User, error) {
	return s.findStudent(ctx, studentID)
}

// MyCourses lista los cursos matriculados con su porcentaje de avance.
func (s *PortalService) MyCourses(ctx context.Context, studentID primitive.ObjectID) ([]models.EnrolledCourse, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(student.EnrolledCourses) == 0 {
		return []models.EnrolledCourse{}, nil
	}

	courses, err := s.courseService.FindManyByIds(ctx, student.EnrolledCourses)
	if err != nil {
		return nil, err
	}

	enrolled := make([]models.EnrolledCourse, 0, len(courses))
	for _, course := range courses {
		progress, err := s.progressService.CourseProgress(ctx, studentID, course.ID)
		if err != nil {
			return nil, err
		}
		enrolled = append(enrolled, models.EnrolledCourse{
			CourseID:        course.ID,
			Name:            course.Name,
			Description:     course.CourseMeta.Description,
			ThumbnailURL:    course.ThumbnailURL,
			Language:        course.Language,
			ProgressPercent: progress.ProgressPercent,
			EnrolledAt:      student.CreatedAt,
		})
	}
	return enrolled, nil
}

// lessonIDsWithContent retorna los ids de lección que tienen al menos un
// artefacto completado en la colección dada.
func (s *PortalService) lessonIDsWithContent(ctx context.Context, collection *mongo.Collection, lessonIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	if len(lessonIDs) == 0 {
		return map[primitive.ObjectID]bool{}, nil
	}
	values, err := collection.Distinct(ctx, "lessonId", bson.M{
		"lessonId": bson.M{"$in": lessonIDs},
		"status":   aistudiomodels.StatusCompleted,
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	found := make(map[primitive.ObjectID]bool, len(values))
	for _, value := range values {
		if id, ok := value.(primitive.ObjectID); ok {
			found[id] = true
		}
	}
	return found, nil
}

// lessonIDsWithMaterials retorna los ids de lección que tienen materiales.
func (s *PortalService) lessonIDsWithMaterials(ctx context.Context, lessonIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	if len(lessonIDs) == 0 {
		return map[primitive.ObjectID]bool{}, nil
	}
	values, err := s.materialService.Distinct(ctx, "lessonId", bson.M{"lessonId": bson.M{"$in": lessonIDs}})
	if err != nil {
		return nil, err
	}

	found := make(map[primitive.ObjectID]bool, len(values))
	for _, value := range values {
		if id, ok := value.(primitive.ObjectID); ok {
			found[id] = true
		}
	}
	return found, nil
}

// CourseDetail arma el detalle del curso con la jerarquía completa,
// el avance del estudiante y el bloqueo de niveles según su nivel.
func (s *PortalService) CourseDetail(ctx context.Context, studentID, courseID primitive.ObjectID) (*models.CourseDetail, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsEnrolledIn(courseID) {
		return nil, common.NewError(common.ErrCodeAuthRole, "No estás matriculado en este curso", common.StatusForbidden, nil)
	}

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

	completed, err := s.progressService.CompletedLessons(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	lessonIDs := make([]primitive.ObjectID, 0, len(lessons))
	for _, lesson := range lessons {
		lessonIDs = append(lessonIDs, lesson.ID)
	}
	withFlashcards, err := s.lessonIDsWithContent(ctx, s.flashcardCollection, lessonIDs)
	if err != nil {
		return nil, err
	}
	withQuizzes, err := s.lessonIDsWithContent(ctx, s.quizCollection, lessonIDs)
	if err != nil {
		return nil, err
	}
	withMaterials, err := s.lessonIDsWithMaterials(ctx, lessonIDs)
	if err != nil {
		return nil, err
	}

	studentLevelOrder := StudentLevelOrder(student.StudentLevel)
	completedCount := 0

	lessonsByModule := map[primitive.ObjectID][]coursemodels.Lesson{}
	for _, lesson := range lessons {
		lessonsByModule[lesson.ModuleID] = append(lessonsByModule[lesson.ModuleID], lesson)
	}
	modulesByLevel := map[primitive.ObjectID][]coursemodels.CourseModule{}
	for _, module := range modules {
		modulesByLevel[module.LevelID] = append(modulesByLevel[module.LevelID], module)
	}

	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Order < levels[j].Order })

	portalLevels := make([]models.PortalLevel, 0, len(levels))
	for _, level := range levels {
		difficulty := LevelDifficultyOrder(level.Name, level.Order)
		isLocked := difficulty > studentLevelOrder

		levelModules := modulesByLevel[level.ID]
		sort.SliceStable(levelModules, func(i, j int) bool { return levelModules[i].Order < levelModules[j].Order })

		portalModules := make([]models.PortalModule, 0, len(levelModules))
		for _, module := range levelModules {
			moduleLessons := lessonsByModule[module.ID]
			sort.SliceStable(moduleLessons, func(i, j int) bool { return moduleLessons[i].Order < moduleLessons[j].Order })

			portalLessons := make([]models.PortalLesson, 0, len(moduleLessons))
			for _, lesson := range moduleLessons {
				isCompleted := completed[lesson.ID]
				if isCompleted {
					completedCount++
				}
				portalLessons = append(portalLessons, models.PortalLesson{
					ID:              lesson.ID,
					Name:            lesson.Name,
					Description:     lesson.Description,
					Order:           lesson.Order,
					ContentType:     lesson.ContentType,
					DurationMinutes: lesson.Duration,
					IsCompleted:     isCompleted,
					IsLocked:        isLocked,
					HasFlashcards:   withFlashcards[lesson.ID],
					HasQuizzes:      withQuizzes[lesson.ID],
					HasMaterials:    withMaterials[lesson.ID],
				})
			}

			portalModules = append(portalModules, models.PortalModule{
				ID:          module.ID,
				Name:        module.Name,
				Description: module.Description,
				Order:       module.Order,
				IsLocked:    isLocked,
				Lessons:     portalLessons,
			})
		}

		portalLevels = append(portalLevels, models.PortalLevel{
			ID:          level.ID,
			Name:        level.Name,
			Description: level.Description,
			Order:       level.Order,
			IsLocked:    isLocked,
			IsCurrent:   difficulty == studentLevelOrder,
			Modules:     portalModules,
		})
	}

	return &models.CourseDetail{
		CourseID:         course.ID,
		Name:             course.Name,
		Description:      course.CourseMeta.Description,
		ThumbnailURL:     course.ThumbnailURL,
		Levels:           portalLevels,
		StudentLevel:     student.StudentLevel,
		TotalLessons:     len(lessons),
		CompletedLessons: completedCount,
		ProgressPercent:  ProgressPercent(completedCount, len(lessons)),
	}, nil
}

// LessonContent es el contenido completo de una lección para el portal:
// cuerpo y video de la lección, artefactos completados y materiales.
type LessonContent struct {
	LessonID      primitive.ObjectID            `json:"lessonId"`
	LessonName    string                        `json:"lessonName"`
	LessonBody    string                        `json:"lessonBody,omitempty"`
	VideoURL      string                        `json:"videoUrl,omitempty"`
	YouTubeVideo  *coursemodels.YouTubeVideo    `json:"youtubeVideo,omitempty"`
	Flashcards    []aistudiomodels.FlashcardSet `json:"flashcards"`
	Quizzes       []aistudiomodels.Quiz         `json:"quizzes"`
	Presentations []aistudiomodels.Presentation `json:"presentations"`
	Materials     []models.PortalMaterial       `json:"materials"`
}

// completedArtifacts decodifica los artefactos completados de una lección.
func completedArtifacts[T any](ctx context.Context, collection *mongo.Collection, lessonID primitive.ObjectID) ([]T, error) {
	cursor, err := collection.Find(ctx, bson.M{
		"lessonId": lessonID,
		"status":   aistudiomodels.StatusCompleted,
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// GetLessonContent retorna el contenido de una lección para un estudiante
// matriculado. Los cuestionarios van sin respuestas correctas.
func (s *PortalService) GetLessonContent(ctx context.Context, studentID, lessonID primitive.ObjectID) (*LessonContent, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	lesson, err := s.lessonService.FindOneById(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if !student.IsEnrolledIn(lesson.CourseID) {
		return nil, common.NewError(common.ErrCodeAuthRole, "No estás matriculado en este curso", common.StatusForbidden, nil)
	}

	flashcards, err := completedArtifacts[aistudiomodels.FlashcardSet](ctx, s.flashcardCollection, lessonID)
	if err != nil {
		return nil, err
	}
	quizzes, err := completedArtifacts[aistudiomodels.Quiz](ctx, s.quizCollection, lessonID)
	if err != nil {
		return nil, err
	}
	presentations, err := completedArtifacts[aistudiomodels.Presentation](ctx, s.presentationCollection, lessonID)
	if err != nil {
		return nil, err
	}

	cleanQuizzes := make([]aistudiomodels.Quiz, len(quizzes))
	for i := range quizzes {
		cleanQuizzes[i] = quizzes[i].WithoutAnswers()
	}

	materialDocs, err := s.materialService.Find(ctx, bson.M{"lessonId": lessonID}, nil)
	if err != nil {
		return nil, err
	}
	materials := make([]models.PortalMaterial, 0, len(materialDocs))
	for _, material := range materialDocs {
		materials = append(materials, models.PortalMaterial{
			ID:   material.ID,
			Name: material.Name,
			Type: material.Type,
			URL:  material.URL,
		})
	}

	return &LessonContent{
		LessonID:      lesson.ID,
		LessonName:    lesson.Name,
		LessonBody:    lesson.LessonBody,
		VideoURL:      lesson.VideoURL,
		YouTubeVideo:  lesson.YouTubeVideo,
		Flashcards:    flashcards,
		Quizzes:       cleanQuizzes,
		Presentations: presentations,
		Materials:     materials,
	}, nil
}
