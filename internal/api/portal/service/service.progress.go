// Package portalsvc - services del portal de estudiantes (progreso,
// detalle de cursos, contenido de lecciones) y del dashboard admin.
package portalsvc

import (
	"context"
	"fmt"
	"math"
	"time"

	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	coursesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/service"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentProgressService registra y consulta el avance por lección.
type StudentProgressService struct {
	*basesvc.BaseServiceMongoImpl[models.StudentProgress]
	lessonService *coursesvc.LessonService
}

// NewStudentProgressService crea un StudentProgressService nuevo.
func NewStudentProgressService() (*StudentProgressService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StudentProgress)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de progreso de estudiantes: %v", common.ErrNotFound)
	}
	lessonService, err := coursesvc.NewLessonService()
	if err != nil {
		return nil, err
	}
	return &StudentProgressService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.StudentProgress](collection),
		lessonService:        lessonService,
	}, nil
}

// MarkCompleted marca una lección como completada para un estudiante.
// La operación es idempotente: repetirla no duplica el registro.
func (s *StudentProgressService) MarkCompleted(ctx context.Context, studentID, lessonID primitive.ObjectID) (*models.StudentProgress, error) {
	lesson, err := s.lessonService.FindOneById(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	progress, err := s.Upsert(ctx,
		bson.M{"studentId": studentID, "lessonId": lessonID},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"studentId":   studentID,
				"lessonId":    lessonID,
				"courseId":    lesson.CourseID,
				"completed":   true,
				"completedAt": time.Now().UnixMilli(),
			},
		})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CompletedLessons retorna el set de lecciones completadas del estudiante
// en un curso, como mapa lessonId→true.
func (s *StudentProgressService) CompletedLessons(ctx context.Context, studentID, courseID primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	records, err := s.Find(ctx, bson.M{
		"studentId": studentID,
		"courseId":  courseID,
		"completed": true,
	}, nil)
	if err != nil {
		return nil, err
	}

	completed := make(map[primitive.ObjectID]bool, len(records))
	for _, record := range records {
		completed[record.LessonID] = true
	}
	return completed, nil
}

// CourseProgress resume el avance del estudiante en un curso.
func (s *StudentProgressService) CourseProgress(ctx context.Context, studentID, courseID primitive.ObjectID) (*models.CourseProgress, error) {
	completed, err := s.CompletedLessons(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	total, err := s.lessonService.CountDocuments(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return nil, err
	}

	return &models.CourseProgress{
		CompletedLessons: len(completed),
		TotalLessons:     int(total),
		ProgressPercent:  ProgressPercent(len(completed), int(total)),
	}, nil
}

// ProgressPercent calcula el porcentaje de avance redondeado a un decimal.
// Un curso sin lecciones reporta 0.
func ProgressPercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
