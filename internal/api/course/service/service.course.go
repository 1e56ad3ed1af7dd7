// Package coursesvc - services del dominio de cursos y su jerarquía.
package coursesvc

import (
	"context"
	"fmt"

	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseService contiene la lógica de cursos (catálogo, publicación, tutores).
type CourseService struct {
	*basesvc.BaseServiceMongoImpl[models.Course]
}

// NewCourseService crea un CourseService nuevo.
func NewCourseService() (*CourseService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Courses)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de cursos: %v", common.ErrNotFound)
	}
	return &CourseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Course](collection),
	}, nil
}

// Publish publica un curso (status → live).
func (s *CourseService) Publish(ctx context.Context, courseID primitive.ObjectID) (*models.Course, error) {
	updated, err := s.UpdateById(ctx, courseID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": models.CourseStatusLive},
	})
	if err != nil {
		return nil, err
	}
	logrus.WithField("courseId", courseID.Hex()).Info("Course: curso publicado")
	return &updated, nil
}

// Archive archiva un curso (status → archive).
func (s *CourseService) Archive(ctx context.Context, courseID primitive.ObjectID) (*models.Course, error) {
	updated, err := s.UpdateById(ctx, courseID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": models.CourseStatusArchive},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AssignTutor agrega un tutor al curso ($addToSet evita duplicados).
func (s *CourseService) AssignTutor(ctx context.Context, courseID primitive.ObjectID, tutorID primitive.ObjectID) (*models.Course, error) {
	updated, err := s.UpdateById(ctx, courseID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"tutorIds": tutorID},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveTutor retira un tutor del curso.
func (s *CourseService) RemoveTutor(ctx context.Context, courseID primitive.ObjectID, tutorID primitive.ObjectID) (*models.Course, error) {
	filter := map[string]interface{}{"_id": courseID}
	update := map[string]interface{}{"$pull": map[string]interface{}{"tutorIds": tutorID}}
	if _, err := s.Collection().UpdateOne(ctx, filter, update); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	course, err := s.FindOneById(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// RefreshLessonsCount recalcula lessonsCount de un curso.
func (s *CourseService) RefreshLessonsCount(ctx context.Context, courseID primitive.ObjectID) error {
	lessonCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Lessons)
	if !exist {
		return common.ErrNotFound
	}
	count, err := lessonCollection.CountDocuments(ctx, map[string]interface{}{"courseId": courseID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	_, err = s.UpdateById(ctx, courseID, &basesvc.UpdateData{
		Set: map[string]interface{}{"lessonsCount": count},
	})
	return err
}

// CategoryService contiene la lógica de categorías de cursos.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService crea un CategoryService nuevo.
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de categorías: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](collection),
	}, nil
}
