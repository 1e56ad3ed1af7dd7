package aistudiosvc

import (
	"context"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LessonAIContent agrupa el contenido generado disponible para una lección
// desde el portal del estudiante.
type LessonAIContent struct {
	Flashcards    []models.FlashcardSet `json:"flashcards"`
	Quizzes       []models.Quiz         `json:"quizzes"`
	HasFlashcards bool                  `json:"hasFlashcards"`
	HasQuizzes    bool                  `json:"hasQuizzes"`
}

// StudentContentService expone a los estudiantes los artefactos terminados
// de una lección. Los cuestionarios se entregan sin respuestas.
type StudentContentService struct {
	flashcards *FlashcardService
	quizzes    *QuizService
}

// NewStudentContentService crea el service sobre los services de artefactos.
func NewStudentContentService(flashcards *FlashcardService, quizzes *QuizService) *StudentContentService {
	return &StudentContentService{flashcards: flashcards, quizzes: quizzes}
}

// lessonCompletedFilter filtra los artefactos terminados de una lección.
func lessonCompletedFilter(lessonID primitive.ObjectID) bson.M {
	return bson.M{
		"lessonId": lessonID,
		"status":   models.StatusCompleted,
	}
}

// LessonFlashcards devuelve los sets de tarjetas terminados de la lección.
func (s *StudentContentService) LessonFlashcards(ctx context.Context, lessonID primitive.ObjectID) ([]models.FlashcardSet, error) {
	return s.flashcards.Find(ctx, lessonCompletedFilter(lessonID), artifactListOptions())
}

// LessonQuizzes devuelve los cuestionarios terminados de la lección, sin
// marcar las respuestas correctas.
func (s *StudentContentService) LessonQuizzes(ctx context.Context, lessonID primitive.ObjectID) ([]models.Quiz, error) {
	quizzes, err := s.quizzes.Find(ctx, lessonCompletedFilter(lessonID), artifactListOptions())
	if err != nil {
		return nil, err
	}
	clean := make([]models.Quiz, 0, len(quizzes))
	for i := range quizzes {
		clean = append(clean, quizzes[i].WithoutAnswers())
	}
	return clean, nil
}

// LessonContent devuelve el contenido combinado de la lección.
func (s *StudentContentService) LessonContent(ctx context.Context, lessonID primitive.ObjectID) (*LessonAIContent, error) {
	flashcards, err := s.LessonFlashcards(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.LessonQuizzes(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	return &LessonAIContent{
		Flashcards:    flashcards,
		Quizzes:       quizzes,
		HasFlashcards: len(flashcards) > 0,
		HasQuizzes:    len(quizzes) > 0,
	}, nil
}
