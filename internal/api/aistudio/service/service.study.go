package aistudiosvc

import (
	"context"
	"fmt"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/ai"
	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlashcardService genera sets de tarjetas de memoria.
type FlashcardService struct {
	*basesvc.BaseServiceMongoImpl[models.FlashcardSet]
	gemini    *ai.GeminiClient
	assembler *PromptAssembler
}

// NewFlashcardService crea un FlashcardService nuevo.
func NewFlashcardService(assembler *PromptAssembler) (*FlashcardService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedFlashcards)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de flashcards: %v", common.ErrNotFound)
	}
	return &FlashcardService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.FlashcardSet](collection),
		gemini:               ai.NewGeminiClient(),
		assembler:            assembler,
	}, nil
}

var flashcardSchema = map[string]interface{}{
	"title": "string",
	"cards": []interface{}{
		map[string]interface{}{
			"id":       "string",
			"front":    "string",
			"back":     "string",
			"hint":     "string",
			"category": "string",
		},
	},
}

// Generate crea un set de flashcards.
func (s *FlashcardService) Generate(ctx context.Context, input *dto.FlashcardGenerateInput, userID primitive.ObjectID) (*models.FlashcardSet, error) {
	numCards := input.NumCards
	if numCards == 0 {
		numCards = 10
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "intermedio"
	}

	set := models.FlashcardSet{
		Title:      input.Topic,
		Topic:      input.Topic,
		Difficulty: difficulty,
		Status:     models.StatusGenerating,
		LessonID:   utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy:  userID,
	}
	created, err := s.InsertOne(ctx, set)
	if err != nil {
		return nil, err
	}

	// Una falla de generación no es un error HTTP: se responde el
	// artefacto en estado failed con su errorMessage.
	if err := s.runGeneration(ctx, created.ID, input, difficulty, numCards); err != nil {
		logrus.WithField("flashcardSetId", created.ID.Hex()).Errorf("AIStudio: falló la generación del set: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// runGeneration pide las tarjetas al modelo y cierra el registro; ante
// una falla deja el documento en estado failed.
func (s *FlashcardService) runGeneration(ctx context.Context, id primitive.ObjectID, input *dto.FlashcardGenerateInput, difficulty string, numCards int) error {
	genCtx := models.NewGenerationContext(input.Topic)
	genCtx.Nivel = difficulty
	genCtx.AdditionalContext = input.AdditionalContext
	genCtx.ModuleParams = map[string]interface{}{"num_tarjetas": numCards}

	prompt, err := s.assembler.Assemble(ctx, models.ModuleFlashcard, genCtx)
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	result, err := s.gemini.GenerateJSON(ctx, prompt, flashcardSchema, "")
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	var parsed struct {
		Title string             `json:"title"`
		Cards []models.Flashcard `json:"cards"`
	}
	if err := decodeResult(result, &parsed); err != nil || len(parsed.Cards) == 0 {
		s.markFailed(ctx, id, parseFailureMessage)
		return common.ErrAIInvalidResponse
	}

	for i := range parsed.Cards {
		if parsed.Cards[i].ID == "" {
			parsed.Cards[i].ID = fmt.Sprintf("%d", i+1)
		}
	}
	title := parsed.Title
	if title == "" {
		title = input.Topic
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": models.StatusCompleted,
			"title":  title,
			"cards":  parsed.Cards,
		},
	})
	return err
}

func (s *FlashcardService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("flashcardSetId", id.Hex()).Errorf("AIStudio: no se pudo marcar el set como fallido: %v", err)
	}
}

// List devuelve los sets visibles para el usuario.
func (s *FlashcardService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.FlashcardSet, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve un set por id.
func (s *FlashcardService) Get(ctx context.Context, id primitive.ObjectID) (*models.FlashcardSet, error) {
	set, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// Delete elimina un set; solo el dueño o un admin.
func (s *FlashcardService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	set, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && set.CreatedBy != userID {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, id)
}

// QuizService genera cuestionarios de práctica.
type QuizService struct {
	*basesvc.BaseServiceMongoImpl[models.Quiz]
	gemini    *ai.GeminiClient
	assembler *PromptAssembler
}

// NewQuizService crea un QuizService nuevo.
func NewQuizService(assembler *PromptAssembler) (*QuizService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedQuizzes)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de cuestionarios: %v", common.ErrNotFound)
	}
	return &QuizService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Quiz](collection),
		gemini:               ai.NewGeminiClient(),
		assembler:            assembler,
	}, nil
}

var quizSchema = map[string]interface{}{
	"title": "string",
	"questions": []interface{}{
		map[string]interface{}{
			"id":       "string",
			"question": "string",
			"type":     "multiple_choice|true_false",
			"options": []interface{}{
				map[string]interface{}{
					"id":        "string",
					"text":      "string",
					"isCorrect": "boolean",
				},
			},
			"explanation": "string",
			"points":      "number",
			"category":    "string",
		},
	},
}

// Generate crea un cuestionario.
func (s *QuizService) Generate(ctx context.Context, input *dto.QuizGenerateInput, userID primitive.ObjectID) (*models.Quiz, error) {
	numQuestions := input.NumQuestions
	if numQuestions == 0 {
		numQuestions = 10
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "intermedio"
	}

	quiz := models.Quiz{
		Title:            input.Topic,
		Topic:            input.Topic,
		Difficulty:       difficulty,
		Status:           models.StatusGenerating,
		TimeLimitMinutes: input.TimeLimitMinutes,
		LessonID:         utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy:        userID,
	}
	created, err := s.InsertOne(ctx, quiz)
	if err != nil {
		return nil, err
	}

	// Una falla de generación no es un error HTTP: se responde el
	// artefacto en estado failed con su errorMessage.
	if err := s.runGeneration(ctx, created.ID, input, difficulty, numQuestions); err != nil {
		logrus.WithField("quizId", created.ID.Hex()).Errorf("AIStudio: falló la generación del cuestionario: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// runGeneration pide las preguntas al modelo y cierra el registro; ante
// una falla deja el documento en estado failed.
func (s *QuizService) runGeneration(ctx context.Context, id primitive.ObjectID, input *dto.QuizGenerateInput, difficulty string, numQuestions int) error {
	genCtx := models.NewGenerationContext(input.Topic)
	genCtx.Nivel = difficulty
	genCtx.AdditionalContext = input.AdditionalContext
	genCtx.ModuleParams = map[string]interface{}{"num_preguntas": numQuestions}

	prompt, err := s.assembler.Assemble(ctx, models.ModuleQuiz, genCtx)
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	result, err := s.gemini.GenerateJSON(ctx, prompt, quizSchema, "")
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	var parsed struct {
		Title     string                `json:"title"`
		Questions []models.QuizQuestion `json:"questions"`
	}
	if err := decodeResult(result, &parsed); err != nil || len(parsed.Questions) == 0 {
		s.markFailed(ctx, id, parseFailureMessage)
		return common.ErrAIInvalidResponse
	}

	for i := range parsed.Questions {
		q := &parsed.Questions[i]
		if q.ID == "" {
			q.ID = fmt.Sprintf("%d", i+1)
		}
		if q.Type == "" {
			q.Type = "multiple_choice"
		}
		if q.Points == 0 {
			q.Points = 1
		}
		for j := range q.Options {
			if q.Options[j].ID == "" {
				q.Options[j].ID = fmt.Sprintf("%d-%d", i+1, j+1)
			}
		}
	}
	title := parsed.Title
	if title == "" {
		title = input.Topic
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    models.StatusCompleted,
			"title":     title,
			"questions": parsed.Questions,
		},
	})
	return err
}

func (s *QuizService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("quizId", id.Hex()).Errorf("AIStudio: no se pudo marcar el cuestionario como fallido: %v", err)
	}
}

// List devuelve los cuestionarios visibles para el usuario.
func (s *QuizService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.Quiz, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve un cuestionario por id.
func (s *QuizService) Get(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	quiz, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Delete elimina un cuestionario; solo el dueño o un admin.
func (s *QuizService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	quiz, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && quiz.CreatedBy != userID {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, id)
}

// LessonContentService genera el contenido completo de una lección.
type LessonContentService struct {
	*basesvc.BaseServiceMongoImpl[models.GeneratedLesson]
	gemini    *ai.GeminiClient
	assembler *PromptAssembler
}

// NewLessonContentService crea un LessonContentService nuevo.
func NewLessonContentService(assembler *PromptAssembler) (*LessonContentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedLessons)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de lecciones generadas: %v", common.ErrNotFound)
	}
	return &LessonContentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.GeneratedLesson](collection),
		gemini:               ai.NewGeminiClient(),
		assembler:            assembler,
	}, nil
}

var lessonSchema = map[string]interface{}{
	"title":      "string",
	"objectives": []string{"string"},
	"content":    "string (HTML)",
	"keyPoints":  []string{"string"},
	"questions": []interface{}{
		map[string]interface{}{
			"question":     "string",
			"options":      []string{"string"},
			"correctIndex": "number",
			"explanation":  "string",
		},
	},
}

// Generate crea el contenido completo de una lección.
func (s *LessonContentService) Generate(ctx context.Context, input *dto.LessonGenerateInput, userID primitive.ObjectID) (*models.GeneratedLesson, error) {
	lessonType := input.LessonType
	if lessonType == "" {
		lessonType = "article"
	}

	lesson := models.GeneratedLesson{
		Title:      input.Topic,
		Topic:      input.Topic,
		LessonType: lessonType,
		Status:     models.StatusGenerating,
		LessonID:   utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy:  userID,
	}
	created, err := s.InsertOne(ctx, lesson)
	if err != nil {
		return nil, err
	}

	// Una falla de generación no es un error HTTP: se responde el
	// artefacto en estado failed con su errorMessage.
	if err := s.runGeneration(ctx, created.ID, input, lessonType); err != nil {
		logrus.WithField("lessonContentId", created.ID.Hex()).Errorf("AIStudio: falló la generación de la lección: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// runGeneration pide el contenido al modelo y cierra el registro; ante
// una falla deja el documento en estado failed.
func (s *LessonContentService) runGeneration(ctx context.Context, id primitive.ObjectID, input *dto.LessonGenerateInput, lessonType string) error {
	genCtx := models.NewGenerationContext(input.Topic)
	if input.Level != "" {
		genCtx.Nivel = input.Level
	}
	genCtx.AdditionalContext = input.AdditionalContext
	genCtx.ModuleParams = map[string]interface{}{"tipo_leccion": lessonType}

	prompt, err := s.assembler.Assemble(ctx, models.ModuleLesson, genCtx)
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	result, err := s.gemini.GenerateJSON(ctx, prompt, lessonSchema, "")
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	var parsed struct {
		Title      string                  `json:"title"`
		Objectives []string                `json:"objectives"`
		Content    string                  `json:"content"`
		KeyPoints  []string                `json:"keyPoints"`
		Questions  []models.LessonQuestion `json:"questions"`
	}
	if err := decodeResult(result, &parsed); err != nil || parsed.Content == "" {
		s.markFailed(ctx, id, parseFailureMessage)
		return common.ErrAIInvalidResponse
	}

	title := parsed.Title
	if title == "" {
		title = input.Topic
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":     models.StatusCompleted,
			"title":      title,
			"objectives": parsed.Objectives,
			"content":    parsed.Content,
			"keyPoints":  parsed.KeyPoints,
			"questions":  parsed.Questions,
		},
	})
	return err
}

func (s *LessonContentService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("lessonContentId", id.Hex()).Errorf("AIStudio: no se pudo marcar la lección como fallida: %v", err)
	}
}

// List devuelve las lecciones generadas visibles para el usuario.
func (s *LessonContentService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.GeneratedLesson, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve una lección generada por id.
func (s *LessonContentService) Get(ctx context.Context, id primitive.ObjectID) (*models.GeneratedLesson, error) {
	lesson, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// Delete elimina una lección generada; solo el dueño o un admin.
func (s *LessonContentService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	lesson, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && lesson.CreatedBy != userID {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, id)
}
