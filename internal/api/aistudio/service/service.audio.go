package aistudiosvc

import (
	"context"
	"fmt"
	"time"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/ai"
	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// artifactListLimit limita los listados de artefactos generados.
const artifactListLimit = 50

// AudioService genera audios TTS y administra su ciclo de vida.
type AudioService struct {
	*basesvc.BaseServiceMongoImpl[models.GeneratedAudio]
	tts *ai.TTSClient
}

// NewAudioService crea un AudioService nuevo.
func NewAudioService() (*AudioService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedAudio)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de audios generados: %v", common.ErrNotFound)
	}
	cfg := global.MongoDB_ServerConfig
	return &AudioService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.GeneratedAudio](collection),
		tts:                  ai.NewTTSClient(cfg.TTSEndpoint, cfg.TTSFallbackEndpoint),
	}, nil
}

// artifactListFilter arma el filtro común de listado: lección opcional y,
// para quien no es admin, solo sus propios artefactos.
func artifactListFilter(lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) bson.M {
	filter := bson.M{}
	if lessonID != nil {
		filter["lessonId"] = *lessonID
	}
	if !isAdmin {
		filter["createdBy"] = userID
	}
	return filter
}

// artifactListOptions ordena por creación descendente con el límite común.
func artifactListOptions() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(artifactListLimit)
}

// Generate sintetiza el audio de forma síncrona: crea el registro en
// estado generating, llama al motor TTS, sube el MP3 y marca completed.
// Una falla de generación no es un error HTTP: se responde el artefacto
// en estado failed con su errorMessage.
func (s *AudioService) Generate(ctx context.Context, input *dto.AudioGenerateInput, userID primitive.ObjectID) (*models.GeneratedAudio, error) {
	speed := input.Speed
	if speed == 0 {
		speed = 1.0
	}
	voiceID := input.VoiceID
	if voiceID == "" {
		voiceID = ai.DefaultTTSVoice
	}
	title := input.Title
	if title == "" {
		title = utility.TruncateString(input.Text, 50)
	}

	audio := models.GeneratedAudio{
		Title:     title,
		Text:      input.Text,
		VoiceID:   voiceID,
		Speed:     speed,
		Pitch:     input.Pitch,
		Status:    models.StatusGenerating,
		LessonID:  utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy: userID,
	}

	created, err := s.InsertOne(ctx, audio)
	if err != nil {
		return nil, err
	}

	if err := s.runGeneration(ctx, created.ID, input.Text, voiceID, speed, input.Pitch); err != nil {
		logrus.WithField("audioId", created.ID.Hex()).Errorf("AIStudio: falló la síntesis de audio: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// runGeneration sintetiza, sube el MP3 y cierra el registro; ante una
// falla deja el documento en estado failed.
func (s *AudioService) runGeneration(ctx context.Context, id primitive.ObjectID, text, voiceID string, speed, pitch float64) error {
	data, err := s.tts.GenerateAudio(ctx, text, voiceID, speed, pitch)
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	objectPath := fmt.Sprintf("audio/%s.mp3", id.Hex())
	audioURL, err := utility.UploadToStorage(ctx, objectPath, data, "audio/mpeg")
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":          models.StatusCompleted,
			"audioUrl":        audioURL,
			"durationSeconds": ai.EstimateDuration(text, speed),
		},
	})
	return err
}

func (s *AudioService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("audioId", id.Hex()).Errorf("AIStudio: no se pudo marcar el audio como fallido: %v", err)
	}
}

// List devuelve los audios visibles para el usuario.
func (s *AudioService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.GeneratedAudio, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve un audio por id.
func (s *AudioService) Get(ctx context.Context, id primitive.ObjectID) (*models.GeneratedAudio, error) {
	audio, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &audio, nil
}

// Delete elimina un audio; solo el dueño o un admin pueden hacerlo.
// El objeto en Storage se limpia con mejor esfuerzo.
func (s *AudioService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	audio, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && audio.CreatedBy != userID {
		return common.ErrForbidden
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	if audio.AudioURL != "" {
		objectPath := fmt.Sprintf("audio/%s.mp3", id.Hex())
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if delErr := utility.DeleteFromStorage(cleanupCtx, objectPath); delErr != nil {
			logrus.WithField("audioId", id.Hex()).Warnf("AIStudio: no se pudo borrar el MP3 de Storage: %v", delErr)
		}
	}
	return nil
}

// Voices devuelve el catálogo de voces de síntesis.
func (s *AudioService) Voices(language string) []ai.TTSVoice {
	return ai.AvailableVoices(language)
}
