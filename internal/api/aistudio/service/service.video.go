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
)

// videoGenerationTimeout marca como fallidos los videos que el proveedor
// no completó en este plazo.
const videoGenerationTimeout = 30 * time.Minute

// VideoService genera videos con avatares a través del proveedor externo.
// La generación es asíncrona: el documento queda en queued y un worker
// consulta el estado hasta que el proveedor termina.
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.GeneratedVideo]
	heygen *ai.HeyGenClient
}

// NewVideoService crea un VideoService nuevo.
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedVideos)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de videos generados: %v", common.ErrNotFound)
	}
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.GeneratedVideo](collection),
		heygen:               ai.NewHeyGenClient(global.MongoDB_ServerConfig.HeyGenAPIKey),
	}, nil
}

// Generate crea el registro y envía el video al proveedor.
func (s *VideoService) Generate(ctx context.Context, input *dto.VideoGenerateInput, userID primitive.ObjectID) (*models.GeneratedVideo, error) {
	if !s.heygen.Configured() {
		return nil, common.ErrAINotConfigured
	}

	title := input.Title
	if title == "" {
		title = "Video: " + utility.TruncateString(input.Script, 50)
	}
	aspectRatio := input.AspectRatio
	if aspectRatio == "" {
		aspectRatio = models.AspectLandscape
	}
	backgroundColor := input.BackgroundColor
	if backgroundColor == "" {
		backgroundColor = "#ffffff"
	}

	video := models.GeneratedVideo{
		Title:           title,
		Script:          input.Script,
		AvatarID:        input.AvatarID,
		VoiceID:         input.VoiceID,
		AspectRatio:     aspectRatio,
		BackgroundColor: backgroundColor,
		TestMode:        input.TestMode,
		Status:          models.StatusPending,
		LessonID:        utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy:       userID,
	}
	created, err := s.InsertOne(ctx, video)
	if err != nil {
		return nil, err
	}

	// Una falla al encolar no es un error HTTP: se responde el artefacto
	// en estado failed con su errorMessage.
	if err := s.submit(ctx, &created); err != nil {
		logrus.WithField("videoId", created.ID.Hex()).Errorf("AIStudio: falló el envío del video al proveedor: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// submit envía el video al proveedor y deja el documento en queued; ante
// una falla lo deja en estado failed.
func (s *VideoService) submit(ctx context.Context, video *models.GeneratedVideo) error {
	providerID, err := s.heygen.GenerateVideo(ctx, ai.VideoRequest{
		Title:           video.Title,
		Script:          video.Script,
		AvatarID:        video.AvatarID,
		VoiceID:         video.VoiceID,
		AspectRatio:     video.AspectRatio,
		BackgroundColor: video.BackgroundColor,
		TestMode:        video.TestMode,
	})
	if err != nil {
		s.markFailed(ctx, video.ID, err.Error())
		return err
	}

	_, err = s.UpdateById(ctx, video.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":          models.StatusQueued,
			"providerVideoId": providerID,
		},
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"videoId":         video.ID.Hex(),
		"providerVideoId": providerID,
	}).Info("AIStudio: video enviado al proveedor")
	return nil
}

func (s *VideoService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("videoId", id.Hex()).Errorf("AIStudio: no se pudo marcar el video como fallido: %v", err)
	}
}

// videoInProgress son los estados en los que el proveedor todavía trabaja.
var videoInProgress = []string{models.StatusQueued, models.StatusGenerating, models.StatusProcessing}

// RefreshStatus consulta el estado en el proveedor y lo persiste si cambió.
func (s *VideoService) RefreshStatus(ctx context.Context, id primitive.ObjectID) (*models.GeneratedVideo, error) {
	video, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalStatus(video.Status) || video.ProviderVideoID == "" {
		return &video, nil
	}

	providerStatus, err := s.heygen.GetVideoStatus(ctx, video.ProviderVideoID)
	if err != nil {
		// Un fallo transitorio del proveedor no invalida el video.
		logrus.WithField("videoId", id.Hex()).Warnf("AIStudio: no se pudo consultar el estado del video: %v", err)
		return &video, nil
	}

	return s.applyProviderStatus(ctx, &video, providerStatus)
}

// applyProviderStatus traduce el estado del proveedor al documento.
func (s *VideoService) applyProviderStatus(ctx context.Context, video *models.GeneratedVideo, providerStatus *ai.VideoStatus) (*models.GeneratedVideo, error) {
	set := map[string]interface{}{}

	switch providerStatus.Status {
	case models.StatusCompleted:
		set["status"] = models.StatusCompleted
		set["videoUrl"] = providerStatus.VideoURL
		set["thumbnailUrl"] = providerStatus.ThumbnailURL
		set["duration"] = providerStatus.Duration
		set["completedAt"] = time.Now().UnixMilli()
	case models.StatusFailed:
		message := providerStatus.Error
		if message == "" {
			message = "El proveedor reportó un error de generación"
		}
		set["status"] = models.StatusFailed
		set["errorMessage"] = message
	case models.StatusProcessing:
		if models.CanAdvance(models.VideoLifecycle, video.Status, models.StatusProcessing) {
			set["status"] = models.StatusProcessing
		}
	}

	if len(set) == 0 {
		return video, nil
	}

	updated, err := s.UpdateById(ctx, video.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RefreshPending consulta el estado de todos los videos en curso. Los que
// superaron el plazo máximo se marcan como fallidos por timeout.
func (s *VideoService) RefreshPending(ctx context.Context) error {
	videos, err := s.Find(ctx, bson.M{"status": bson.M{"$in": videoInProgress}}, nil)
	if err != nil {
		return err
	}

	deadline := time.Now().Add(-videoGenerationTimeout).UnixMilli()
	for i := range videos {
		video := &videos[i]
		if video.CreatedAt < deadline {
			s.markFailed(ctx, video.ID, "La generación del video superó el tiempo máximo de espera")
			continue
		}
		if _, err := s.RefreshStatus(ctx, video.ID); err != nil {
			logrus.WithField("videoId", video.ID.Hex()).Warnf("AIStudio: error refrescando el video: %v", err)
		}
	}
	return nil
}

// Cancel cancela un video que aún no terminó. Solo se permite en pending,
// queued o generating.
func (s *VideoService) Cancel(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) (*models.GeneratedVideo, error) {
	video, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && video.CreatedBy != userID {
		return nil, common.ErrForbidden
	}

	switch video.Status {
	case models.StatusPending, models.StatusQueued, models.StatusGenerating:
	default:
		return nil, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("No se puede cancelar un video en estado %s", video.Status),
			common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": "Cancelado por el usuario",
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Regenerate reinicia el documento y lo vuelve a enviar al proveedor.
func (s *VideoService) Regenerate(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) (*models.GeneratedVideo, error) {
	video, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && video.CreatedBy != userID {
		return nil, common.ErrForbidden
	}
	if !s.heygen.Configured() {
		return nil, common.ErrAINotConfigured
	}

	reset, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": models.StatusPending},
		Unset: map[string]interface{}{
			"videoUrl":        "",
			"thumbnailUrl":    "",
			"duration":        "",
			"providerVideoId": "",
			"errorMessage":    "",
			"completedAt":     "",
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.submit(ctx, &reset); err != nil {
		logrus.WithField("videoId", id.Hex()).Errorf("AIStudio: fallo al reenviar video: %v", err)
	}
	final, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// Update edita los metadatos del video.
func (s *VideoService) Update(ctx context.Context, id primitive.ObjectID, input *dto.VideoUpdateInput) (*models.GeneratedVideo, error) {
	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		video, err := s.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &video, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// List devuelve los videos visibles para el usuario.
func (s *VideoService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.GeneratedVideo, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve un video por id.
func (s *VideoService) Get(ctx context.Context, id primitive.ObjectID) (*models.GeneratedVideo, error) {
	video, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Delete elimina un video; solo el dueño o un admin.
func (s *VideoService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	video, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && video.CreatedBy != userID {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, id)
}

// Avatars devuelve los avatares del proveedor.
func (s *VideoService) Avatars(ctx context.Context) ([]ai.Avatar, error) {
	return s.heygen.ListAvatars(ctx)
}

// ProviderVoices devuelve las voces del proveedor filtradas por idioma.
func (s *VideoService) ProviderVoices(ctx context.Context, language string) ([]ai.AvatarVoice, error) {
	return s.heygen.ListVoices(ctx, language)
}

// Quota devuelve los créditos restantes de la cuenta del proveedor.
func (s *VideoService) Quota(ctx context.Context) (map[string]interface{}, error) {
	return s.heygen.RemainingQuota(ctx)
}
