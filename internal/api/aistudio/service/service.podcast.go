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

// PodcastStyleInfo describe un estilo de podcast para el listado de la API.
type PodcastStyleInfo struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	RecommendedSpeakers int    `json:"recommendedSpeakers"`
}

// PodcastStyles son los estilos soportados con su descripción.
var PodcastStyles = []PodcastStyleInfo{
	{ID: models.PodcastStyleConversational, Name: "Conversacional", Description: "Charla relajada entre presentadores", RecommendedSpeakers: 2},
	{ID: models.PodcastStyleLecture, Name: "Clase magistral", Description: "Un experto explica el tema en profundidad", RecommendedSpeakers: 1},
	{ID: models.PodcastStyleInterview, Name: "Entrevista", Description: "Un presentador entrevista a un experto", RecommendedSpeakers: 2},
	{ID: models.PodcastStyleDebate, Name: "Debate", Description: "Dos posturas contrapuestas con moderador", RecommendedSpeakers: 3},
	{ID: models.PodcastStyleStorytelling, Name: "Narrativo", Description: "El tema contado como una historia", RecommendedSpeakers: 2},
}

// PodcastService genera episodios de podcast: guión multivoces con Gemini
// y audio concatenado con el motor TTS.
type PodcastService struct {
	*basesvc.BaseServiceMongoImpl[models.Podcast]
	gemini    *ai.GeminiClient
	tts       *ai.TTSClient
	assembler *PromptAssembler
}

// NewPodcastService crea un PodcastService nuevo.
func NewPodcastService(assembler *PromptAssembler) (*PodcastService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedPodcasts)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de podcasts: %v", common.ErrNotFound)
	}
	cfg := global.MongoDB_ServerConfig
	return &PodcastService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Podcast](collection),
		gemini:               ai.NewGeminiClient(),
		tts:                  ai.NewTTSClient(cfg.TTSEndpoint, cfg.TTSFallbackEndpoint),
		assembler:            assembler,
	}, nil
}

// defaultSpeakers elige los hablantes según el estilo cuando el pedido no
// los especifica.
func defaultSpeakers(style string, numSpeakers int) []string {
	var speakers []string
	switch style {
	case models.PodcastStyleInterview:
		speakers = []string{"host_female", "expert_male"}
	case models.PodcastStyleDebate:
		speakers = []string{"host_male", "expert_female", "guest_male"}
	default:
		speakers = []string{"host_male", "host_female", "guest_male", "guest_female"}
	}
	if numSpeakers < len(speakers) {
		speakers = speakers[:numSpeakers]
	}
	return speakers
}

var podcastScriptSchema = map[string]interface{}{
	"segments": []interface{}{
		map[string]interface{}{
			"speakerId":        "string (id del hablante)",
			"speakerName":      "string",
			"text":             "string",
			"durationEstimate": "number (segundos)",
		},
	},
}

// Generate crea un episodio completo: guión y audio en la misma llamada.
func (s *PodcastService) Generate(ctx context.Context, input *dto.PodcastGenerateInput, userID primitive.ObjectID) (*models.Podcast, error) {
	style := input.Style
	if style == "" {
		style = models.PodcastStyleConversational
	}
	duration := input.DurationMinutes
	if duration == 0 {
		duration = 10
	}
	numSpeakers := input.NumSpeakers
	if numSpeakers == 0 {
		numSpeakers = 2
	}
	language := input.Language
	if language == "" {
		language = "es"
	}

	speakers := input.SpeakerIDs
	for _, speakerID := range speakers {
		if _, ok := models.FindPodcastVoice(speakerID); !ok {
			return nil, common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Hablante desconocido: %s", speakerID), common.StatusBadRequest, nil)
		}
	}
	if len(speakers) == 0 {
		speakers = defaultSpeakers(style, numSpeakers)
	}

	podcast := models.Podcast{
		Title:                 "Podcast: " + utility.TruncateString(input.Topic, 50),
		Topic:                 input.Topic,
		Style:                 style,
		TargetDurationMinutes: duration,
		NumSpeakers:           numSpeakers,
		SpeakerIDs:            speakers,
		Language:              language,
		AdditionalContext:     input.AdditionalContext,
		Status:                models.StatusGeneratingScript,
		Segments:              []models.PodcastSegment{},
		LessonID:              utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy:             userID,
	}
	created, err := s.InsertOne(ctx, podcast)
	if err != nil {
		return nil, err
	}

	// Generación de extremo a extremo: guión y luego audio. El estado del
	// documento se actualiza en cada etapa.
	if err := s.runPipeline(ctx, &created); err != nil {
		logrus.WithField("podcastId", created.ID.Hex()).Errorf("AIStudio: falló la generación del podcast: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// runPipeline genera el guión y después el audio.
func (s *PodcastService) runPipeline(ctx context.Context, podcast *models.Podcast) error {
	segments, err := s.generateScript(ctx, podcast)
	if err != nil {
		s.markFailed(ctx, podcast.ID, err.Error())
		return err
	}

	updated, err := s.UpdateById(ctx, podcast.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"segments": segments},
	})
	if err != nil {
		return err
	}

	return s.generateAudio(ctx, &updated)
}

// generateScript pide el guión al modelo y lo normaliza con las voces.
func (s *PodcastService) generateScript(ctx context.Context, podcast *models.Podcast) ([]models.PodcastSegment, error) {
	speakerDescriptions := make([]map[string]interface{}, 0, len(podcast.SpeakerIDs))
	for _, speakerID := range podcast.SpeakerIDs {
		if voice, ok := models.FindPodcastVoice(speakerID); ok {
			speakerDescriptions = append(speakerDescriptions, map[string]interface{}{
				"id":   voice.ID,
				"name": voice.Name,
				"role": voice.Role,
			})
		}
	}

	genCtx := models.NewGenerationContext(podcast.Topic)
	genCtx.Duracion = fmt.Sprintf("%d minutos", podcast.TargetDurationMinutes)
	genCtx.AdditionalContext = podcast.AdditionalContext
	genCtx.ModuleParams = map[string]interface{}{
		"estilo":           podcast.Style,
		"duracion_minutos": podcast.TargetDurationMinutes,
		"num_hablantes":    podcast.NumSpeakers,
		"hablantes":        speakerDescriptions,
	}

	prompt, err := s.assembler.Assemble(ctx, models.ModulePodcast, genCtx)
	if err != nil {
		return nil, err
	}

	result, err := s.gemini.GenerateJSON(ctx, prompt, podcastScriptSchema, "")
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Segments []struct {
			SpeakerID        string  `json:"speakerId"`
			SpeakerName      string  `json:"speakerName"`
			Text             string  `json:"text"`
			DurationEstimate float64 `json:"durationEstimate"`
		} `json:"segments"`
	}
	if err := decodeResult(result, &parsed); err != nil || len(parsed.Segments) == 0 {
		return nil, common.ErrAIInvalidResponse
	}

	segments := make([]models.PodcastSegment, 0, len(parsed.Segments))
	for i, seg := range parsed.Segments {
		voiceID := ai.DefaultTTSVoice
		speakerName := seg.SpeakerName
		if voice, ok := models.FindPodcastVoice(seg.SpeakerID); ok {
			voiceID = voice.VoiceID
			if speakerName == "" {
				speakerName = voice.Name
			}
		}
		estimate := seg.DurationEstimate
		if estimate == 0 {
			estimate = ai.EstimateDuration(seg.Text, 1.0)
		}
		segments = append(segments, models.PodcastSegment{
			Order:            i + 1,
			Speaker:          seg.SpeakerID,
			SpeakerName:      speakerName,
			Text:             seg.Text,
			VoiceID:          voiceID,
			DurationEstimate: estimate,
		})
	}
	return segments, nil
}

// generateAudio sintetiza los segmentos, sube el MP3 y marca completed.
func (s *PodcastService) generateAudio(ctx context.Context, podcast *models.Podcast) error {
	if len(podcast.Segments) == 0 {
		return common.NewError(common.ErrCodeBusinessState,
			"El podcast no tiene guión para sintetizar", common.StatusBadRequest, nil)
	}

	if _, err := s.UpdateById(ctx, podcast.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": models.StatusGeneratingAudio},
	}); err != nil {
		return err
	}

	ttsSegments := make([]ai.TTSSegment, 0, len(podcast.Segments))
	totalDuration := 0.0
	for _, seg := range podcast.Segments {
		ttsSegments = append(ttsSegments, ai.TTSSegment{Text: seg.Text, VoiceID: seg.VoiceID})
		totalDuration += seg.DurationEstimate
	}

	data, err := s.tts.GenerateSegments(ctx, ttsSegments, 1.0)
	if err != nil {
		s.markFailed(ctx, podcast.ID, err.Error())
		return err
	}

	objectPath := fmt.Sprintf("podcasts/%s.mp3", podcast.ID.Hex())
	audioURL, err := utility.UploadToStorage(ctx, objectPath, data, "audio/mpeg")
	if err != nil {
		s.markFailed(ctx, podcast.ID, err.Error())
		return err
	}

	_, err = s.UpdateById(ctx, podcast.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":                models.StatusCompleted,
			"audioUrl":              audioURL,
			"actualDurationSeconds": totalDuration,
		},
	})
	return err
}

func (s *PodcastService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("podcastId", id.Hex()).Errorf("AIStudio: no se pudo marcar el podcast como fallido: %v", err)
	}
}

// Update edita el título o el guión. Cambiar el guión invalida el audio.
func (s *PodcastService) Update(ctx context.Context, id primitive.ObjectID, input *dto.PodcastUpdateInput) (*models.Podcast, error) {
	set := map[string]interface{}{}
	unset := map[string]interface{}{}

	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Segments != nil {
		segments := make([]models.PodcastSegment, 0, len(input.Segments))
		for i, seg := range input.Segments {
			voiceID := ai.DefaultTTSVoice
			speakerName := seg.Speaker
			if voice, ok := models.FindPodcastVoice(seg.Speaker); ok {
				voiceID = voice.VoiceID
				speakerName = voice.Name
			}
			segments = append(segments, models.PodcastSegment{
				Order:            i + 1,
				Speaker:          seg.Speaker,
				SpeakerName:      speakerName,
				Text:             seg.Text,
				VoiceID:          voiceID,
				DurationEstimate: ai.EstimateDuration(seg.Text, 1.0),
			})
		}
		set["segments"] = segments
		unset["audioUrl"] = ""
		unset["actualDurationSeconds"] = ""
	}

	if len(set) == 0 && len(unset) == 0 {
		podcast, err := s.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		return &podcast, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set, Unset: unset})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RegenerateScript vuelve a generar el guión y el audio desde cero.
func (s *PodcastService) RegenerateScript(ctx context.Context, id primitive.ObjectID) (*models.Podcast, error) {
	reset, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": models.StatusGeneratingScript},
		Unset: map[string]interface{}{
			"audioUrl":              "",
			"actualDurationSeconds": "",
			"errorMessage":          "",
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.runPipeline(ctx, &reset); err != nil {
		logrus.WithField("podcastId", id.Hex()).Errorf("AIStudio: falló la regeneración del guión: %v", err)
	}

	final, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// GenerateAudio sintetiza el audio del guión actual. Requiere un guión no
// vacío.
func (s *PodcastService) GenerateAudio(ctx context.Context, id primitive.ObjectID) (*models.Podcast, error) {
	podcast, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(podcast.Segments) == 0 {
		return nil, common.NewError(common.ErrCodeBusinessState,
			"El podcast no tiene guión para sintetizar", common.StatusBadRequest, nil)
	}

	if err := s.generateAudio(ctx, &podcast); err != nil {
		logrus.WithField("podcastId", id.Hex()).Errorf("AIStudio: falló la síntesis del podcast: %v", err)
	}

	final, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// GetTranscript arma la transcripción a partir del guión.
func (s *PodcastService) GetTranscript(ctx context.Context, id primitive.ObjectID) (string, error) {
	podcast, err := s.FindOneById(ctx, id)
	if err != nil {
		return "", err
	}
	transcript := podcast.Transcript()
	if transcript == "" {
		return "", common.NewError(common.ErrCodeDatabaseQuery,
			"El podcast aún no tiene guión", common.StatusNotFound, nil)
	}
	return transcript, nil
}

// List devuelve los podcasts visibles para el usuario.
func (s *PodcastService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.Podcast, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve un podcast por id.
func (s *PodcastService) Get(ctx context.Context, id primitive.ObjectID) (*models.Podcast, error) {
	podcast, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &podcast, nil
}

// Delete elimina un podcast; solo el dueño o un admin. El MP3 en Storage
// se limpia con mejor esfuerzo.
func (s *PodcastService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	podcast, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && podcast.CreatedBy != userID {
		return common.ErrForbidden
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	if podcast.AudioURL != "" {
		objectPath := fmt.Sprintf("podcasts/%s.mp3", id.Hex())
		if delErr := utility.DeleteFromStorage(ctx, objectPath); delErr != nil {
			logrus.WithField("podcastId", id.Hex()).Warnf("AIStudio: no se pudo borrar el MP3 de Storage: %v", delErr)
		}
	}
	return nil
}

// Voices devuelve los hablantes disponibles.
func (s *PodcastService) Voices() []models.PodcastVoice {
	return models.PodcastVoices
}

// Styles devuelve los estilos disponibles.
func (s *PodcastService) Styles() []PodcastStyleInfo {
	return PodcastStyles
}
