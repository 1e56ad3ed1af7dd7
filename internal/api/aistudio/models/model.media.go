package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeneratedAudio es un audio TTS generado a partir de un texto.
type GeneratedAudio struct {
	ID              primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string              `json:"title" bson:"title"`
	Text            string              `json:"text" bson:"text"`
	VoiceID         string              `json:"voiceId" bson:"voiceId"`
	Speed           float64             `json:"speed" bson:"speed"`
	Pitch           float64             `json:"pitch" bson:"pitch"`
	Status          string              `json:"status" bson:"status" index:"single:1"`
	AudioURL        string              `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`
	DurationSeconds float64             `json:"durationSeconds,omitempty" bson:"durationSeconds,omitempty"`
	LessonID        *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy       primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage    string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt       int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64               `json:"updatedAt" bson:"updatedAt"`
}

// Personajes disponibles para los podcasts, con su voz TTS asignada.
type PodcastVoice struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	VoiceID string `json:"voiceId"`
	Role    string `json:"role"`
}

// PodcastVoices define los hablantes disponibles.
var PodcastVoices = []PodcastVoice{
	{ID: "host_male", Name: "Carlos (Presentador)", VoiceID: "es-ES-Standard-B", Role: "host"},
	{ID: "host_female", Name: "Ana (Presentadora)", VoiceID: "es-ES-Standard-A", Role: "host"},
	{ID: "guest_male", Name: "Miguel (Invitado)", VoiceID: "es-MX-Standard-B", Role: "guest"},
	{ID: "guest_female", Name: "Sofía (Invitada)", VoiceID: "es-MX-Standard-A", Role: "guest"},
	{ID: "expert_male", Name: "Diego (Experto)", VoiceID: "es-ES-Standard-D", Role: "expert"},
	{ID: "expert_female", Name: "María (Experta)", VoiceID: "es-ES-Standard-C", Role: "expert"},
}

// FindPodcastVoice busca un hablante por su id.
func FindPodcastVoice(id string) (PodcastVoice, bool) {
	for _, v := range PodcastVoices {
		if v.ID == id {
			return v, true
		}
	}
	return PodcastVoice{}, false
}

// Estilos de podcast soportados.
const (
	PodcastStyleConversational = "conversational"
	PodcastStyleLecture        = "lecture"
	PodcastStyleInterview      = "interview"
	PodcastStyleDebate         = "debate"
	PodcastStyleStorytelling   = "storytelling"
)

// PodcastSegment es un turno del guión con su hablante y voz.
type PodcastSegment struct {
	Order            int     `json:"order" bson:"order"`
	Speaker          string  `json:"speaker" bson:"speaker"`
	SpeakerName      string  `json:"speakerName" bson:"speakerName"`
	Text             string  `json:"text" bson:"text"`
	VoiceID          string  `json:"voiceId" bson:"voiceId"`
	DurationEstimate float64 `json:"durationEstimate,omitempty" bson:"durationEstimate,omitempty"`
}

// Podcast es un episodio generado: guión multivoces más audio concatenado.
type Podcast struct {
	ID                    primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title                 string              `json:"title" bson:"title"`
	Topic                 string              `json:"topic" bson:"topic"`
	Style                 string              `json:"style" bson:"style"`
	TargetDurationMinutes int                 `json:"targetDurationMinutes" bson:"targetDurationMinutes"`
	NumSpeakers           int                 `json:"numSpeakers" bson:"numSpeakers"`
	SpeakerIDs            []string            `json:"speakerIds" bson:"speakerIds"`
	Language              string              `json:"language" bson:"language"`
	AdditionalContext     string              `json:"additionalContext,omitempty" bson:"additionalContext,omitempty"`
	Status                string              `json:"status" bson:"status" index:"single:1"`
	Segments              []PodcastSegment    `json:"segments" bson:"segments"`
	AudioURL              string              `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`
	ActualDurationSeconds float64             `json:"actualDurationSeconds,omitempty" bson:"actualDurationSeconds,omitempty"`
	LessonID              *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy             primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage          string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt             int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt             int64               `json:"updatedAt" bson:"updatedAt"`
}

// Transcript arma la transcripción del episodio a partir de los segmentos.
func (p *Podcast) Transcript() string {
	if len(p.Segments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(p.Segments))
	for _, s := range p.Segments {
		lines = append(lines, fmt.Sprintf("%s: %s", s.SpeakerName, s.Text))
	}
	return strings.Join(lines, "\n\n")
}

// Relaciones de aspecto soportadas para los videos avatar.
const (
	AspectLandscape = "16:9"
	AspectPortrait  = "9:16"
	AspectSquare    = "1:1"
)

// GeneratedVideo es un video avatar generado por el proveedor externo.
type GeneratedVideo struct {
	ID              primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string              `json:"title" bson:"title"`
	Description     string              `json:"description,omitempty" bson:"description,omitempty"`
	Script          string              `json:"script" bson:"script"`
	AvatarID        string              `json:"avatarId" bson:"avatarId"`
	VoiceID         string              `json:"voiceId" bson:"voiceId"`
	AspectRatio     string              `json:"aspectRatio" bson:"aspectRatio"`
	BackgroundColor string              `json:"backgroundColor" bson:"backgroundColor"`
	TestMode        bool                `json:"testMode" bson:"testMode"`
	Status          string              `json:"status" bson:"status" index:"single:1"`
	VideoURL        string              `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	ThumbnailURL    string              `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	Duration        float64             `json:"duration,omitempty" bson:"duration,omitempty"`
	ProviderVideoID string              `json:"providerVideoId,omitempty" bson:"providerVideoId,omitempty"`
	LessonID        *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy       primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage    string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt       int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64               `json:"updatedAt" bson:"updatedAt"`
	CompletedAt     int64               `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}
