package aistudiodto

// AudioGenerateInput entrada de generación de audio TTS.
type AudioGenerateInput struct {
	Title    string  `json:"title"`
	Text     string  `json:"text" validate:"required,max=5000"`
	VoiceID  string  `json:"voiceId"`
	Speed    float64 `json:"speed" validate:"omitempty,gte=0.5,lte=2"`
	Pitch    float64 `json:"pitch" validate:"omitempty,gte=-10,lte=10"`
	LessonID string  `json:"lessonId"`
}

// PresentationGenerateInput entrada de generación de presentación.
type PresentationGenerateInput struct {
	Topic             string `json:"topic" validate:"required"`
	NumSlides         int    `json:"numSlides" validate:"omitempty,gte=3,lte=20"`
	Level             string `json:"level"`
	Language          string `json:"language"`
	AdditionalContext string `json:"additionalContext"`
	LessonID          string `json:"lessonId"`
}

// MindmapGenerateInput entrada de generación de mapa mental.
type MindmapGenerateInput struct {
	Topic             string `json:"topic" validate:"required"`
	Depth             int    `json:"depth" validate:"omitempty,gte=1,lte=5"`
	Level             string `json:"level"`
	Language          string `json:"language"`
	AdditionalContext string `json:"additionalContext"`
	LessonID          string `json:"lessonId"`
}

// PodcastGenerateInput entrada de generación de podcast.
type PodcastGenerateInput struct {
	Topic             string   `json:"topic" validate:"required"`
	Style             string   `json:"style" validate:"omitempty,oneof=conversational lecture interview debate storytelling"`
	DurationMinutes   int      `json:"durationMinutes" validate:"omitempty,gte=1,lte=60"`
	NumSpeakers       int      `json:"numSpeakers" validate:"omitempty,gte=1,lte=4"`
	SpeakerIDs        []string `json:"speakerIds"`
	Language          string   `json:"language"`
	Level             string   `json:"level"`
	AdditionalContext string   `json:"additionalContext"`
	LessonID          string   `json:"lessonId"`
}

// PodcastUpdateInput entrada de edición del guión de un podcast.
type PodcastUpdateInput struct {
	Title    string                `json:"title"`
	Segments []PodcastSegmentInput `json:"segments"`
}

// PodcastSegmentInput un turno del guión editado.
type PodcastSegmentInput struct {
	Speaker string `json:"speaker" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

// VideoGenerateInput entrada de generación de video avatar.
type VideoGenerateInput struct {
	Title           string `json:"title"`
	Script          string `json:"script" validate:"required,min=10,max=5000"`
	AvatarID        string `json:"avatarId" validate:"required"`
	VoiceID         string `json:"voiceId" validate:"required"`
	AspectRatio     string `json:"aspectRatio" validate:"omitempty,oneof=16:9 9:16 1:1"`
	BackgroundColor string `json:"backgroundColor"`
	TestMode        bool   `json:"testMode"`
	LessonID        string `json:"lessonId"`
}

// VideoUpdateInput entrada de edición de los metadatos de un video.
type VideoUpdateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FlashcardGenerateInput entrada de generación de flashcards.
type FlashcardGenerateInput struct {
	Topic             string `json:"topic" validate:"required"`
	NumCards          int    `json:"numCards" validate:"omitempty,gte=3,lte=30"`
	Difficulty        string `json:"difficulty" validate:"omitempty,oneof=basico intermedio avanzado"`
	Language          string `json:"language"`
	AdditionalContext string `json:"additionalContext"`
	LessonID          string `json:"lessonId"`
}

// QuizGenerateInput entrada de generación de cuestionario.
type QuizGenerateInput struct {
	Topic             string `json:"topic" validate:"required"`
	NumQuestions      int    `json:"numQuestions" validate:"omitempty,gte=3,lte=30"`
	Difficulty        string `json:"difficulty" validate:"omitempty,oneof=basico intermedio avanzado"`
	TimeLimitMinutes  int    `json:"timeLimitMinutes" validate:"omitempty,gte=1,lte=120"`
	Language          string `json:"language"`
	AdditionalContext string `json:"additionalContext"`
	LessonID          string `json:"lessonId"`
}

// LessonGenerateInput entrada de generación de contenido de lección.
type LessonGenerateInput struct {
	Topic             string `json:"topic" validate:"required"`
	LessonType        string `json:"lessonType" validate:"omitempty,oneof=article tutorial exercise"`
	Level             string `json:"level"`
	Language          string `json:"language"`
	AdditionalContext string `json:"additionalContext"`
	LessonID          string `json:"lessonId"`
}

// TranslateInput entrada de traducción de texto.
type TranslateInput struct {
	Text           string `json:"text" validate:"required,min=1,max=10000"`
	SourceLanguage string `json:"sourceLanguage" validate:"omitempty,oneof=auto es pt"`
	TargetLanguage string `json:"targetLanguage" validate:"required,oneof=es pt"`
}

// DetectLanguageInput entrada de detección de idioma.
type DetectLanguageInput struct {
	Text string `json:"text" validate:"required,min=1,max=10000"`
}
