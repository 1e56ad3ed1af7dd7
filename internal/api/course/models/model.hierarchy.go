package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos de contenido de una lección.
const (
	LessonContentTypeVideo    = "video"
	LessonContentTypeArticle  = "article"
	LessonContentTypeQuiz     = "quiz"
	LessonContentTypeDocument = "document"
	LessonContentTypeYouTube  = "youtube"
	LessonContentTypeMixed    = "mixed"
)

// Tipos de documento de un material descargable.
const (
	DocumentTypeWord  = "word"
	DocumentTypePDF   = "pdf"
	DocumentTypeText  = "text"
	DocumentTypeImage = "image"
	DocumentTypeVideo = "video"
)

// Level es el primer nivel de la jerarquía de un curso.
type Level struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CourseID    primitive.ObjectID `json:"courseId" bson:"courseId" index:"single:1"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Order       int                `json:"order" bson:"order"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// CourseModule es el segundo nivel de la jerarquía (nivel → módulo).
type CourseModule struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CourseID     primitive.ObjectID `json:"courseId" bson:"courseId" index:"single:1"`
	LevelID      primitive.ObjectID `json:"levelId" bson:"levelId" index:"single:1"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Order        int                `json:"order" bson:"order"`
	TotalClasses int                `json:"totalClasses" bson:"totalClasses"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// Section es el tercer nivel de la jerarquía (módulo → sección, opcional).
type Section struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CourseID  primitive.ObjectID `json:"courseId" bson:"courseId" index:"single:1"`
	LevelID   primitive.ObjectID `json:"levelId,omitempty" bson:"levelId,omitempty"`
	ModuleID  primitive.ObjectID `json:"moduleId,omitempty" bson:"moduleId,omitempty" index:"single:1"`
	Name      string             `json:"name" bson:"name"`
	Order     int                `json:"order" bson:"order"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Question es una pregunta de quiz embebida en la lección.
type Question struct {
	QuestionTitle      string   `json:"questionTitle" bson:"questionTitle"`
	Options            []string `json:"options" bson:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" bson:"correctAnswerIndex"`
}

// LessonMaterial es un material descargable de una lección.
type LessonMaterial struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	LessonID   primitive.ObjectID `json:"lessonId" bson:"lessonId" index:"single:1"`
	Name       string             `json:"name" bson:"name"`
	Type       string             `json:"type" bson:"type"`
	URL        string             `json:"url" bson:"url"`
	FileSize   int64              `json:"fileSize,omitempty" bson:"fileSize,omitempty"`
	MimeType   string             `json:"mimeType,omitempty" bson:"mimeType,omitempty"`
	UploadedBy primitive.ObjectID `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// YouTubeVideo es un video de YouTube embebido en una lección.
type YouTubeVideo struct {
	VideoID      string `json:"videoId" bson:"videoId"`
	Title        string `json:"title" bson:"title"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	Duration     int    `json:"duration,omitempty" bson:"duration,omitempty"`
}

// EmbedURL retorna la URL embebible del video.
func (v *YouTubeVideo) EmbedURL() string {
	return "https://www.youtube.com/embed/" + v.VideoID
}

// LocalVideo es un video subido directamente.
type LocalVideo struct {
	URL          string `json:"url" bson:"url"`
	Title        string `json:"title,omitempty" bson:"title,omitempty"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	Duration     int    `json:"duration,omitempty" bson:"duration,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
}

// Lesson es el último nivel de la jerarquía de un curso.
type Lesson struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	ContentType string             `json:"contentType" bson:"contentType"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`

	// Contenido video
	VideoURL     string        `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	VimeoVideoID string        `json:"vimeoVideoId,omitempty" bson:"vimeoVideoId,omitempty"`
	YouTubeVideo *YouTubeVideo `json:"youtubeVideo,omitempty" bson:"youtubeVideo,omitempty"`
	LocalVideo   *LocalVideo   `json:"localVideo,omitempty" bson:"localVideo,omitempty"`

	// Contenido artículo
	LessonBody string `json:"lessonBody,omitempty" bson:"lessonBody,omitempty"`

	// Contenido quiz
	Questions []Question `json:"questions,omitempty" bson:"questions,omitempty"`

	// Materiales
	PDFLinks []string `json:"pdfLinks,omitempty" bson:"pdfLinks,omitempty"`

	// Referencias jerárquicas. La declaración courseId→moduleId→order
	// define el orden de claves del index compuesto idx_lesson_path.
	CourseID  primitive.ObjectID `json:"courseId" bson:"courseId" index:"compound:idx_lesson_path"`
	LevelID   primitive.ObjectID `json:"levelId,omitempty" bson:"levelId,omitempty"`
	ModuleID  primitive.ObjectID `json:"moduleId,omitempty" bson:"moduleId,omitempty" index:"compound:idx_lesson_path"`
	SectionID primitive.ObjectID `json:"sectionId,omitempty" bson:"sectionId,omitempty"`

	// Metadata
	Order        int    `json:"order" bson:"order" index:"compound:idx_lesson_path"`
	Duration     int    `json:"duration" bson:"duration"`
	IsFree       bool   `json:"isFree" bson:"isFree"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	CreatedAt    int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt" bson:"updatedAt"`
}

// HierarchyLesson es una lección resumida dentro del árbol de jerarquía.
type HierarchyLesson struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Order       int                `json:"order"`
	ContentType string             `json:"contentType"`
	Duration    int                `json:"duration"`
	IsFree      bool               `json:"isFree"`
}

// HierarchyModule es un módulo con sus lecciones dentro del árbol.
type HierarchyModule struct {
	ID           primitive.ObjectID `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	Order        int                `json:"order"`
	TotalClasses int                `json:"totalClasses"`
	Lessons      []HierarchyLesson  `json:"lessons"`
}

// HierarchyLevel es un nivel con sus módulos dentro del árbol.
type HierarchyLevel struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Order       int                `json:"order"`
	Modules     []HierarchyModule  `json:"modules"`
}

// CourseHierarchy es el árbol completo Course→Levels→Modules→Lessons.
type CourseHierarchy struct {
	CourseID   primitive.ObjectID `json:"courseId"`
	CourseName string             `json:"courseName"`
	Levels     []HierarchyLevel   `json:"levels"`
}

// LessonPath es la cadena lección→módulo→nivel→curso para breadcrumbs
// y para armar el contexto de generación (tema/unidad/nivel).
type LessonPath struct {
	LessonID   primitive.ObjectID `json:"lessonId"`
	LessonName string             `json:"lessonName"`
	ModuleID   primitive.ObjectID `json:"moduleId,omitempty"`
	ModuleName string             `json:"moduleName,omitempty"`
	LevelID    primitive.ObjectID `json:"levelId,omitempty"`
	LevelName  string             `json:"levelName,omitempty"`
	CourseID   primitive.ObjectID `json:"courseId"`
	CourseName string             `json:"courseName"`
}
