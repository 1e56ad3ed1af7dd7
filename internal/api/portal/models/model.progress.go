// Package models - modelos del portal de estudiantes y del dashboard
// administrativo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Niveles de estudiante y su orden de dificultad.
const (
	StudentLevelBasic        = "basico"
	StudentLevelIntermediate = "intermedio"
	StudentLevelAdvanced     = "avanzado"
)

// StudentProgress registra una lección completada por un estudiante.
// La clave natural studentId+lessonId se refuerza con un index único.
type StudentProgress struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StudentID   primitive.ObjectID `json:"studentId" bson:"studentId" index:"compound:idx_student_lesson"`
	LessonID    primitive.ObjectID `json:"lessonId" bson:"lessonId" index:"compound:idx_student_lesson"`
	CourseID    primitive.ObjectID `json:"courseId" bson:"courseId" index:"single:1"`
	Completed   bool               `json:"completed" bson:"completed"`
	CompletedAt int64              `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// CourseProgress resume el avance de un estudiante en un curso.
type CourseProgress struct {
	CompletedLessons int     `json:"completedLessons"`
	TotalLessons     int     `json:"totalLessons"`
	ProgressPercent  float64 `json:"progressPercent"`
}

// EnrolledCourse es un curso matriculado con el avance del estudiante.
type EnrolledCourse struct {
	CourseID        primitive.ObjectID `json:"courseId"`
	Name            string             `json:"name"`
	Description     string             `json:"description,omitempty"`
	ThumbnailURL    string             `json:"thumbnailUrl,omitempty"`
	Language        string             `json:"language,omitempty"`
	ProgressPercent float64            `json:"progressPercent"`
	EnrolledAt      int64              `json:"enrolledAt,omitempty"`
}

// PortalLesson es una lección dentro del detalle de curso del portal.
type PortalLesson struct {
	ID              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description,omitempty"`
	Order           int                `json:"order"`
	ContentType     string             `json:"contentType,omitempty"`
	DurationMinutes int                `json:"durationMinutes,omitempty"`
	IsCompleted     bool               `json:"isCompleted"`
	IsLocked        bool               `json:"isLocked"`
	HasFlashcards   bool               `json:"hasFlashcards"`
	HasQuizzes      bool               `json:"hasQuizzes"`
	HasMaterials    bool               `json:"hasMaterials"`
}

// PortalModule es un módulo con sus lecciones dentro del detalle de curso.
type PortalModule struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Order       int                `json:"order"`
	IsLocked    bool               `json:"isLocked"`
	Lessons     []PortalLesson     `json:"lessons"`
}

// PortalLevel es un nivel del curso con su estado de bloqueo según el
// nivel del estudiante.
type PortalLevel struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Order       int                `json:"order"`
	IsLocked    bool               `json:"isLocked"`
	IsCurrent   bool               `json:"isCurrent"`
	Modules     []PortalModule     `json:"modules"`
}

// CourseDetail es el detalle completo de un curso para el portal.
type CourseDetail struct {
	CourseID         primitive.ObjectID `json:"courseId"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	ThumbnailURL     string             `json:"thumbnailUrl,omitempty"`
	Levels           []PortalLevel      `json:"levels"`
	StudentLevel     string             `json:"studentLevel"`
	TotalLessons     int                `json:"totalLessons"`
	CompletedLessons int                `json:"completedLessons"`
	ProgressPercent  float64            `json:"progressPercent"`
}

// PortalMaterial es un material descargable dentro del contenido de lección.
type PortalMaterial struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
	Type string             `json:"type"`
	URL  string             `json:"url"`
}
