// Package coursedto - datos de entrada del dominio de cursos.
package coursedto

// CourseMetaInput metadata embebida de un curso.
type CourseMetaInput struct {
	Duration     string   `json:"duration"`
	Summary      string   `json:"summary"`
	Description  string   `json:"description"`
	Language     string   `json:"language"`
	Learnings    []string `json:"learnings"`
	Requirements []string `json:"requirements"`
}

// CourseCreateInput entrada de creación de curso.
type CourseCreateInput struct {
	Name         string           `json:"name" validate:"required"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	VideoURL     string           `json:"videoUrl"`
	CategoryID   string           `json:"categoryId" transform:"str_objectid_ptr,optional,map=CategoryID"`
	Status       string           `json:"status" validate:"omitempty,oneof=draft pending live archive"`
	PriceStatus  string           `json:"priceStatus" validate:"omitempty,oneof=free premium"`
	Level        string           `json:"level"`
	Language     string           `json:"language"`
	IsFeatured   bool             `json:"isFeatured"`
	CourseMeta   *CourseMetaInput `json:"courseMeta"`
}

// CourseUpdateInput entrada de actualización de curso.
type CourseUpdateInput struct {
	Name         string           `json:"name"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	VideoURL     string           `json:"videoUrl"`
	CategoryID   string           `json:"categoryId" transform:"str_objectid_ptr,optional,map=CategoryID"`
	Status       string           `json:"status" validate:"omitempty,oneof=draft pending live archive"`
	PriceStatus  string           `json:"priceStatus" validate:"omitempty,oneof=free premium"`
	Level        string           `json:"level"`
	Language     string           `json:"language"`
	IsFeatured   *bool            `json:"isFeatured"`
	CourseMeta   *CourseMetaInput `json:"courseMeta"`
}

// AssignTutorInput entrada para asignar o retirar un tutor de un curso.
type AssignTutorInput struct {
	TutorID string `json:"tutorId" validate:"required"`
}

// CategoryCreateInput entrada de creación de categoría.
type CategoryCreateInput struct {
	Name         string `json:"name" validate:"required"`
	ThumbnailURL string `json:"thumbnailUrl"`
	OrderIndex   int    `json:"orderIndex"`
}

// CategoryUpdateInput entrada de actualización de categoría.
type CategoryUpdateInput struct {
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnailUrl"`
	OrderIndex   *int   `json:"orderIndex"`
}
