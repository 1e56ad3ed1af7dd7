// Package models - modelos del dominio de cursos y su jerarquía.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados de un curso.
const (
	CourseStatusDraft   = "draft"
	CourseStatusPending = "pending"
	CourseStatusLive    = "live"
	CourseStatusArchive = "archive"
)

// Estados de precio de un curso.
const (
	PriceStatusFree    = "free"
	PriceStatusPremium = "premium"
)

// Author es el autor embebido de un curso.
type Author struct {
	ID       primitive.ObjectID `json:"id" bson:"id"`
	Name     string             `json:"name" bson:"name"`
	ImageURL string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

// CourseMeta es la metadata embebida de un curso.
type CourseMeta struct {
	Duration     string   `json:"duration,omitempty" bson:"duration,omitempty"`
	Summary      string   `json:"summary,omitempty" bson:"summary,omitempty"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Language     string   `json:"language,omitempty" bson:"language,omitempty"`
	Learnings    []string `json:"learnings,omitempty" bson:"learnings,omitempty"`
	Requirements []string `json:"requirements,omitempty" bson:"requirements,omitempty"`
}

// Course define un curso del catálogo.
type Course struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string               `json:"name" bson:"name" index:"text"`
	ThumbnailURL  string               `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	VideoURL      string               `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	CategoryID    *primitive.ObjectID  `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"`
	Status        string               `json:"status" bson:"status" index:"single:1"`
	PriceStatus   string               `json:"priceStatus" bson:"priceStatus"`
	Author        *Author              `json:"author,omitempty" bson:"author,omitempty"`
	StudentsCount int                  `json:"studentsCount" bson:"studentsCount"`
	Rating        float64              `json:"rating" bson:"rating"`
	LessonsCount  int                  `json:"lessonsCount" bson:"lessonsCount"`
	CourseMeta    CourseMeta           `json:"courseMeta" bson:"courseMeta"`
	IsFeatured    bool                 `json:"isFeatured" bson:"isFeatured"`
	Level         string               `json:"level,omitempty" bson:"level,omitempty"`
	Language      string               `json:"language,omitempty" bson:"language,omitempty"`
	TutorIDs      []primitive.ObjectID `json:"tutorIds,omitempty" bson:"tutorIds,omitempty"`
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt" bson:"updatedAt"`
}

// Category define una categoría de cursos.
type Category struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" index:"unique"`
	ThumbnailURL string             `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	OrderIndex   int                `json:"orderIndex" bson:"orderIndex"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
