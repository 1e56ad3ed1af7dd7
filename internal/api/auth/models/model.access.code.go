package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccessCode es un código de acceso de un solo uso para el login de estudiantes.
// Al generar uno nuevo se desactivan los códigos anteriores no usados del estudiante.
type AccessCode struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code" index:"unique"`
	StudentID   primitive.ObjectID `json:"studentId" bson:"studentId" index:"single"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	IsUsed      bool               `json:"isUsed" bson:"isUsed"`
	UsedAt      int64              `json:"usedAt,omitempty" bson:"usedAt,omitempty"`
	ExpiresAt   int64              `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
	GeneratedBy primitive.ObjectID `json:"generatedBy,omitempty" bson:"generatedBy,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
