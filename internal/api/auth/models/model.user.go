// Package models - modelos del dominio auth (usuarios, códigos de acceso, tokens).
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles soportados por el sistema.
const (
	RoleAdmin   = "admin"
	RoleAuthor  = "author"
	RoleTutor   = "tutor"
	RoleStudent = "student"
)

// RoleList es la lista de roles de un usuario. Los documentos antiguos
// guardan el rol como un string suelto; al decodificar desde Mongo se
// normaliza siempre a lista.
type RoleList []string

// UnmarshalBSONValue acepta tanto un string como un array de strings y
// normaliza el resultado con NormalizeRoles.
func (r *RoleList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var value interface{}
	raw := bson.RawValue{Type: t, Value: data}
	if err := raw.Unmarshal(&value); err != nil {
		return err
	}
	*r = NormalizeRoles(value)
	return nil
}

// User define el modelo de usuario.
// Los estudiantes además llevan matrícula (enrolledCourses), nivel,
// código de acceso vigente y hash del código QR de login.
type User struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Email           string               `json:"email" bson:"email" index:"unique"`
	Password        string               `json:"-" bson:"password,omitempty"`
	Roles           RoleList             `json:"roles" bson:"roles"`
	EnrolledCourses []primitive.ObjectID `json:"enrolledCourses" bson:"enrolledCourses,omitempty"`
	StudentLevel    string               `json:"studentLevel,omitempty" bson:"studentLevel,omitempty"`
	Phone           string               `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	AvatarURL       string               `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	IsDisabled      bool                 `json:"isDisabled" bson:"isDisabled"`
	DisabledNote    string               `json:"-" bson:"disabledNote,omitempty"`
	AccessCode      string               `json:"-" bson:"accessCode,omitempty"`
	QRCodeHash      string               `json:"-" bson:"qrCodeHash,omitempty"`
	QRCodeURL       string               `json:"qrCodeUrl,omitempty" bson:"qrCodeUrl,omitempty"`
	LastLoginAt     int64                `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt       int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64                `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeRoles normaliza el campo role recibido como string o como lista
// a una lista de strings. Un valor vacío o desconocido produce ["student"].
func NormalizeRoles(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{RoleStudent}
	case string:
		if v == "" {
			return []string{RoleStudent}
		}
		return []string{v}
	case []string:
		if len(v) == 0 {
			return []string{RoleStudent}
		}
		return v
	case []interface{}:
		return normalizeRoleItems(v)
	case primitive.A:
		return normalizeRoleItems(v)
	case RoleList:
		return NormalizeRoles([]string(v))
	default:
		return []string{RoleStudent}
	}
}

func normalizeRoleItems(items []interface{}) []string {
	roles := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			roles = append(roles, s)
		}
	}
	if len(roles) == 0 {
		return []string{RoleStudent}
	}
	return roles
}

// HasRole verifica si el usuario tiene alguno de los roles indicados.
func (u *User) HasRole(roles ...string) bool {
	for _, userRole := range u.Roles {
		for _, role := range roles {
			if userRole == role {
				return true
			}
		}
	}
	return false
}

// IsAdmin indica si el usuario tiene rol admin.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// IsStudent indica si el usuario tiene rol student.
func (u *User) IsStudent() bool {
	return u.HasRole(RoleStudent)
}

// IsEnrolledIn verifica si el estudiante está matriculado en el curso.
func (u *User) IsEnrolledIn(courseID primitive.ObjectID) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
