package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportedLanguage describe un idioma soportado por el traductor.
type SupportedLanguage struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Flag       string `json:"flag"`
}

// SupportedLanguages son los idiomas del curso: español y portugués.
var SupportedLanguages = map[string]SupportedLanguage{
	"es": {Code: "es", Name: "Spanish", NativeName: "Español", Flag: "🇵🇪"},
	"pt": {Code: "pt", Name: "Portuguese", NativeName: "Português", Flag: "🇧🇷"},
}

// TranslationHistory guarda una traducción realizada, recortada a 500
// caracteres por lado, para analítica de uso.
type TranslationHistory struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SourceText     string             `json:"sourceText" bson:"sourceText"`
	TranslatedText string             `json:"translatedText" bson:"translatedText"`
	SourceLanguage string             `json:"sourceLanguage" bson:"sourceLanguage"`
	TargetLanguage string             `json:"targetLanguage" bson:"targetLanguage"`
	CreatedBy      primitive.ObjectID `json:"createdBy" bson:"createdBy" index:"single:1"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
}
