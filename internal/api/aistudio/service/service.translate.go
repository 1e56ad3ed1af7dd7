package aistudiosvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/ai"
	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// historyMaxChars limita el texto guardado en el historial por lado.
const historyMaxChars = 500

// TranslationResult es el resultado de una traducción.
type TranslationResult struct {
	TranslatedText   string `json:"translatedText"`
	SourceLanguage   string `json:"sourceLanguage"`
	TargetLanguage   string `json:"targetLanguage"`
	DetectedLanguage bool   `json:"detectedLanguage"`
}

// TranslateService traduce entre español y portugués con Gemini y guarda
// un historial de uso.
type TranslateService struct {
	*basesvc.BaseServiceMongoImpl[models.TranslationHistory]
	gemini *ai.GeminiClient
}

// NewTranslateService crea un TranslateService nuevo.
func NewTranslateService() (*TranslateService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TranslationHistory)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de historial de traducciones: %v", common.ErrNotFound)
	}
	return &TranslateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.TranslationHistory](collection),
		gemini:               ai.NewGeminiClient(),
	}, nil
}

func languageName(code string) string {
	if lang, ok := models.SupportedLanguages[code]; ok {
		return lang.NativeName
	}
	return code
}

// Translate traduce el texto al idioma destino. Con origen "auto" primero
// detecta el idioma. El historial se guarda con mejor esfuerzo.
func (s *TranslateService) Translate(ctx context.Context, input *dto.TranslateInput, userID primitive.ObjectID) (*TranslationResult, error) {
	source := input.SourceLanguage
	if source == "" {
		source = "auto"
	}

	detected := false
	if source == "auto" {
		detectedLang, err := s.DetectLanguage(ctx, input.Text)
		if err != nil {
			return nil, err
		}
		source = detectedLang
		detected = true
	}

	if source == input.TargetLanguage {
		return &TranslationResult{
			TranslatedText:   input.Text,
			SourceLanguage:   source,
			TargetLanguage:   input.TargetLanguage,
			DetectedLanguage: detected,
		}, nil
	}

	prompt := fmt.Sprintf(`Traduce el siguiente texto de %s a %s.
Mantén el tono y el registro del original. Responde ÚNICAMENTE con la traducción, sin explicaciones ni comillas.

Texto:
%s`, languageName(source), languageName(input.TargetLanguage), input.Text)

	translated, err := s.gemini.GenerateText(ctx, prompt, "", 0.3, 4096)
	if err != nil {
		logrus.Errorf("Translate: error del proveedor: %v", err)
		return nil, common.NewError(common.ErrCodeAIProvider,
			"Error al traducir el texto. Por favor intenta de nuevo.",
			common.StatusServiceUnavailable, nil)
	}

	s.saveHistory(ctx, input.Text, translated, source, input.TargetLanguage, userID)

	return &TranslationResult{
		TranslatedText:   translated,
		SourceLanguage:   source,
		TargetLanguage:   input.TargetLanguage,
		DetectedLanguage: detected,
	}, nil
}

// DetectLanguage determina si el texto está en español o portugués.
func (s *TranslateService) DetectLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Identifica el idioma del siguiente texto.
Responde ÚNICAMENTE con el código de idioma: "es" para español o "pt" para portugués.

Texto:
%s`, utility.TruncateString(text, 500))

	response, err := s.gemini.GenerateText(ctx, prompt, "", 0, 10)
	if err != nil {
		logrus.Errorf("Translate: error detectando el idioma: %v", err)
		return "", common.NewError(common.ErrCodeAIProvider,
			"Error al detectar el idioma. Por favor intenta de nuevo.",
			common.StatusServiceUnavailable, nil)
	}

	code := strings.ToLower(strings.Trim(strings.TrimSpace(response), `"'.`))
	if _, ok := models.SupportedLanguages[code]; !ok {
		// Ante una respuesta inesperada se asume español, el idioma base.
		code = "es"
	}
	return code, nil
}

// saveHistory persiste la traducción recortada. Un fallo aquí no afecta la
// respuesta al usuario.
func (s *TranslateService) saveHistory(ctx context.Context, sourceText, translatedText, sourceLang, targetLang string, userID primitive.ObjectID) {
	entry := models.TranslationHistory{
		SourceText:     utility.TruncateString(sourceText, historyMaxChars),
		TranslatedText: utility.TruncateString(translatedText, historyMaxChars),
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		CreatedBy:      userID,
	}
	if _, err := s.InsertOne(ctx, entry); err != nil {
		logrus.Warnf("Translate: no se pudo guardar el historial: %v", err)
	}
}

// History devuelve las traducciones recientes del usuario.
func (s *TranslateService) History(ctx context.Context, userID primitive.ObjectID) ([]models.TranslationHistory, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(artifactListLimit)
	return s.Find(ctx, bson.M{"createdBy": userID}, opts)
}

// Languages devuelve los idiomas soportados.
func (s *TranslateService) Languages() []models.SupportedLanguage {
	return []models.SupportedLanguage{
		models.SupportedLanguages["es"],
		models.SupportedLanguages["pt"],
	}
}
