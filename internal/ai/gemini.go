// Package ai contiene los clientes de los proveedores externos de
// generación: Gemini (texto/JSON), TTS (audio) y HeyGen (videos avatar).
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"

	"github.com/google/generative-ai-go/genai"
	"github.com/kaptinlin/jsonrepair"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"google.golang.org/api/option"
)

// GeminiModelName es el modelo usado para toda la generación de contenido.
const GeminiModelName = "gemini-2.0-flash"

// jsonInstruction son las instrucciones estrictas de salida JSON que se
// anexan a todo prompt de generación estructurada.
const jsonInstruction = `IMPORTANTE: Responde ÚNICAMENTE con JSON válido.
- No uses markdown (no ` + "```json" + `)
- No agregues explicaciones antes o después del JSON
- El JSON debe estar correctamente formateado`

// GeminiClient es el cliente de generación de texto y JSON.
// La inicialización es perezosa: la API key puede venir del entorno o del
// documento de configuración "app" en la colección settings.
type GeminiClient struct {
	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient crea un cliente sin conectar todavía.
func NewGeminiClient() *GeminiClient {
	return &GeminiClient{}
}

// resolveAPIKey busca la API key primero en la configuración del servidor
// y luego en el documento settings/app de la base de datos.
func resolveAPIKey(ctx context.Context) (string, error) {
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.GeminiAPIKey != "" {
		return global.MongoDB_ServerConfig.GeminiAPIKey, nil
	}

	if col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings); exist {
		var doc struct {
			GeminiAPIKey string `bson:"geminiApiKey"`
		}
		findErr := col.FindOne(ctx, bson.M{"_id": "app"}).Decode(&doc)
		if findErr == nil && doc.GeminiAPIKey != "" {
			return doc.GeminiAPIKey, nil
		}
		if findErr != nil {
			logrus.Warnf("No se pudo leer la API key de Gemini desde settings: %v", findErr)
		}
	}

	return "", common.ErrAINotConfigured
}

// ensureClient inicializa el cliente en el primer uso.
func (g *GeminiClient) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	apiKey, err := resolveAPIKey(ctx)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAIConfig,
			"No se pudo inicializar el cliente de Gemini", common.StatusServiceUnavailable, err.Error())
	}

	g.client = client
	return g.client, nil
}

// Close libera el cliente subyacente.
func (g *GeminiClient) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		g.client.Close()
		g.client = nil
	}
}

// GenerateText genera texto libre.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt, systemInstruction string, temperature float32, maxTokens int32) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	fullPrompt := prompt
	if systemInstruction != "" {
		fullPrompt = systemInstruction + "\n\n" + prompt
	}

	model := client.GenerativeModel(GeminiModelName)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		logrus.Errorf("Error de generación de texto con Gemini: %v", err)
		return "", common.NewError(common.ErrCodeAIProvider,
			"El proveedor de IA no está disponible", common.StatusServiceUnavailable, err.Error())
	}

	text := extractText(resp)
	if text == "" {
		return "", common.ErrAIInvalidResponse
	}
	return text, nil
}

// GenerateJSON genera contenido estructurado: anexa las instrucciones de
// salida JSON (más el esquema si se proporciona), limpia la respuesta y la
// parsea, con reparación como último recurso.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema map[string]interface{}, systemInstruction string) (map[string]interface{}, error) {
	instruction := jsonInstruction
	if schema != nil {
		schemaJSON, err := json.MarshalIndent(schema, "", "  ")
		if err == nil {
			instruction += fmt.Sprintf("\n\nEsquema esperado:\n%s", schemaJSON)
		}
	}

	fullPrompt := ""
	if systemInstruction != "" {
		fullPrompt = systemInstruction + "\n\n"
	}
	fullPrompt += instruction + "\n\n" + prompt

	text, err := g.GenerateText(ctx, fullPrompt, "", 0.7, 8192)
	if err != nil {
		return nil, err
	}

	return DecodeJSONResponse(text)
}

// StripJSONFences elimina los bloques markdown (```json / ```) con que los
// modelos suelen envolver la respuesta.
func StripJSONFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	}
	if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	return strings.TrimSpace(text)
}

// DecodeJSONResponse parsea la respuesta del modelo como JSON. Si el parseo
// estricto falla intenta repararla antes de rendirse.
func DecodeJSONResponse(text string) (map[string]interface{}, error) {
	cleaned := StripJSONFences(text)

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		return result, nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		logrus.Errorf("No se pudo reparar la respuesta JSON del modelo: %v", err)
		return nil, common.ErrAIInvalidResponse
	}
	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		logrus.Errorf("Respuesta JSON inválida incluso después de reparar: %v", err)
		return nil, common.ErrAIInvalidResponse
	}

	logrus.Warn("La respuesta JSON del modelo requirió reparación")
	return result, nil
}

// extractText concatena las partes de texto del primer candidato.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return strings.TrimSpace(sb.String())
}
