package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"

	"github.com/sirupsen/logrus"
)

// ttsWordsPerMinute es la velocidad de lectura usada para estimar duraciones.
const ttsWordsPerMinute = 150.0

// TTSVoice describe una voz disponible para síntesis.
type TTSVoice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Gender      string `json:"gender"`
	EngineVoice string `json:"-"`
}

// ttsVoices mapea los identificadores públicos de voz a las voces del motor.
var ttsVoices = []TTSVoice{
	{ID: "es-ES-Standard-A", Name: "Elvira", Language: "es-ES", Gender: "female", EngineVoice: "es-ES-ElviraNeural"},
	{ID: "es-ES-Standard-B", Name: "Álvaro", Language: "es-ES", Gender: "male", EngineVoice: "es-ES-AlvaroNeural"},
	{ID: "es-ES-Standard-C", Name: "Elvira", Language: "es-ES", Gender: "female", EngineVoice: "es-ES-ElviraNeural"},
	{ID: "es-ES-Standard-D", Name: "Álvaro", Language: "es-ES", Gender: "male", EngineVoice: "es-ES-AlvaroNeural"},
	{ID: "es-MX-Standard-A", Name: "Dalia", Language: "es-MX", Gender: "female", EngineVoice: "es-MX-DaliaNeural"},
	{ID: "es-MX-Standard-B", Name: "Jorge", Language: "es-MX", Gender: "male", EngineVoice: "es-MX-JorgeNeural"},
	{ID: "pt-BR-Standard-A", Name: "Francisca", Language: "pt-BR", Gender: "female", EngineVoice: "pt-BR-FranciscaNeural"},
	{ID: "pt-BR-Standard-B", Name: "Antônio", Language: "pt-BR", Gender: "male", EngineVoice: "pt-BR-AntonioNeural"},
	{ID: "pt-PT-Standard-A", Name: "Raquel", Language: "pt-PT", Gender: "female", EngineVoice: "pt-PT-RaquelNeural"},
	{ID: "pt-PT-Standard-B", Name: "Duarte", Language: "pt-PT", Gender: "male", EngineVoice: "pt-PT-DuarteNeural"},
	{ID: "en-US-Standard-A", Name: "Jenny", Language: "en-US", Gender: "female", EngineVoice: "en-US-JennyNeural"},
	{ID: "en-US-Standard-B", Name: "Guy", Language: "en-US", Gender: "male", EngineVoice: "en-US-GuyNeural"},
}

// DefaultTTSVoice se usa cuando el identificador de voz no se reconoce.
const DefaultTTSVoice = "es-ES-Standard-A"

// TTSSegment es un fragmento de texto a sintetizar con una voz concreta.
type TTSSegment struct {
	Text    string
	VoiceID string
}

// TTSClient sintetiza audio contra un motor HTTP primario con un motor de
// respaldo opcional.
type TTSClient struct {
	endpoint         string
	fallbackEndpoint string
	httpClient       *http.Client
}

// NewTTSClient crea el cliente con los endpoints configurados.
func NewTTSClient(endpoint, fallbackEndpoint string) *TTSClient {
	return &TTSClient{
		endpoint:         endpoint,
		fallbackEndpoint: fallbackEndpoint,
		httpClient:       &http.Client{Timeout: 120 * time.Second},
	}
}

// AvailableVoices devuelve el catálogo de voces, opcionalmente filtrado por
// prefijo de idioma ("es", "pt-BR", etc.).
func AvailableVoices(language string) []TTSVoice {
	if language == "" {
		return ttsVoices
	}
	var out []TTSVoice
	for _, v := range ttsVoices {
		if strings.HasPrefix(v.Language, language) {
			out = append(out, v)
		}
	}
	return out
}

// ResolveVoice devuelve la voz del motor para un identificador público.
func ResolveVoice(voiceID string) TTSVoice {
	for _, v := range ttsVoices {
		if v.ID == voiceID {
			return v
		}
	}
	return ResolveVoice(DefaultTTSVoice)
}

// EstimateDuration estima la duración en segundos de un texto leído a 150
// palabras por minuto, ajustada por la velocidad.
func EstimateDuration(text string, speed float64) float64 {
	if speed <= 0 {
		speed = 1.0
	}
	words := len(strings.Fields(text))
	return float64(words) / (ttsWordsPerMinute / 60.0) / speed
}

// formatRate convierte la velocidad (1.0 = normal) al formato del motor.
func formatRate(speed float64) string {
	pct := int((speed - 1.0) * 100)
	return fmt.Sprintf("%+d%%", pct)
}

// formatPitch convierte el tono (0 = normal) al formato del motor.
func formatPitch(pitch float64) string {
	hz := int(pitch * 5)
	return fmt.Sprintf("%+dHz", hz)
}

type ttsRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Rate  string `json:"rate"`
	Pitch string `json:"pitch"`
}

// GenerateAudio sintetiza un texto y devuelve los bytes MP3. Si el motor
// primario falla se intenta el de respaldo.
func (t *TTSClient) GenerateAudio(ctx context.Context, text, voiceID string, speed, pitch float64) ([]byte, error) {
	if t.endpoint == "" && t.fallbackEndpoint == "" {
		return nil, common.ErrAINotConfigured
	}

	voice := ResolveVoice(voiceID)
	payload := ttsRequest{
		Text:  text,
		Voice: voice.EngineVoice,
		Rate:  formatRate(speed),
		Pitch: formatPitch(pitch),
	}

	if t.endpoint != "" {
		data, err := t.synthesize(ctx, t.endpoint, payload)
		if err == nil {
			return data, nil
		}
		logrus.Warnf("El motor TTS primario falló, intentando el de respaldo: %v", err)
	}

	if t.fallbackEndpoint != "" {
		data, err := t.synthesize(ctx, t.fallbackEndpoint, payload)
		if err == nil {
			return data, nil
		}
		logrus.Errorf("El motor TTS de respaldo también falló: %v", err)
	}

	return nil, common.ErrAIProviderUnavailable
}

// GenerateSegments sintetiza una secuencia de fragmentos (cada uno con su
// voz) y concatena el audio resultante.
func (t *TTSClient) GenerateSegments(ctx context.Context, segments []TTSSegment, speed float64) ([]byte, error) {
	var buf bytes.Buffer
	for _, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		data, err := t.GenerateAudio(ctx, seg.Text, seg.VoiceID, speed, 0)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	if buf.Len() == 0 {
		return nil, common.ErrAIInvalidResponse
	}
	return buf.Bytes(), nil
}

func (t *TTSClient) synthesize(ctx context.Context, endpoint string, payload ttsRequest) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("el motor TTS respondió %d: %s", resp.StatusCode, detail)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("el motor TTS devolvió una respuesta vacía")
	}
	return data, nil
}
