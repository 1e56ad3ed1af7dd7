package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"
)

const heyGenBaseURL = "https://api.heygen.com"

// heyGenDimensions mapea la relación de aspecto a las dimensiones del video.
var heyGenDimensions = map[string][2]int{
	"16:9": {1920, 1080},
	"9:16": {1080, 1920},
	"1:1":  {1080, 1080},
}

// Avatar es un avatar disponible en el proveedor de video.
type Avatar struct {
	ID         string `json:"avatar_id"`
	Name       string `json:"avatar_name"`
	Gender     string `json:"gender,omitempty"`
	PreviewURL string `json:"preview_image_url,omitempty"`
	IsPhoto    bool   `json:"is_photo"`
}

// AvatarVoice es una voz del proveedor de video.
type AvatarVoice struct {
	ID             string `json:"voice_id"`
	Name           string `json:"name"`
	Language       string `json:"language"`
	Gender         string `json:"gender"`
	PreviewURL     string `json:"preview_audio,omitempty"`
	SupportsPause  bool   `json:"support_pause"`
	EmotionSupport bool   `json:"emotion_support"`
}

// VideoRequest son los parámetros para generar un video avatar.
type VideoRequest struct {
	Title           string
	Script          string
	AvatarID        string
	VoiceID         string
	AspectRatio     string
	BackgroundColor string
	TestMode        bool
}

// VideoStatus es el estado de un video reportado por el proveedor,
// normalizado a los estados internos.
type VideoStatus struct {
	Status       string  `json:"status"`
	VideoURL     string  `json:"video_url,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// HeyGenClient habla con la API de HeyGen para generar videos con avatares.
type HeyGenClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewHeyGenClient crea el cliente. Una apiKey vacía hace que todas las
// operaciones devuelvan ErrAINotConfigured.
func NewHeyGenClient(apiKey string) *HeyGenClient {
	return &HeyGenClient{
		apiKey:     apiKey,
		baseURL:    heyGenBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured indica si hay una API key disponible.
func (h *HeyGenClient) Configured() bool {
	return h.apiKey != ""
}

// ListAvatars devuelve los avatares disponibles, incluyendo las fotos
// parlantes.
func (h *HeyGenClient) ListAvatars(ctx context.Context) ([]Avatar, error) {
	var payload struct {
		Data struct {
			Avatars []struct {
				AvatarID        string `json:"avatar_id"`
				AvatarName      string `json:"avatar_name"`
				Gender          string `json:"gender"`
				PreviewImageURL string `json:"preview_image_url"`
			} `json:"avatars"`
			TalkingPhotos []struct {
				TalkingPhotoID   string `json:"talking_photo_id"`
				TalkingPhotoName string `json:"talking_photo_name"`
				PreviewImageURL  string `json:"preview_image_url"`
			} `json:"talking_photos"`
		} `json:"data"`
	}

	if err := h.get(ctx, "/v2/avatars", nil, &payload); err != nil {
		return nil, err
	}

	avatars := make([]Avatar, 0, len(payload.Data.Avatars)+len(payload.Data.TalkingPhotos))
	for _, a := range payload.Data.Avatars {
		avatars = append(avatars, Avatar{
			ID:         a.AvatarID,
			Name:       a.AvatarName,
			Gender:     a.Gender,
			PreviewURL: a.PreviewImageURL,
		})
	}
	for _, p := range payload.Data.TalkingPhotos {
		avatars = append(avatars, Avatar{
			ID:         p.TalkingPhotoID,
			Name:       p.TalkingPhotoName,
			PreviewURL: p.PreviewImageURL,
			IsPhoto:    true,
		})
	}
	return avatars, nil
}

// ListVoices devuelve las voces del proveedor filtradas por prefijo de
// idioma (p. ej. "Spanish", "Portuguese"). Vacío devuelve todas.
func (h *HeyGenClient) ListVoices(ctx context.Context, language string) ([]AvatarVoice, error) {
	var payload struct {
		Data struct {
			Voices []AvatarVoice `json:"voices"`
		} `json:"data"`
	}

	if err := h.get(ctx, "/v2/voices", nil, &payload); err != nil {
		return nil, err
	}

	if language == "" {
		return payload.Data.Voices, nil
	}

	lang := strings.ToLower(language)
	var out []AvatarVoice
	for _, v := range payload.Data.Voices {
		if strings.HasPrefix(strings.ToLower(v.Language), lang) {
			out = append(out, v)
		}
	}
	return out, nil
}

// GenerateVideo envía un video a generar y devuelve el identificador del
// proveedor.
func (h *HeyGenClient) GenerateVideo(ctx context.Context, req VideoRequest) (string, error) {
	dim, ok := heyGenDimensions[req.AspectRatio]
	if !ok {
		dim = heyGenDimensions["16:9"]
	}

	background := req.BackgroundColor
	if background == "" {
		background = "#ffffff"
	}

	body := map[string]interface{}{
		"video_inputs": []map[string]interface{}{
			{
				"character": map[string]interface{}{
					"type":         "avatar",
					"avatar_id":    req.AvatarID,
					"avatar_style": "normal",
				},
				"voice": map[string]interface{}{
					"type":       "text",
					"input_text": req.Script,
					"voice_id":   req.VoiceID,
				},
				"background": map[string]interface{}{
					"type":  "color",
					"value": background,
				},
			},
		},
		"dimension": map[string]int{"width": dim[0], "height": dim[1]},
		"test":      req.TestMode,
		"title":     req.Title,
	}

	var payload struct {
		Data struct {
			VideoID string `json:"video_id"`
		} `json:"data"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := h.post(ctx, "/v2/video/generate", body, &payload); err != nil {
		return "", err
	}
	if payload.Data.VideoID == "" {
		msg := "El proveedor de video no devolvió un identificador"
		if payload.Error != nil && payload.Error.Message != "" {
			msg = payload.Error.Message
		}
		return "", common.NewError(common.ErrCodeAIResponse, msg, common.StatusInternalServerError, nil)
	}
	return payload.Data.VideoID, nil
}

// GetVideoStatus consulta el estado de un video en el proveedor.
func (h *HeyGenClient) GetVideoStatus(ctx context.Context, videoID string) (*VideoStatus, error) {
	var payload struct {
		Data struct {
			Status       string  `json:"status"`
			VideoURL     string  `json:"video_url"`
			ThumbnailURL string  `json:"thumbnail_url"`
			Duration     float64 `json:"duration"`
			Error        *struct {
				Message string `json:"message"`
				Detail  string `json:"detail"`
			} `json:"error"`
		} `json:"data"`
	}

	query := url.Values{"video_id": {videoID}}
	if err := h.get(ctx, "/v1/video_status.get", query, &payload); err != nil {
		return nil, err
	}

	status := &VideoStatus{
		Status:       normalizeVideoStatus(payload.Data.Status),
		VideoURL:     payload.Data.VideoURL,
		ThumbnailURL: payload.Data.ThumbnailURL,
		Duration:     payload.Data.Duration,
	}
	if payload.Data.Error != nil {
		status.Error = payload.Data.Error.Message
		if status.Error == "" {
			status.Error = payload.Data.Error.Detail
		}
	}
	return status, nil
}

// RemainingQuota devuelve los créditos restantes de la cuenta.
func (h *HeyGenClient) RemainingQuota(ctx context.Context) (map[string]interface{}, error) {
	var payload struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := h.get(ctx, "/v1/video/get_remaining_quota", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// normalizeVideoStatus traduce los estados del proveedor a los internos.
func normalizeVideoStatus(status string) string {
	switch status {
	case "pending", "waiting":
		return "pending"
	case "processing":
		return "processing"
	case "completed":
		return "completed"
	case "failed", "error":
		return "failed"
	default:
		return "processing"
	}
}

func (h *HeyGenClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return h.do(ctx, http.MethodGet, path, query, nil, out)
}

func (h *HeyGenClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return h.do(ctx, http.MethodPost, path, nil, body, out)
}

func (h *HeyGenClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if !h.Configured() {
		return common.ErrAINotConfigured
	}

	endpoint := h.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(reqBody))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("X-Api-Key", h.apiKey)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json")

			resp, err := h.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				return retry.Unrecoverable(fmt.Errorf("el proveedor de video rechazó las credenciales: %d", resp.StatusCode))
			}
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				return fmt.Errorf("el proveedor de video respondió %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("el proveedor de video respondió %d: %s", resp.StatusCode, data))
			}

			return json.Unmarshal(data, out)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(2*time.Second),
	)
	if err != nil {
		logrus.Errorf("Error llamando al proveedor de video (%s %s): %v", method, path, err)
		return common.NewError(common.ErrCodeAIProvider,
			"El proveedor de IA no está disponible", common.StatusServiceUnavailable, err.Error())
	}
	return nil
}
