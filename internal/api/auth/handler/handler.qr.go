package authhdl

import (
	"fmt"

	authdto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/dto"
	authsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/service"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// QRHandler atiende los requests de códigos QR de login.
type QRHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	qrService *authsvc.QRService
}

// NewQRHandler crea un QRHandler nuevo.
func NewQRHandler() (*QRHandler, error) {
	qrService, err := authsvc.NewQRService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de códigos QR: %v", err)
	}
	return &QRHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		qrService:   qrService,
	}, nil
}

// HandleGenerate genera (o regenera) el código QR de un estudiante.
func (h *QRHandler) HandleGenerate(c fiber.Ctx) error {
	var input authdto.QRGenerateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.qrService.Generate(c.Context(), &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleVerify verifica un código QR escaneado y retorna el token de sesión.
// Endpoint público: el estudiante aún no está autenticado.
func (h *QRHandler) HandleVerify(c fiber.Ctx) error {
	var input authdto.QRVerifyInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.qrService.Verify(c.Context(), &input)
	h.HandleResponse(c, result, err)
	return nil
}
