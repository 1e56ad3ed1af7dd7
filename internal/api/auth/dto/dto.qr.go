package authdto

// QRGenerateInput entrada para generar el código QR de un estudiante.
type QRGenerateInput struct {
	StudentID string `json:"studentId" validate:"required"`
}

// QRVerifyInput entrada para verificar un código QR escaneado.
type QRVerifyInput struct {
	QRData string `json:"qrData" validate:"required"`
}
