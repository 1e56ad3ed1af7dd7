package authdto

// AccessCodeGenerateInput entrada para generar un código de acceso de estudiante.
type AccessCodeGenerateInput struct {
	StudentID     string `json:"studentId" validate:"required"`
	ExpiresInDays int    `json:"expiresInDays" validate:"omitempty,min=1,max=365"`
}

// AccessCodeValidateInput entrada para validar un código de acceso.
type AccessCodeValidateInput struct {
	Code string `json:"code" validate:"required"`
}
