package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Códigos de estado HTTP
const (
	// Códigos de éxito (2xx)
	StatusOK        = 200 // Operación exitosa
	StatusCreated   = 201 // Recurso creado
	StatusAccepted  = 202 // Solicitud aceptada
	StatusNoContent = 204 // Sin contenido de respuesta

	// Errores del cliente (4xx)
	StatusBadRequest      = 400 // Solicitud inválida
	StatusUnauthorized    = 401 // No autenticado
	StatusForbidden       = 403 // Sin permisos
	StatusNotFound        = 404 // Recurso no encontrado
	StatusConflict        = 409 // Conflicto de datos
	StatusTooManyRequests = 429 // Demasiadas solicitudes

	// Errores del servidor (5xx)
	StatusInternalServerError = 500 // Error interno
	StatusServiceUnavailable  = 503 // Servicio no disponible
)

// Mensajes de respuesta
const (
	// Mensajes de éxito
	MsgSuccess = "Operación exitosa"
	MsgCreated = "Recurso creado exitosamente"

	// Mensajes de error
	MsgBadRequest         = "Solicitud inválida"
	MsgUnauthorized       = "Por favor inicie sesión"
	MsgForbidden          = "Permisos insuficientes"
	MsgNotFound           = "Recurso no encontrado"
	MsgConflict           = "Conflicto de datos"
	MsgTooManyRequests    = "Demasiadas solicitudes"
	MsgInternalError      = "Error interno del sistema"
	MsgServiceUnavailable = "Servicio no disponible"

	// Mensajes de token
	MsgTokenMissing = "Falta el token de autenticación"
	MsgTokenInvalid = "Token inválido"
	MsgTokenExpired = "El token ha expirado"

	// Mensajes de validación
	MsgValidationError = "Datos inválidos"
	MsgDatabaseError   = "Error al interactuar con la base de datos"
	MsgInvalidFormat   = "Formato de datos inválido"
)

// ErrorCode define un código de error detallado
type ErrorCode struct {
	Code        string // Código (ej: AUTH_001)
	Category    string // Categoría (ej: Authentication)
	SubCategory string // Subcategoría (ej: Token)
	Description string // Descripción
}

// Códigos de error por categoría
var (
	// Errores de sistema (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Error interno del sistema",
	}

	// Errores de autenticación (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Error general de autenticación",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Error relacionado con el token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Error de credenciales",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Error relacionado con roles de usuario",
	}

	// Errores de validación (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Error general de validación",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Error en los datos de entrada",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Error de formato de datos",
	}

	// Errores de base de datos (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Error general de base de datos",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Error de conexión a la base de datos",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Error de consulta de datos",
	}

	// Errores de lógica de negocio (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Error general de lógica de negocio",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Error de estado de negocio",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Error de operación de negocio",
	}

	// Errores de proveedores de IA (AI_xxx)
	ErrCodeAIProvider = ErrorCode{
		Code:        "AI_001",
		Category:    "AI",
		SubCategory: "Provider",
		Description: "Error del proveedor de IA",
	}

	ErrCodeAIConfig = ErrorCode{
		Code:        "AI_002",
		Category:    "AI",
		SubCategory: "Config",
		Description: "Proveedor de IA no configurado",
	}

	ErrCodeAIResponse = ErrorCode{
		Code:        "AI_003",
		Category:    "AI",
		SubCategory: "Response",
		Description: "Respuesta inválida del proveedor de IA",
	}
)

// Error define la estructura de error detallada
type Error struct {
	Code       ErrorCode // Código de error
	Message    string    // Mensaje para el usuario
	StatusCode int       // Código de estado HTTP
	Details    any       // Información adicional
}

// Error retorna el mensaje del error
func (e *Error) Error() string {
	return e.Message
}

// Is compara con el error objetivo (soporta errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError crea un error nuevo con información completa
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Errores predefinidos
var (
	// Autenticación
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Credenciales incorrectas", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "La sesión ha expirado", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token inválido", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Falta el token de autenticación", StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, "Permisos insuficientes", StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "Usuario no encontrado", StatusNotFound, nil)
	ErrUserDisabled       = NewError(ErrCodeAuthCredentials, "Esta cuenta está deshabilitada", StatusForbidden, nil)

	// Validación
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Datos de entrada inválidos", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Formato de datos inválido", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Falta información obligatoria", StatusBadRequest, nil)

	// Base de datos
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "No se encontraron datos", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Los datos ya existen", StatusConflict, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Error de conexión a la base de datos", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Error de transacción en la base de datos", StatusInternalServerError, nil)

	// Lógica de negocio
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Estado inválido", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Operación inválida", StatusBadRequest, nil)

	// Proveedores de IA
	ErrAIProviderUnavailable = NewError(ErrCodeAIProvider, "El proveedor de IA no está disponible", StatusServiceUnavailable, nil)
	ErrAINotConfigured       = NewError(ErrCodeAIConfig, "El proveedor de IA no está configurado", StatusServiceUnavailable, nil)
	ErrAIInvalidResponse     = NewError(ErrCodeAIResponse, "Respuesta inválida del proveedor de IA", StatusInternalServerError, nil)
)

// Errores específicos de MongoDB
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "Error de conexión a MongoDB", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "Error de red al conectar con MongoDB", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "La conexión a MongoDB excedió el tiempo de espera", StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuth, "Error de autenticación en MongoDB", StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, "Error de consulta en MongoDB", StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "Error al escribir datos en MongoDB", StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "Datos duplicados en MongoDB", StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, "Error del sistema MongoDB", StatusInternalServerError, nil)
)

// ConvertMongoError convierte un error de MongoDB a un error del sistema
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound no se convierte, se propaga tal cual
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if customErr, ok := err.(*Error); ok {
		if customErr.Code.Code == ErrCodeDatabaseQuery.Code && customErr.Message == "No se encontraron datos" {
			return err
		}
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
