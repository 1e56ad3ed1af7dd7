package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration contiene la configuración estática de la aplicación,
// cargada desde variables de entorno.
type Configuration struct {
	InitMode bool   `env:"INITMODE" envDefault:"false"` // Modo de inicialización (seed de datos)
	Address  string `env:"ADDRESS" envDefault:":8080"`  // Dirección del servidor

	// JWT
	JwtSecret            string `env:"JWT_SECRET,required"`                 // Secreto JWT
	JwtExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"1440"` // Expiración del token (minutos)

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URI de conexión
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Nombre de la base de datos

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origins permitidos (separados por coma, * = todos)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Permitir credenciales

	// Rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Máximo de requests por ventana
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Ventana en segundos
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Activar rate limiting

	// Firebase (almacenamiento de archivos generados)
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`       // Project ID
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"` // Ruta al service account JSON
	FirebaseStorageBucket   string `env:"FIREBASE_STORAGE_BUCKET"`   // Bucket de almacenamiento

	// Proveedores de IA
	GeminiAPIKey string `env:"GEMINI_API_KEY"` // API key de Gemini (opcional, con fallback al documento settings)
	HeyGenAPIKey string `env:"HEYGEN_API_KEY"` // API key de HeyGen (videos avatar)

	// TTS
	TTSEndpoint         string `env:"TTS_ENDPOINT"`          // Endpoint del motor TTS primario
	TTSFallbackEndpoint string `env:"TTS_FALLBACK_ENDPOINT"` // Endpoint del motor TTS de respaldo

	// Frontend
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL del frontend

	// Admin por defecto (seed inicial, opcional)
	AdminEmail    string `env:"ADMIN_EMAIL"`                          // Email del administrador inicial
	AdminPassword string `env:"ADMIN_PASSWORD"`                       // Contraseña del administrador inicial
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrador"` // Nombre del administrador inicial

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Activar HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Ruta al certificado (.crt o .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Ruta a la llave privada (.key)
}

// getEnvPath retorna la ruta al archivo env según el entorno
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf porque el logger todavía no está inicializado aquí
		fmt.Printf("No se pudo obtener el directorio actual: %v\n", err)
		return ""
	}

	// Buscar el directorio config/env subiendo por el árbol
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig carga la configuración desde el archivo env del entorno actual
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("No se encontró el directorio config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("No se pudo cargar el archivo env en %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Error al parsear la configuración: %+v\n", err)
		return nil
	}

	return &cfg
}
