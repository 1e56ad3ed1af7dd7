package global

import (
	"github.com/jesus-bazan-entel/IdecapLMS/config"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName contiene los nombres de las colecciones en MongoDB
type MongoDB_CollectionName struct {
	Users       string // Colección de usuarios (admins, autores, tutores y estudiantes)
	AccessCodes string // Colección de códigos de acceso de estudiantes

	Courses         string // Colección de cursos
	Categories      string // Colección de categorías de cursos
	Levels          string // Colección de niveles (jerarquía de curso)
	CourseModules   string // Colección de módulos (jerarquía de curso)
	Sections        string // Colección de secciones (jerarquía de curso)
	Lessons         string // Colección de lecciones
	LessonMaterials string // Colección de materiales descargables de lecciones

	StudentProgress string // Colección de progreso de lecciones por estudiante

	AIStudioConfig string // Colección de configuración del AI Studio (prompts)
	Settings       string // Colección de configuración general de la aplicación

	GeneratedAudio         string // Artefactos de audio generados
	GeneratedPresentations string // Presentaciones generadas
	GeneratedMindmaps      string // Mapas mentales generados
	GeneratedPodcasts      string // Podcasts generados
	GeneratedVideos        string // Videos avatar generados
	GeneratedFlashcards    string // Flashcards generadas
	GeneratedQuizzes       string // Cuestionarios generados
	GeneratedLessons       string // Contenido de lecciones generado

	TranslationHistory string // Historial de traducciones
}

// Variables globales
var Validate *validator.Validate               // Validador de datos
var MongoDB_Session *mongo.Client              // Sesión de conexión a MongoDB
var MongoDB_ServerConfig *config.Configuration // Configuración del servidor
var MongoDB_ColNames MongoDB_CollectionName    // Nombres de las colecciones

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry de colecciones
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry de bases de datos
