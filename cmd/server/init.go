package main

import (
	"context"

	"github.com/jesus-bazan-entel/IdecapLMS/config"
	aistudiomodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	authmodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	coursemodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	portalmodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/database"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
)

// InitGlobal inicializa las variables globales de la aplicación.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabaseMongoDB()
	initFirebase()
}

// initColNames define los nombres de las colecciones en MongoDB.
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.AccessCodes = "access_codes"

	global.MongoDB_ColNames.Courses = "courses"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Levels = "levels"
	global.MongoDB_ColNames.CourseModules = "modules"
	global.MongoDB_ColNames.Sections = "sections"
	global.MongoDB_ColNames.Lessons = "lessons"
	global.MongoDB_ColNames.LessonMaterials = "lesson_materials"

	global.MongoDB_ColNames.StudentProgress = "student_progress"

	global.MongoDB_ColNames.AIStudioConfig = "ai_studio_config"
	global.MongoDB_ColNames.Settings = "settings"

	// Artefactos generados por el AI Studio (prefijo generated_)
	global.MongoDB_ColNames.GeneratedAudio = "generated_audio"
	global.MongoDB_ColNames.GeneratedPresentations = "generated_presentations"
	global.MongoDB_ColNames.GeneratedMindmaps = "generated_mindmaps"
	global.MongoDB_ColNames.GeneratedPodcasts = "generated_podcasts"
	global.MongoDB_ColNames.GeneratedVideos = "generated_videos"
	global.MongoDB_ColNames.GeneratedFlashcards = "generated_flashcards"
	global.MongoDB_ColNames.GeneratedQuizzes = "generated_quizzes"
	global.MongoDB_ColNames.GeneratedLessons = "generated_lessons"

	global.MongoDB_ColNames.TranslationHistory = "translation_history"

	logrus.Info("Nombres de colecciones inicializados")
}

// initValidator registra el validador y sus reglas personalizadas.
func initValidator() {
	global.InitValidator()
	logrus.Info("Validador inicializado")
}

// initConfig carga la configuración del servidor desde el entorno.
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("No se pudo inicializar la configuración: config es nil")
	}
	logrus.Info("Configuración del servidor inicializada")
}

// initDatabaseMongoDB conecta a MongoDB, asegura las colecciones y crea
// los índices declarados en los tags de los modelos.
func initDatabaseMongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig.MongoDB_ConnectionURI)
	if err != nil {
		logrus.Fatalf("No se pudo obtener la instancia de la base de datos: %v", err)
	}
	logrus.Info("Conectado a MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("No se pudieron asegurar la base de datos y las colecciones: %v", err)
	}

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	ctx := context.TODO()

	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.AccessCodes), authmodels.AccessCode{})

	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Courses), coursemodels.Course{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Categories), coursemodels.Category{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Levels), coursemodels.Level{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.CourseModules), coursemodels.CourseModule{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Sections), coursemodels.Section{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Lessons), coursemodels.Lesson{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.LessonMaterials), coursemodels.LessonMaterial{})

	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.StudentProgress), portalmodels.StudentProgress{})

	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedAudio), aistudiomodels.GeneratedAudio{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedPresentations), aistudiomodels.Presentation{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedMindmaps), aistudiomodels.Mindmap{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedPodcasts), aistudiomodels.Podcast{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedVideos), aistudiomodels.GeneratedVideo{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedFlashcards), aistudiomodels.FlashcardSet{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedQuizzes), aistudiomodels.Quiz{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.GeneratedLessons), aistudiomodels.GeneratedLesson{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.TranslationHistory), aistudiomodels.TranslationHistory{})

	logrus.Info("Base de datos, colecciones e índices asegurados")
}

// initFirebase inicializa el SDK de Firebase Admin para el
// almacenamiento de los archivos generados (audios, videos, QR).
func initFirebase() {
	cfg := global.MongoDB_ServerConfig
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Configuración de Firebase incompleta, se omite la inicialización")
		return
	}

	if err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, cfg.FirebaseStorageBucket); err != nil {
		// No es fatal: el sistema funciona sin almacenamiento de archivos
		logrus.Errorf("No se pudo inicializar Firebase: %v", err)
		return
	}

	logrus.Info("Firebase inicializado")
}
