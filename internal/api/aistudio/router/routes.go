// Package router registra las rutas del AI Studio: configuración de
// prompts, generación de artefactos y el contenido servido a estudiantes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aistudiohdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/handler"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/api/middleware"
	apirouter "github.com/jesus-bazan-entel/IdecapLMS/internal/api/router"
)

// Register registra todas las rutas del AI Studio sobre v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	am := middleware.GetAuthManager()
	authorMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAuthor()}
	adminMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAdmin()}
	studentMW := []fiber.Handler{am.AuthMiddleware(), am.RequireStudent()}

	promptHandler, err := aistudiohdl.NewPromptConfigHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de configuración de prompts: %w", err)
	}
	prompts := "/ai-studio/prompts"
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "GET", "/master", adminMW, promptHandler.HandleGetMasterPrompt)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "PUT", "/master", adminMW, promptHandler.HandleUpdateMasterPrompt)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "GET", "/master/versions", adminMW, promptHandler.HandleGetVersions)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "POST", "/master/rollback/:version", adminMW, promptHandler.HandleRollback)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "GET", "/structure", adminMW, promptHandler.HandleGetStructureTemplate)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "PUT", "/structure", adminMW, promptHandler.HandleUpdateStructureTemplate)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "GET", "/extensions", adminMW, promptHandler.HandleListExtensions)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "GET", "/extensions/:module", adminMW, promptHandler.HandleGetExtension)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "PUT", "/extensions/:module", adminMW, promptHandler.HandleUpdateExtension)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "POST", "/preview", adminMW, promptHandler.HandlePreview)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "GET", "/modules", adminMW, promptHandler.HandleListModules)
	apirouter.RegisterRouteWithMiddleware(v1, prompts, "POST", "/reset-defaults", adminMW, promptHandler.HandleResetDefaults)

	audioHandler, err := aistudiohdl.NewAudioHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de audio: %w", err)
	}
	audio := "/ai-studio/audio"
	apirouter.RegisterRouteWithMiddleware(v1, audio, "POST", "/generate", authorMW, audioHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, audio, "GET", "/", authorMW, audioHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, audio, "GET", "/voices", authorMW, audioHandler.HandleVoices)
	apirouter.RegisterRouteWithMiddleware(v1, audio, "GET", "/:id", authorMW, audioHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, audio, "DELETE", "/:id", authorMW, audioHandler.HandleDelete)

	presentationHandler, err := aistudiohdl.NewPresentationHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de presentaciones: %w", err)
	}
	presentations := "/ai-studio/presentations"
	apirouter.RegisterRouteWithMiddleware(v1, presentations, "POST", "/generate", authorMW, presentationHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, presentations, "GET", "/", authorMW, presentationHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, presentations, "GET", "/:id", authorMW, presentationHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, presentations, "DELETE", "/:id", authorMW, presentationHandler.HandleDelete)

	mindmapHandler, err := aistudiohdl.NewMindmapHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de mapas mentales: %w", err)
	}
	mindmaps := "/ai-studio/mindmaps"
	apirouter.RegisterRouteWithMiddleware(v1, mindmaps, "POST", "/generate", authorMW, mindmapHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, mindmaps, "GET", "/", authorMW, mindmapHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, mindmaps, "GET", "/colors", authorMW, mindmapHandler.HandleColors)
	apirouter.RegisterRouteWithMiddleware(v1, mindmaps, "GET", "/:id", authorMW, mindmapHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, mindmaps, "DELETE", "/:id", authorMW, mindmapHandler.HandleDelete)

	flashcardHandler, err := aistudiohdl.NewFlashcardHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de flashcards: %w", err)
	}
	flashcards := "/ai-studio/flashcards"
	apirouter.RegisterRouteWithMiddleware(v1, flashcards, "POST", "/generate", authorMW, flashcardHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, flashcards, "GET", "/", authorMW, flashcardHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, flashcards, "GET", "/:id", authorMW, flashcardHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, flashcards, "DELETE", "/:id", authorMW, flashcardHandler.HandleDelete)

	quizHandler, err := aistudiohdl.NewQuizHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de cuestionarios: %w", err)
	}
	quizzes := "/ai-studio/quizzes"
	apirouter.RegisterRouteWithMiddleware(v1, quizzes, "POST", "/generate", authorMW, quizHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, quizzes, "GET", "/", authorMW, quizHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, quizzes, "GET", "/:id", authorMW, quizHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, quizzes, "DELETE", "/:id", authorMW, quizHandler.HandleDelete)

	lessonHandler, err := aistudiohdl.NewLessonContentHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de lecciones generadas: %w", err)
	}
	lessons := "/ai-studio/lessons"
	apirouter.RegisterRouteWithMiddleware(v1, lessons, "POST", "/generate", authorMW, lessonHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, lessons, "GET", "/", authorMW, lessonHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, lessons, "GET", "/:id", authorMW, lessonHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, lessons, "DELETE", "/:id", authorMW, lessonHandler.HandleDelete)

	podcastHandler, err := aistudiohdl.NewPodcastHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de podcasts: %w", err)
	}
	podcasts := "/ai-studio/podcasts"
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "POST", "/generate", authorMW, podcastHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "GET", "/", authorMW, podcastHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "GET", "/voices", authorMW, podcastHandler.HandleVoices)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "GET", "/styles", authorMW, podcastHandler.HandleStyles)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "GET", "/:id", authorMW, podcastHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "PUT", "/:id", authorMW, podcastHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "DELETE", "/:id", authorMW, podcastHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "POST", "/regenerate-script/:id", authorMW, podcastHandler.HandleRegenerateScript)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "POST", "/generate-audio/:id", authorMW, podcastHandler.HandleGenerateAudio)
	apirouter.RegisterRouteWithMiddleware(v1, podcasts, "GET", "/transcript/:id", authorMW, podcastHandler.HandleTranscript)

	videoHandler, err := aistudiohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de videos: %w", err)
	}
	videos := "/ai-studio/videos"
	apirouter.RegisterRouteWithMiddleware(v1, videos, "POST", "/generate", authorMW, videoHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "GET", "/", authorMW, videoHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "GET", "/avatars", authorMW, videoHandler.HandleAvatars)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "GET", "/voices", authorMW, videoHandler.HandleProviderVoices)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "GET", "/quota", authorMW, videoHandler.HandleQuota)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "GET", "/:id", authorMW, videoHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "PUT", "/:id", authorMW, videoHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "DELETE", "/:id", authorMW, videoHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "GET", "/status/:id", authorMW, videoHandler.HandleStatus)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "POST", "/cancel/:id", authorMW, videoHandler.HandleCancel)
	apirouter.RegisterRouteWithMiddleware(v1, videos, "POST", "/regenerate/:id", authorMW, videoHandler.HandleRegenerate)

	translateHandler, err := aistudiohdl.NewTranslateHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de traducción: %w", err)
	}
	authMW := []fiber.Handler{am.AuthMiddleware()}
	translate := "/ai-studio/translate"
	apirouter.RegisterRouteWithMiddleware(v1, translate, "POST", "/", authMW, translateHandler.HandleTranslate)
	apirouter.RegisterRouteWithMiddleware(v1, translate, "POST", "/detect", authMW, translateHandler.HandleDetect)
	apirouter.RegisterRouteWithMiddleware(v1, translate, "GET", "/languages", authMW, translateHandler.HandleLanguages)
	apirouter.RegisterRouteWithMiddleware(v1, translate, "GET", "/history", authMW, translateHandler.HandleHistory)

	studentHandler, err := aistudiohdl.NewStudentContentHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de contenido de estudiantes: %w", err)
	}
	student := "/student/lessons"
	apirouter.RegisterRouteWithMiddleware(v1, student, "GET", "/flashcards/:id", studentMW, studentHandler.HandleLessonFlashcards)
	apirouter.RegisterRouteWithMiddleware(v1, student, "GET", "/quizzes/:id", studentMW, studentHandler.HandleLessonQuizzes)
	apirouter.RegisterRouteWithMiddleware(v1, student, "GET", "/ai-content/:id", studentMW, studentHandler.HandleLessonContent)

	return nil
}
