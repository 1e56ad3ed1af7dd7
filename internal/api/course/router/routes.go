// Package router registra las rutas del dominio de cursos: catálogo,
// categorías y la jerarquía Course→Level→Module→Section→Lesson.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	coursehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/handler"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/api/middleware"
	apirouter "github.com/jesus-bazan-entel/IdecapLMS/internal/api/router"
)

// Register registra todas las rutas del dominio de cursos sobre v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	am := middleware.GetAuthManager()
	readMW := []fiber.Handler{am.AuthMiddleware()}
	writeMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAuthor()}
	adminMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAdmin()}

	courseHandler, err := coursehdl.NewCourseHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de cursos: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/course", courseHandler, apirouter.ReadWriteConfig, readMW, writeMW)
	apirouter.RegisterRouteWithMiddleware(v1, "/course", "POST", "/publish/:id", writeMW, courseHandler.HandlePublish)
	apirouter.RegisterRouteWithMiddleware(v1, "/course", "POST", "/archive/:id", writeMW, courseHandler.HandleArchive)
	apirouter.RegisterRouteWithMiddleware(v1, "/course", "POST", "/assign-tutor/:id", adminMW, courseHandler.HandleAssignTutor)
	apirouter.RegisterRouteWithMiddleware(v1, "/course", "POST", "/remove-tutor/:id", adminMW, courseHandler.HandleRemoveTutor)
	apirouter.RegisterRouteWithMiddleware(v1, "/course", "GET", "/hierarchy/:id", readMW, courseHandler.HandleGetHierarchy)
	apirouter.RegisterRouteWithMiddleware(v1, "/course", "GET", "/lesson-path/:id", readMW, courseHandler.HandleLessonPath)

	categoryHandler, err := coursehdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de categorías: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig, readMW, writeMW)

	levelHandler, err := coursehdl.NewLevelHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de niveles: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/level", levelHandler, apirouter.ReadWriteConfig, readMW, writeMW)

	moduleHandler, err := coursehdl.NewModuleHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de módulos: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/module", moduleHandler, apirouter.ReadWriteConfig, readMW, writeMW)

	sectionHandler, err := coursehdl.NewSectionHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de secciones: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/section", sectionHandler, apirouter.ReadWriteConfig, readMW, writeMW)

	lessonHandler, err := coursehdl.NewLessonHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de lecciones: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/lesson", lessonHandler, apirouter.ReadWriteConfig, readMW, writeMW)

	materialHandler, err := coursehdl.NewLessonMaterialHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de materiales: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/lesson-material", materialHandler, apirouter.ReadWriteConfig, readMW, writeMW)
	apirouter.RegisterRouteWithMiddleware(v1, "/lesson-material", "GET", "/lesson/:id", readMW, materialHandler.HandleListByLesson)

	return nil
}
