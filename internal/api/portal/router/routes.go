// Package router registra las rutas del portal de estudiantes y del
// dashboard administrativo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/api/middleware"
	portalhdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/handler"
	apirouter "github.com/jesus-bazan-entel/IdecapLMS/internal/api/router"
)

// Register registra las rutas del portal y del dashboard sobre v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	am := middleware.GetAuthManager()
	studentMW := []fiber.Handler{am.AuthMiddleware(), am.RequireStudent()}
	adminMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAdmin()}

	portalHandler, err := portalhdl.NewPortalHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler del portal: %w", err)
	}
	portal := "/student-portal"
	apirouter.RegisterRouteWithMiddleware(v1, portal, "GET", "/me", studentMW, portalHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, portal, "GET", "/courses", studentMW, portalHandler.HandleMyCourses)
	apirouter.RegisterRouteWithMiddleware(v1, portal, "GET", "/courses/:id", studentMW, portalHandler.HandleCourseDetail)
	apirouter.RegisterRouteWithMiddleware(v1, portal, "GET", "/lessons/:id", studentMW, portalHandler.HandleLessonContent)
	apirouter.RegisterRouteWithMiddleware(v1, portal, "POST", "/progress/lessons/:id/complete", studentMW, portalHandler.HandleMarkCompleted)
	apirouter.RegisterRouteWithMiddleware(v1, portal, "GET", "/progress/courses/:id", studentMW, portalHandler.HandleCourseProgress)

	dashboardHandler, err := portalhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler del dashboard: %w", err)
	}
	dashboard := "/dashboard"
	apirouter.RegisterRouteWithMiddleware(v1, dashboard, "GET", "/stats", adminMW, dashboardHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(v1, dashboard, "GET", "/charts/users", adminMW, dashboardHandler.HandleUsersChart)
	apirouter.RegisterRouteWithMiddleware(v1, dashboard, "GET", "/charts/enrollments", adminMW, dashboardHandler.HandleEnrollmentsChart)
	apirouter.RegisterRouteWithMiddleware(v1, dashboard, "GET", "/charts/student-levels", adminMW, dashboardHandler.HandleStudentLevelsChart)
	apirouter.RegisterRouteWithMiddleware(v1, dashboard, "GET", "/charts/courses-status", adminMW, dashboardHandler.HandleCoursesStatusChart)
	apirouter.RegisterRouteWithMiddleware(v1, dashboard, "GET", "/recent-activity", adminMW, dashboardHandler.HandleRecentActivity)

	return nil
}
