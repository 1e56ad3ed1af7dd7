// Package router registra las rutas del dominio auth: login, perfil,
// estudiantes, códigos de acceso, códigos QR y salud del sistema.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/handler"
	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/api/middleware"
	apirouter "github.com/jesus-bazan-entel/IdecapLMS/internal/api/router"
)

// Register registra todas las rutas auth sobre v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAccessCodeRoutes(v1, r); err != nil {
		return err
	}
	if err := registerQRRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de sistema: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de usuarios: %w", err)
	}

	am := middleware.GetAuthManager()
	authMiddleware := am.AuthMiddleware()

	// Rutas públicas
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	// Rutas autenticadas
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{authMiddleware}, userHandler.HandleChangePassword)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de usuarios: %w", err)
	}

	am := middleware.GetAuthManager()
	adminMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAdmin()}
	tutorMW := []fiber.Handler{am.AuthMiddleware(), am.RequireTutor()}

	// CRUD de usuarios: lectura para tutores, escritura solo admin
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadWriteConfig, tutorMW, adminMW)

	// Gestión de cuentas y matrícula
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", adminMW, userHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", adminMW, userHandler.HandleUnBlockUser)

	authorMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAuthor()}
	apirouter.RegisterRouteWithMiddleware(router, "/user", "POST", "/enroll/:id", authorMW, userHandler.HandleEnroll)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "POST", "/unenroll/:id", authorMW, userHandler.HandleUnenroll)
	return nil
}

func registerAccessCodeRoutes(router fiber.Router, r *apirouter.Router) error {
	codeHandler, err := authhdl.NewAccessCodeHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de códigos de acceso: %w", err)
	}

	am := middleware.GetAuthManager()
	tutorMW := []fiber.Handler{am.AuthMiddleware(), am.RequireTutor()}

	// Validación pública: el estudiante aún no tiene sesión
	router.Post("/access-code/validate", codeHandler.HandleValidate)

	apirouter.RegisterRouteWithMiddleware(router, "/access-code", "POST", "/generate", tutorMW, codeHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(router, "/access-code", "GET", "/student/:id", tutorMW, codeHandler.HandleListByStudent)
	apirouter.RegisterRouteWithMiddleware(router, "/access-code", "POST", "/revoke/:id", tutorMW, codeHandler.HandleRevoke)

	// Listado/consulta generales solo admin
	adminMW := []fiber.Handler{am.AuthMiddleware(), am.RequireAdmin()}
	r.RegisterCRUDRoutes(router, "/access-code", codeHandler, apirouter.ReadOnlyConfig, adminMW, adminMW)
	return nil
}

func registerQRRoutes(router fiber.Router) error {
	qrHandler, err := authhdl.NewQRHandler()
	if err != nil {
		return fmt.Errorf("error al crear el handler de códigos QR: %w", err)
	}

	am := middleware.GetAuthManager()
	tutorMW := []fiber.Handler{am.AuthMiddleware(), am.RequireTutor()}

	// Verificación pública: el estudiante aún no tiene sesión
	router.Post("/qr/verify", qrHandler.HandleVerify)

	apirouter.RegisterRouteWithMiddleware(router, "/qr", "POST", "/generate", tutorMW, qrHandler.HandleGenerate)
	return nil
}
