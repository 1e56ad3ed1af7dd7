package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	authsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"
)

// AuthManager gestiona la autenticación y autorización de los requests.
// Cachea los usuarios cargados por 5 minutos para no golpear MongoDB
// en cada request autenticado.
type AuthManager struct {
	UserCRUD     *authsvc.UserService
	TokenService *authsvc.TokenService
	Cache        *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager retorna la instancia única del AuthManager (singleton).
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de usuarios: %v", err)
	}

	return &AuthManager{
		UserCRUD:     userService,
		TokenService: authsvc.NewTokenService(),
		Cache:        utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// extractToken extrae el JWT del header Authorization ("Bearer <token>").
func extractToken(c fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// loadUser carga el usuario por ID, usando el cache de 5 minutos.
func (m *AuthManager) loadUser(ctx context.Context, userID string) (*models.User, error) {
	cacheKey := "auth_user:" + userID
	if cached, found := m.Cache.Get(cacheKey); found {
		if user, ok := cached.(*models.User); ok {
			return user, nil
		}
	}

	objID := utility.String2ObjectID(userID)
	if objID.IsZero() {
		return nil, common.ErrTokenInvalid
	}
	user, err := m.UserCRUD.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}

	m.Cache.Set(cacheKey, &user)
	return &user, nil
}

// InvalidateUserCache elimina un usuario del cache (tras bloquearlo o
// cambiar sus roles los guards deben ver el estado nuevo).
func (m *AuthManager) InvalidateUserCache(userID string) {
	m.Cache.Delete("auth_user:" + userID)
}

// AuthMiddleware valida el JWT del request, carga el usuario y lo deja
// en el contexto (user_id, user, roles). Rechaza cuentas deshabilitadas.
func (m *AuthManager) AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		claims, err := m.TokenService.VerifyToken(tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := m.loadUser(c.Context(), claims.UserID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"userId": claims.UserID,
				"error":  err.Error(),
			}).Warn("AuthMiddleware: no se pudo cargar el usuario del token")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if user.IsDisabled {
			HandleErrorResponse(c, common.ErrUserDisabled)
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("roles", user.Roles)
		return c.Next()
	}
}

// requireRoles construye un guard que exige alguno de los roles indicados.
// Debe ejecutarse después de AuthMiddleware.
func (m *AuthManager) requireRoles(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok || user == nil {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		if !user.HasRole(roles...) {
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}
		return c.Next()
	}
}

// RequireAdmin exige rol admin.
func (m *AuthManager) RequireAdmin() fiber.Handler {
	return m.requireRoles(models.RoleAdmin)
}

// RequireAuthor exige rol admin o author.
func (m *AuthManager) RequireAuthor() fiber.Handler {
	return m.requireRoles(models.RoleAdmin, models.RoleAuthor)
}

// RequireTutor exige rol admin, author o tutor.
func (m *AuthManager) RequireTutor() fiber.Handler {
	return m.requireRoles(models.RoleAdmin, models.RoleAuthor, models.RoleTutor)
}

// RequireStudent exige rol student.
func (m *AuthManager) RequireStudent() fiber.Handler {
	return m.requireRoles(models.RoleStudent)
}
