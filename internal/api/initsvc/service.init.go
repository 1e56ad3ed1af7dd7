// Package initsvc contiene InitService, que siembra los datos iniciales
// del sistema: el administrador por defecto, las categorías de cursos y
// la configuración de prompts del AI Studio.
package initsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	aistudiomodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	authmodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	authsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/service"
	coursemodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	coursesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCategories son las categorías de cursos creadas en la primera
// ejecución si la colección está vacía.
var DefaultCategories = []coursemodels.Category{
	{Name: "Portugués Brasileño", OrderIndex: 1},
	{Name: "Gramática", OrderIndex: 2},
	{Name: "Conversación", OrderIndex: 3},
	{Name: "Vocabulario", OrderIndex: 4},
	{Name: "Cultura Brasileña", OrderIndex: 5},
}

// InitService siembra los datos por defecto en la primera ejecución.
type InitService struct {
	userService         *authsvc.UserService
	categoryService     *coursesvc.CategoryService
	promptConfigService *aistudiosvc.PromptConfigService
}

// NewInitService crea un InitService nuevo.
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de usuarios: %v", err)
	}
	categoryService, err := coursesvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de categorías: %v", err)
	}
	promptConfigService, err := aistudiosvc.GetPromptConfigService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service de configuración de prompts: %v", err)
	}
	return &InitService{
		userService:         userService,
		categoryService:     categoryService,
		promptConfigService: promptConfigService,
	}, nil
}

// EnsureAdminUser crea el usuario administrador inicial si no existe.
// Con email o contraseña vacíos no hace nada: el seed es opcional.
func (s *InitService) EnsureAdminUser(ctx context.Context, email, password, name string) error {
	log := logger.GetAppLogger()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD no configurados, se omite el seed del administrador")
		return nil
	}

	existing, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil && err != common.ErrNotFound {
		return fmt.Errorf("error al buscar el administrador: %v", err)
	}
	if err == nil {
		if !existing.HasRole(authmodels.RoleAdmin) {
			log.Warnf("El usuario %s ya existe pero no tiene rol admin", email)
		}
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error al hashear la contraseña del administrador: %v", err)
	}
	if name == "" {
		name = "Administrador"
	}

	admin := authmodels.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Roles:    []string{authmodels.RoleAdmin},
	}
	created, err := s.userService.InsertOne(ctx, admin)
	if err != nil {
		return fmt.Errorf("error al crear el administrador: %v", err)
	}

	log.Infof("✅ [INIT] Administrador inicial creado: %s (ID: %s)", email, created.ID.Hex())
	return nil
}

// EnsureDefaultCategories siembra las categorías de cursos si la
// colección está vacía.
func (s *InitService) EnsureDefaultCategories(ctx context.Context) error {
	log := logger.GetAppLogger()

	count, err := s.categoryService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("error al contar las categorías: %v", err)
	}
	if count > 0 {
		return nil
	}

	for _, category := range DefaultCategories {
		if _, err := s.categoryService.InsertOne(ctx, category); err != nil {
			return fmt.Errorf("error al crear la categoría %s: %v", category.Name, err)
		}
	}
	log.Infof("✅ [INIT] Se crearon %d categorías por defecto", len(DefaultCategories))
	return nil
}

// EnsurePromptDefaults materializa el master prompt, la plantilla de
// estructura y las extensiones de módulo por defecto. Las lecturas
// siembran los documentos que falten, así la primera petición del
// AI Studio no paga el costo de la siembra.
func (s *InitService) EnsurePromptDefaults(ctx context.Context) error {
	if _, err := s.promptConfigService.GetMasterPrompt(ctx); err != nil {
		return fmt.Errorf("error al sembrar el master prompt: %v", err)
	}
	if _, err := s.promptConfigService.GetStructureTemplate(ctx); err != nil {
		return fmt.Errorf("error al sembrar la plantilla de estructura: %v", err)
	}

	modules := make([]string, 0, len(aistudiomodels.DefaultModuleExtensions))
	for module := range aistudiomodels.DefaultModuleExtensions {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	for _, module := range modules {
		if _, err := s.promptConfigService.GetModuleExtension(ctx, module); err != nil {
			return fmt.Errorf("error al sembrar la extensión del módulo %s: %v", module, err)
		}
	}

	logger.GetAppLogger().Infof("✅ [INIT] Configuración de prompts asegurada (%d módulos)", len(modules))
	return nil
}

// Run ejecuta todos los pasos de siembra. Los pasos no críticos solo
// registran el error para no impedir el arranque.
func (s *InitService) Run(ctx context.Context, adminEmail, adminPassword, adminName string) error {
	log := logger.GetAppLogger()
	started := time.Now()

	if err := s.EnsureAdminUser(ctx, adminEmail, adminPassword, adminName); err != nil {
		return err
	}
	if err := s.EnsureDefaultCategories(ctx); err != nil {
		log.WithError(err).Warn("No se pudieron sembrar las categorías por defecto")
	}
	if err := s.EnsurePromptDefaults(ctx); err != nil {
		log.WithError(err).Warn("No se pudo sembrar la configuración de prompts")
	}

	log.Infof("✅ [INIT] Datos iniciales asegurados en %s", time.Since(started).Round(time.Millisecond))
	return nil
}
