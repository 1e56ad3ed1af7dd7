// Package aistudiosvc - services del AI Studio: configuración de prompts,
// ensamblado en capas y generación de artefactos de contenido.
package aistudiosvc

import (
	"context"
	"fmt"
	"time"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	promptConfigCacheTTL = 5 * time.Minute
	maxPromptVersions    = 10
)

// PromptConfigService administra los documentos de configuración del AI
// Studio (prompt maestro versionado, plantilla de estructura y extensiones
// por módulo) con un caché TTL por documento. Los documentos usan ids de
// texto, por lo que se trabaja sobre la colección directamente.
type PromptConfigService struct {
	collection *mongo.Collection
	cache      *utility.Cache
	now        func() time.Time
}

// NewPromptConfigService crea el service con el caché de 5 minutos.
func NewPromptConfigService() (*PromptConfigService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AIStudioConfig)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de configuración del AI Studio: %v", common.ErrNotFound)
	}
	return &PromptConfigService{
		collection: collection,
		cache:      utility.NewCache(promptConfigCacheTTL, time.Minute),
		now:        time.Now,
	}, nil
}

// NewPromptConfigServiceWithCache permite inyectar el caché y el reloj.
func NewPromptConfigServiceWithCache(collection *mongo.Collection, cache *utility.Cache, now func() time.Time) *PromptConfigService {
	return &PromptConfigService{collection: collection, cache: cache, now: now}
}

// GetMasterPrompt devuelve el prompt maestro, sembrando el valor por
// defecto en el primer acceso.
func (s *PromptConfigService) GetMasterPrompt(ctx context.Context) (*models.MasterPrompt, error) {
	if cached, ok := s.cache.Get(models.DocMasterPrompt); ok {
		if prompt, ok := cached.(*models.MasterPrompt); ok {
			return prompt, nil
		}
	}

	var prompt models.MasterPrompt
	err := s.collection.FindOne(ctx, bson.M{"_id": models.DocMasterPrompt}).Decode(&prompt)
	if err == mongo.ErrNoDocuments {
		seeded, seedErr := s.seedMasterPrompt(ctx)
		if seedErr != nil {
			return nil, seedErr
		}
		prompt = *seeded
	} else if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	s.cache.Set(models.DocMasterPrompt, &prompt)
	return &prompt, nil
}

// seedMasterPrompt inserta el prompt maestro por defecto como versión 1.
func (s *PromptConfigService) seedMasterPrompt(ctx context.Context) (*models.MasterPrompt, error) {
	nowMs := s.now().UnixMilli()
	prompt := models.MasterPrompt{
		ID:             models.DocMasterPrompt,
		Name:           "Prompt Maestro",
		Description:    "Filosofía pedagógica y reglas comunes a todos los módulos de generación",
		Content:        models.DefaultMasterPrompt,
		IsActive:       true,
		CurrentVersion: 1,
		Versions: []models.PromptVersion{
			{
				Version:   1,
				Content:   models.DefaultMasterPrompt,
				CreatedAt: nowMs,
				CreatedBy: "sistema",
				Notes:     "Versión inicial",
			},
		},
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
	}
	if _, err := s.collection.InsertOne(ctx, prompt); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	logrus.Info("AIStudio: prompt maestro sembrado con el valor por defecto")
	return &prompt, nil
}

// appendPromptVersion agrega una versión nueva al historial (numerada como
// la versión vigente más uno) y recorta el historial a las
// maxPromptVersions más recientes. No muta el documento recibido.
func appendPromptVersion(current *models.MasterPrompt, content, notes, updatedBy string, nowMs int64) models.MasterPrompt {
	newVersion := current.CurrentVersion + 1
	versions := make([]models.PromptVersion, 0, len(current.Versions)+1)
	versions = append(versions, current.Versions...)
	versions = append(versions, models.PromptVersion{
		Version:   newVersion,
		Content:   content,
		CreatedAt: nowMs,
		CreatedBy: updatedBy,
		Notes:     notes,
	})
	if len(versions) > maxPromptVersions {
		versions = versions[len(versions)-maxPromptVersions:]
	}

	updated := *current
	updated.Content = content
	updated.CurrentVersion = newVersion
	updated.Versions = versions
	updated.UpdatedAt = nowMs
	updated.UpdatedBy = updatedBy
	return updated
}

// findPromptVersion busca una versión concreta en el historial.
func findPromptVersion(versions []models.PromptVersion, version int) (models.PromptVersion, bool) {
	for _, v := range versions {
		if v.Version == version {
			return v, true
		}
	}
	return models.PromptVersion{}, false
}

// UpdateMasterPrompt reemplaza el contenido del prompt maestro creando una
// versión nueva. Se conservan como máximo las 10 versiones más recientes.
func (s *PromptConfigService) UpdateMasterPrompt(ctx context.Context, content, notes, updatedBy string) (*models.MasterPrompt, error) {
	current, err := s.GetMasterPrompt(ctx)
	if err != nil {
		return nil, err
	}

	updated := appendPromptVersion(current, content, notes, updatedBy, s.now().UnixMilli())

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": models.DocMasterPrompt}, updated, opts); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	s.cache.Delete(models.DocMasterPrompt)
	logrus.WithField("version", updated.CurrentVersion).Info("AIStudio: prompt maestro actualizado")
	return &updated, nil
}

// GetMasterPromptVersions devuelve el historial de versiones.
func (s *PromptConfigService) GetMasterPromptVersions(ctx context.Context) ([]models.PromptVersion, error) {
	prompt, err := s.GetMasterPrompt(ctx)
	if err != nil {
		return nil, err
	}
	return prompt.Versions, nil
}

// RollbackMasterPrompt restaura el contenido de una versión anterior. El
// rollback no reescribe la historia: se agrega como una versión nueva.
func (s *PromptConfigService) RollbackMasterPrompt(ctx context.Context, version int, updatedBy string) (*models.MasterPrompt, error) {
	current, err := s.GetMasterPrompt(ctx)
	if err != nil {
		return nil, err
	}

	target, found := findPromptVersion(current.Versions, version)
	if !found {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			fmt.Sprintf("No se encontró la versión %d del prompt maestro", version),
			common.StatusNotFound, nil)
	}

	notes := fmt.Sprintf("Rollback a versión %d", version)
	return s.UpdateMasterPrompt(ctx, target.Content, notes, updatedBy)
}

// GetStructureTemplate devuelve la plantilla de estructura, sembrando el
// valor por defecto en el primer acceso.
func (s *PromptConfigService) GetStructureTemplate(ctx context.Context) (*models.StructureTemplate, error) {
	if cached, ok := s.cache.Get(models.DocStructureTemplate); ok {
		if tmpl, ok := cached.(*models.StructureTemplate); ok {
			return tmpl, nil
		}
	}

	var tmpl models.StructureTemplate
	err := s.collection.FindOne(ctx, bson.M{"_id": models.DocStructureTemplate}).Decode(&tmpl)
	if err == mongo.ErrNoDocuments {
		nowMs := s.now().UnixMilli()
		tmpl = models.StructureTemplate{
			ID:        models.DocStructureTemplate,
			Name:      "Plantilla de Estructura",
			Content:   models.DefaultStructureTemplate,
			IsActive:  true,
			CreatedAt: nowMs,
			UpdatedAt: nowMs,
		}
		if _, insErr := s.collection.InsertOne(ctx, tmpl); insErr != nil {
			return nil, common.ConvertMongoError(insErr)
		}
	} else if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	s.cache.Set(models.DocStructureTemplate, &tmpl)
	return &tmpl, nil
}

// UpdateStructureTemplate reemplaza el contenido de la plantilla.
func (s *PromptConfigService) UpdateStructureTemplate(ctx context.Context, content, updatedBy string) (*models.StructureTemplate, error) {
	current, err := s.GetStructureTemplate(ctx)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Content = content
	updated.UpdatedAt = s.now().UnixMilli()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": models.DocStructureTemplate}, updated, opts); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	s.cache.Delete(models.DocStructureTemplate)
	logrus.WithField("updatedBy", updatedBy).Info("AIStudio: plantilla de estructura actualizada")
	return &updated, nil
}

// GetModuleExtension devuelve la extensión de un módulo, sembrando el
// valor por defecto en el primer acceso.
func (s *PromptConfigService) GetModuleExtension(ctx context.Context, module string) (*models.ModuleExtension, error) {
	if !models.IsValidModule(module) {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Módulo desconocido: %s", module), common.StatusNotFound, nil)
	}

	docID := models.ExtensionDocID(module)
	if cached, ok := s.cache.Get(docID); ok {
		if ext, ok := cached.(*models.ModuleExtension); ok {
			return ext, nil
		}
	}

	var ext models.ModuleExtension
	err := s.collection.FindOne(ctx, bson.M{"_id": docID}).Decode(&ext)
	if err == mongo.ErrNoDocuments {
		seeded, seedErr := s.seedModuleExtension(ctx, module)
		if seedErr != nil {
			return nil, seedErr
		}
		ext = *seeded
	} else if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	s.cache.Set(docID, &ext)
	return &ext, nil
}

func (s *PromptConfigService) seedModuleExtension(ctx context.Context, module string) (*models.ModuleExtension, error) {
	def, ok := models.DefaultModuleExtensions[module]
	if !ok {
		return nil, common.ErrNotFound
	}

	nowMs := s.now().UnixMilli()
	ext := models.ModuleExtension{
		ID:          models.ExtensionDocID(module),
		Module:      module,
		Name:        def.Name,
		Description: def.Description,
		Content:     def.Content,
		Parameters:  def.Parameters,
		IsActive:    true,
		CreatedAt:   nowMs,
		UpdatedAt:   nowMs,
	}
	if _, err := s.collection.InsertOne(ctx, ext); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &ext, nil
}

// UpdateModuleExtension reemplaza el contenido y los parámetros de la
// extensión de un módulo.
func (s *PromptConfigService) UpdateModuleExtension(ctx context.Context, module, content string, parameters map[string]interface{}, updatedBy string) (*models.ModuleExtension, error) {
	current, err := s.GetModuleExtension(ctx, module)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Content = content
	if parameters != nil {
		updated.Parameters = parameters
	}
	updated.UpdatedAt = s.now().UnixMilli()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": updated.ID}, updated, opts); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	s.cache.Delete(updated.ID)
	logrus.WithFields(logrus.Fields{"module": module, "updatedBy": updatedBy}).
		Info("AIStudio: extensión de módulo actualizada")
	return &updated, nil
}

// ListModuleExtensions devuelve las extensiones de todos los módulos.
func (s *PromptConfigService) ListModuleExtensions(ctx context.Context) ([]models.ModuleExtension, error) {
	extensions := make([]models.ModuleExtension, 0, len(models.AIModules))
	for _, module := range models.AIModules {
		ext, err := s.GetModuleExtension(ctx, module)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, *ext)
	}
	return extensions, nil
}

// ListModules resume los módulos disponibles para el listado de la API.
func (s *PromptConfigService) ListModules(ctx context.Context) ([]models.ModuleInfo, error) {
	extensions, err := s.ListModuleExtensions(ctx)
	if err != nil {
		return nil, err
	}
	modules := make([]models.ModuleInfo, 0, len(extensions))
	for _, ext := range extensions {
		modules = append(modules, models.ModuleInfo{
			ID:          ext.Module,
			Name:        ext.Name,
			Description: ext.Description,
			Parameters:  ext.Parameters,
			IsActive:    ext.IsActive,
		})
	}
	return modules, nil
}

// ResetDefaults restaura todos los documentos de configuración a sus
// valores por defecto y vacía el caché.
func (s *PromptConfigService) ResetDefaults(ctx context.Context, updatedBy string) error {
	docIDs := []string{models.DocMasterPrompt, models.DocStructureTemplate}
	for _, module := range models.AIModules {
		docIDs = append(docIDs, models.ExtensionDocID(module))
	}

	if _, err := s.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": docIDs}}); err != nil {
		return common.ConvertMongoError(err)
	}
	s.cache.Clear()

	// Resembrar para que el siguiente acceso no pague el costo.
	if _, err := s.GetMasterPrompt(ctx); err != nil {
		return err
	}
	if _, err := s.GetStructureTemplate(ctx); err != nil {
		return err
	}
	for _, module := range models.AIModules {
		if _, err := s.GetModuleExtension(ctx, module); err != nil {
			return err
		}
	}

	logrus.WithField("updatedBy", updatedBy).Warn("AIStudio: configuración restaurada a valores por defecto")
	return nil
}

// ClearCache vacía el caché de configuración.
func (s *PromptConfigService) ClearCache() {
	s.cache.Clear()
}
