// Package models - modelos del AI Studio: configuración de prompts
// en tres capas y artefactos de contenido generado.
package models

// Módulos de generación soportados por el AI Studio.
const (
	ModuleAudio        = "audio"
	ModulePresentation = "presentation"
	ModuleMindmap      = "mindmap"
	ModulePodcast      = "podcast"
	ModuleVideo        = "video"
	ModuleFlashcard    = "flashcard"
	ModuleQuiz         = "quiz"
	ModuleLesson       = "lesson"
)

// AIModules lista los módulos en el orden en que se exponen por la API.
var AIModules = []string{
	ModuleAudio,
	ModulePresentation,
	ModuleMindmap,
	ModulePodcast,
	ModuleVideo,
	ModuleFlashcard,
	ModuleQuiz,
	ModuleLesson,
}

// IsValidModule indica si el identificador corresponde a un módulo conocido.
func IsValidModule(module string) bool {
	for _, m := range AIModules {
		if m == module {
			return true
		}
	}
	return false
}

// Identificadores de documento dentro de la colección ai_studio_config.
const (
	DocMasterPrompt      = "master_prompt"
	DocStructureTemplate = "structure_template"
	ExtensionDocPrefix   = "extension_"
)

// ExtensionDocID arma el id de documento de la extensión de un módulo.
func ExtensionDocID(module string) string {
	return ExtensionDocPrefix + module
}

// PromptVersion es una entrada del historial de versiones del prompt maestro.
type PromptVersion struct {
	Version   int    `json:"version" bson:"version"`
	Content   string `json:"content" bson:"content"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
	CreatedBy string `json:"createdBy" bson:"createdBy"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// MasterPrompt es la capa 1: filosofía pedagógica común a todos los módulos.
// Cada actualización agrega una versión nueva; se conservan las últimas 10.
type MasterPrompt struct {
	ID             string          `json:"id" bson:"_id"`
	Name           string          `json:"name" bson:"name"`
	Description    string          `json:"description,omitempty" bson:"description,omitempty"`
	Content        string          `json:"content" bson:"content"`
	IsActive       bool            `json:"isActive" bson:"isActive"`
	CurrentVersion int             `json:"currentVersion" bson:"currentVersion"`
	Versions       []PromptVersion `json:"versions" bson:"versions"`
	CreatedAt      int64           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64           `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string          `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// StructureTemplate es la capa 2: estructura base del contenido.
type StructureTemplate struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Content   string `json:"content" bson:"content"`
	IsActive  bool   `json:"isActive" bson:"isActive"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64  `json:"updatedAt" bson:"updatedAt"`
}

// ModuleExtension es la capa 3: instrucciones específicas de un módulo.
type ModuleExtension struct {
	ID          string                 `json:"id" bson:"_id"`
	Module      string                 `json:"module" bson:"module"`
	Name        string                 `json:"name" bson:"name"`
	Description string                 `json:"description,omitempty" bson:"description,omitempty"`
	Content     string                 `json:"content" bson:"content"`
	Parameters  map[string]interface{} `json:"parameters,omitempty" bson:"parameters,omitempty"`
	IsActive    bool                   `json:"isActive" bson:"isActive"`
	CreatedAt   int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                  `json:"updatedAt" bson:"updatedAt"`
}

// GenerationContext lleva los datos de la lección/tema que se inyectan
// como variables en las tres capas del prompt.
type GenerationContext struct {
	Tema              string                 `json:"tema"`
	Nivel             string                 `json:"nivel"`
	Unidad            string                 `json:"unidad,omitempty"`
	Duracion          string                 `json:"duracion,omitempty"`
	Objetivo          string                 `json:"objetivo,omitempty"`
	IdiomaBase        string                 `json:"idiomaBase"`
	IdiomaObjetivo    string                 `json:"idiomaObjetivo"`
	AdditionalContext string                 `json:"additionalContext,omitempty"`
	ModuleParams      map[string]interface{} `json:"moduleParams,omitempty"`
}

// NewGenerationContext crea un contexto con los valores por defecto del curso
// (español de Perú hacia portugués brasileño, nivel básico).
func NewGenerationContext(tema string) GenerationContext {
	return GenerationContext{
		Tema:           tema,
		Nivel:          "basico",
		IdiomaBase:     "es",
		IdiomaObjetivo: "pt-BR",
	}
}

// PromptPreview es el resultado de ensamblar el prompt completo sin generar.
type PromptPreview struct {
	FullPrompt          string `json:"fullPrompt"`
	MasterPromptVersion int    `json:"masterPromptVersion"`
	ModuleExtension     string `json:"moduleExtension"`
	EstimatedTokens     int    `json:"estimatedTokens"`
}

// ModuleInfo resume un módulo para el listado de la API.
type ModuleInfo struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
	IsActive    bool                   `json:"isActive"`
}
