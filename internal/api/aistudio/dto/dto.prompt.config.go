// Package aistudiodto - datos de entrada del AI Studio.
package aistudiodto

// MasterPromptUpdateInput entrada de actualización del prompt maestro.
type MasterPromptUpdateInput struct {
	Content string `json:"content" validate:"required"`
	Notes   string `json:"notes"`
}

// StructureTemplateUpdateInput entrada de actualización de la plantilla.
type StructureTemplateUpdateInput struct {
	Content string `json:"content" validate:"required"`
}

// ModuleExtensionUpdateInput entrada de actualización de una extensión.
type ModuleExtensionUpdateInput struct {
	Content    string                 `json:"content" validate:"required"`
	Parameters map[string]interface{} `json:"parameters"`
}

// PromptPreviewInput entrada de la vista previa del prompt ensamblado.
type PromptPreviewInput struct {
	Module            string                 `json:"module" validate:"required"`
	Tema              string                 `json:"tema" validate:"required"`
	Nivel             string                 `json:"nivel"`
	Unidad            string                 `json:"unidad"`
	Duracion          string                 `json:"duracion"`
	Objetivo          string                 `json:"objetivo"`
	AdditionalContext string                 `json:"additionalContext"`
	ModuleParams      map[string]interface{} `json:"moduleParams"`
}
