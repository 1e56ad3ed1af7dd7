package aistudiosvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
)

// closingInstruction cierra todo prompt ensamblado.
const closingInstruction = "Genera el contenido completo siguiendo todas las instrucciones anteriores."

// PromptAssembler arma el prompt completo de una generación a partir de las
// tres capas de configuración más los datos del pedido.
type PromptAssembler struct {
	config *PromptConfigService
}

// NewPromptAssembler crea el ensamblador sobre el service de configuración.
func NewPromptAssembler(config *PromptConfigService) *PromptAssembler {
	return &PromptAssembler{config: config}
}

// ReplaceVariables sustituye los marcadores {{clave}} del template por los
// valores dados. La sustitución es literal y de una sola pasada por clave;
// los marcadores sin valor asociado quedan intactos.
func ReplaceVariables(template string, variables map[string]string) string {
	keys := make([]string, 0, len(variables))
	for key := range variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := template
	for _, key := range keys {
		placeholder := "{{" + key + "}}"
		result = strings.ReplaceAll(result, placeholder, variables[key])
	}
	return result
}

// EstimateTokens estima los tokens de un texto (1 token ≈ 4 caracteres en
// español/portugués).
func EstimateTokens(text string) int {
	return len(text) / 4
}

// buildVariables arma el mapa de variables a partir del contexto, con los
// valores por defecto de los campos opcionales.
func buildVariables(genCtx models.GenerationContext) map[string]string {
	variables := map[string]string{
		"tema":            genCtx.Tema,
		"nivel":           genCtx.Nivel,
		"unidad":          defaultIfEmpty(genCtx.Unidad, "General"),
		"duracion":        defaultIfEmpty(genCtx.Duracion, "Variable"),
		"objetivo":        defaultIfEmpty(genCtx.Objetivo, "Dominar el tema presentado"),
		"idioma_base":     genCtx.IdiomaBase,
		"idioma_objetivo": genCtx.IdiomaObjetivo,
	}
	for key, value := range genCtx.ModuleParams {
		if value == nil {
			variables[key] = ""
			continue
		}
		variables[key] = fmt.Sprint(value)
	}
	return variables
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Assemble construye el prompt completo de un módulo: capa maestra,
// plantilla de estructura, extensión del módulo y la sección de datos de
// generación, separadas por "---".
func (a *PromptAssembler) Assemble(ctx context.Context, module string, genCtx models.GenerationContext) (string, error) {
	master, err := a.config.GetMasterPrompt(ctx)
	if err != nil {
		return "", err
	}
	structure, err := a.config.GetStructureTemplate(ctx)
	if err != nil {
		return "", err
	}
	extension, err := a.config.GetModuleExtension(ctx, module)
	if err != nil {
		return "", err
	}

	variables := buildVariables(genCtx)

	parts := []string{ReplaceVariables(master.Content, variables)}
	if structureContent := ReplaceVariables(structure.Content, variables); structureContent != "" {
		parts = append(parts, "---\n\n"+structureContent)
	}
	parts = append(parts, "---\n\n"+ReplaceVariables(extension.Content, variables))
	parts = append(parts, buildDataSection(genCtx))

	return strings.Join(parts, "\n\n"), nil
}

// buildDataSection arma la sección final con los datos concretos del pedido.
func buildDataSection(genCtx models.GenerationContext) string {
	var sb strings.Builder
	sb.WriteString("\n---\n\n## DATOS DE GENERACIÓN\n")
	sb.WriteString(fmt.Sprintf("- Tema: %s\n", genCtx.Tema))
	sb.WriteString(fmt.Sprintf("- Nivel: %s\n", genCtx.Nivel))
	sb.WriteString(fmt.Sprintf("- Unidad: %s\n", defaultIfEmpty(genCtx.Unidad, "N/A")))
	sb.WriteString(fmt.Sprintf("- Duración: %s\n", defaultIfEmpty(genCtx.Duracion, "Variable")))
	sb.WriteString(fmt.Sprintf("- Objetivo: %s\n", defaultIfEmpty(genCtx.Objetivo, "Dominar el tema presentado")))

	if genCtx.AdditionalContext != "" {
		sb.WriteString("\n## CONTEXTO ADICIONAL\n")
		sb.WriteString(genCtx.AdditionalContext)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(closingInstruction)
	return sb.String()
}

// Preview ensambla el prompt sin generar contenido, para inspección desde
// el panel de administración.
func (a *PromptAssembler) Preview(ctx context.Context, module string, genCtx models.GenerationContext) (*models.PromptPreview, error) {
	fullPrompt, err := a.Assemble(ctx, module, genCtx)
	if err != nil {
		return nil, err
	}
	master, err := a.config.GetMasterPrompt(ctx)
	if err != nil {
		return nil, err
	}
	return &models.PromptPreview{
		FullPrompt:          fullPrompt,
		MasterPromptVersion: master.CurrentVersion,
		ModuleExtension:     module,
		EstimatedTokens:     EstimateTokens(fullPrompt),
	}, nil
}
