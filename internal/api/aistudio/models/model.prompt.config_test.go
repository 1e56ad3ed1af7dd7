package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGenerationContext_Defaults(t *testing.T) {
	genCtx := NewGenerationContext("Los saludos")

	assert.Equal(t, "Los saludos", genCtx.Tema)
	assert.Equal(t, "basico", genCtx.Nivel)
	assert.Equal(t, "es", genCtx.IdiomaBase)
	assert.Equal(t, "pt-BR", genCtx.IdiomaObjetivo)
	assert.Empty(t, genCtx.Unidad)
	assert.Empty(t, genCtx.AdditionalContext)
}

func TestDefaultModuleExtensions_Completo(t *testing.T) {
	// Cada tipo de contenido del estudio debe tener su extensión por defecto.
	for _, module := range []string{
		ModuleAudio, ModulePresentation, ModuleMindmap, ModulePodcast,
		ModuleVideo, ModuleFlashcard, ModuleQuiz, ModuleLesson,
	} {
		_, ok := DefaultModuleExtensions[module]
		assert.True(t, ok, "falta la extensión por defecto del módulo %s", module)
	}
}
