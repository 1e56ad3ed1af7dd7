package aistudiosvc

import (
	"strings"
	"testing"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"

	"github.com/stretchr/testify/assert"
)

func TestReplaceVariables_SustituyeMarcadores(t *testing.T) {
	template := "Tema: {{tema}}, Nivel: {{nivel}}"
	result := ReplaceVariables(template, map[string]string{
		"tema":  "Saludos",
		"nivel": "Básico 1",
	})
	assert.Equal(t, "Tema: Saludos, Nivel: Básico 1", result)
}

func TestReplaceVariables_MarcadorSinValorQuedaIntacto(t *testing.T) {
	template := "Tema: {{tema}}, Unidad: {{unidad}}"
	result := ReplaceVariables(template, map[string]string{"tema": "Verbos"})
	assert.Equal(t, "Tema: Verbos, Unidad: {{unidad}}", result)
}

func TestReplaceVariables_SustitucionLiteral(t *testing.T) {
	// La sustitución es de una sola pasada por clave: si un valor contiene
	// otro marcador, ese marcador no se expande de nuevo.
	result := ReplaceVariables("{{a}}", map[string]string{
		"a": "{{b}}",
		"b": "final",
	})
	assert.Equal(t, "final", result)

	// Con orden alfabético inverso el valor insertado queda literal.
	result = ReplaceVariables("{{b}}", map[string]string{
		"b": "{{a}}",
		"a": "hola",
	})
	assert.Equal(t, "{{a}}", result)
}

func TestReplaceVariables_SinVariables(t *testing.T) {
	assert.Equal(t, "texto plano", ReplaceVariables("texto plano", nil))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 25, EstimateTokens(strings.Repeat("a", 100)))
}

func TestBuildVariables_ValoresPorDefecto(t *testing.T) {
	genCtx := models.GenerationContext{
		Tema:           "Pretérito perfecto",
		Nivel:          "Intermedio",
		IdiomaBase:     "es-PE",
		IdiomaObjetivo: "pt-BR",
	}
	variables := buildVariables(genCtx)

	assert.Equal(t, "Pretérito perfecto", variables["tema"])
	assert.Equal(t, "General", variables["unidad"])
	assert.Equal(t, "Variable", variables["duracion"])
	assert.Equal(t, "Dominar el tema presentado", variables["objetivo"])
	assert.Equal(t, "es-PE", variables["idioma_base"])
	assert.Equal(t, "pt-BR", variables["idioma_objetivo"])
}

func TestBuildVariables_ModuleParamsSeAgregan(t *testing.T) {
	genCtx := models.GenerationContext{
		Tema: "Comida brasileña",
		ModuleParams: map[string]interface{}{
			"num_slides": 8,
			"estilo":     "formal",
			"audiencia":  nil,
		},
	}
	variables := buildVariables(genCtx)

	assert.Equal(t, "8", variables["num_slides"])
	assert.Equal(t, "formal", variables["estilo"])
	// Un parámetro sin valor se sustituye por vacío, no por "<nil>".
	assert.Equal(t, "", variables["audiencia"])
}

func TestBuildVariables_ValoresExplicitosGanan(t *testing.T) {
	genCtx := models.GenerationContext{
		Tema:     "Música",
		Unidad:   "Unidad 3",
		Duracion: "45 minutos",
		Objetivo: "Reconocer ritmos",
	}
	variables := buildVariables(genCtx)

	assert.Equal(t, "Unidad 3", variables["unidad"])
	assert.Equal(t, "45 minutos", variables["duracion"])
	assert.Equal(t, "Reconocer ritmos", variables["objetivo"])
}

func TestBuildDataSection_Defaults(t *testing.T) {
	genCtx := models.GenerationContext{
		Tema:  "Saludos",
		Nivel: "Básico 1",
	}
	section := buildDataSection(genCtx)

	assert.Contains(t, section, "## DATOS DE GENERACIÓN")
	assert.Contains(t, section, "- Tema: Saludos\n")
	assert.Contains(t, section, "- Nivel: Básico 1\n")
	assert.Contains(t, section, "- Unidad: N/A\n")
	assert.Contains(t, section, "- Duración: Variable\n")
	assert.Contains(t, section, "- Objetivo: Dominar el tema presentado\n")
	assert.NotContains(t, section, "## CONTEXTO ADICIONAL")
	assert.True(t, strings.HasSuffix(section, closingInstruction))
}

func TestBuildDataSection_ContextoAdicional(t *testing.T) {
	genCtx := models.GenerationContext{
		Tema:              "Saludos",
		Nivel:             "Básico 1",
		AdditionalContext: "Enfocarse en situaciones de viaje",
	}
	section := buildDataSection(genCtx)

	assert.Contains(t, section, "## CONTEXTO ADICIONAL\nEnfocarse en situaciones de viaje\n")
	assert.True(t, strings.HasSuffix(section, closingInstruction))
}
