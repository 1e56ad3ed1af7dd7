package ai

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableVoices_SinFiltro(t *testing.T) {
	voices := AvailableVoices("")
	assert.Len(t, voices, len(ttsVoices))
}

func TestAvailableVoices_FiltroPorIdioma(t *testing.T) {
	for _, v := range AvailableVoices("pt-BR") {
		assert.Equal(t, "pt-BR", v.Language)
	}
	assert.Len(t, AvailableVoices("pt-BR"), 2)

	// El filtro es por prefijo: "pt" incluye pt-BR y pt-PT.
	assert.Len(t, AvailableVoices("pt"), 4)
	assert.Empty(t, AvailableVoices("fr"))
}

func TestResolveVoice(t *testing.T) {
	voice := ResolveVoice("es-MX-Standard-B")
	assert.Equal(t, "Jorge", voice.Name)
	assert.Equal(t, "es-MX-JorgeNeural", voice.EngineVoice)
}

func TestResolveVoice_DesconocidaCaeEnLaVozPorDefecto(t *testing.T) {
	voice := ResolveVoice("voz-inexistente")
	assert.Equal(t, DefaultTTSVoice, voice.ID)
	assert.NotEmpty(t, voice.EngineVoice)
}

func TestEstimateDuration(t *testing.T) {
	// 150 palabras a 150 ppm = 60 segundos.
	text := ""
	for i := 0; i < 150; i++ {
		text += "palabra "
	}
	assert.InDelta(t, 60.0, EstimateDuration(text, 1.0), 0.01)

	// Al doble de velocidad tarda la mitad.
	assert.InDelta(t, 30.0, EstimateDuration(text, 2.0), 0.01)

	// Velocidad inválida cuenta como 1.0.
	assert.InDelta(t, 60.0, EstimateDuration(text, 0), 0.01)
	assert.True(t, math.Abs(EstimateDuration("", 1.0)) < 0.001)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "+0%", formatRate(1.0))
	assert.Equal(t, "+50%", formatRate(1.5))
	assert.Equal(t, "-25%", formatRate(0.75))
}

func TestFormatPitch(t *testing.T) {
	assert.Equal(t, "+0Hz", formatPitch(0))
	assert.Equal(t, "+10Hz", formatPitch(2))
	assert.Equal(t, "-15Hz", formatPitch(-3))
}
