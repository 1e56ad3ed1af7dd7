package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusCompleted))
	assert.True(t, IsTerminalStatus(StatusFailed))
	assert.False(t, IsTerminalStatus(StatusPending))
	assert.False(t, IsTerminalStatus(StatusGenerating))
	assert.False(t, IsTerminalStatus(StatusProcessing))
}

func TestCanAdvance_SoloHaciaAdelante(t *testing.T) {
	assert.True(t, CanAdvance(GenericLifecycle, StatusPending, StatusGenerating))
	assert.True(t, CanAdvance(GenericLifecycle, StatusGenerating, StatusCompleted))
	assert.True(t, CanAdvance(GenericLifecycle, StatusPending, StatusCompleted))

	// Retroceder nunca está permitido.
	assert.False(t, CanAdvance(GenericLifecycle, StatusGenerating, StatusPending))
	assert.False(t, CanAdvance(GenericLifecycle, StatusCompleted, StatusGenerating))
}

func TestCanAdvance_EstadoTerminalNoTransiciona(t *testing.T) {
	assert.False(t, CanAdvance(GenericLifecycle, StatusCompleted, StatusFailed))
	assert.False(t, CanAdvance(GenericLifecycle, StatusFailed, StatusPending))
	assert.False(t, CanAdvance(VideoLifecycle, StatusFailed, StatusProcessing))
}

func TestCanAdvance_FalloDesdeCualquierEstadoNoTerminal(t *testing.T) {
	assert.True(t, CanAdvance(GenericLifecycle, StatusPending, StatusFailed))
	assert.True(t, CanAdvance(PodcastLifecycle, StatusGeneratingAudio, StatusFailed))
	assert.True(t, CanAdvance(VideoLifecycle, StatusQueued, StatusFailed))
}

func TestCanAdvance_CicloDePodcast(t *testing.T) {
	assert.True(t, CanAdvance(PodcastLifecycle, StatusPending, StatusGeneratingScript))
	assert.True(t, CanAdvance(PodcastLifecycle, StatusGeneratingScript, StatusGeneratingAudio))
	assert.True(t, CanAdvance(PodcastLifecycle, StatusGeneratingAudio, StatusCompleted))

	// Los estados de otros ciclos no pertenecen al de podcast.
	assert.False(t, CanAdvance(PodcastLifecycle, StatusPending, StatusQueued))
	assert.False(t, CanAdvance(PodcastLifecycle, StatusQueued, StatusCompleted))
}

func TestCanAdvance_CicloDeVideo(t *testing.T) {
	assert.True(t, CanAdvance(VideoLifecycle, StatusPending, StatusQueued))
	assert.True(t, CanAdvance(VideoLifecycle, StatusQueued, StatusGenerating))
	assert.True(t, CanAdvance(VideoLifecycle, StatusGenerating, StatusProcessing))
	assert.True(t, CanAdvance(VideoLifecycle, StatusProcessing, StatusCompleted))
	assert.True(t, CanAdvance(VideoLifecycle, StatusQueued, StatusCompleted))
}

func TestCanAdvance_EstadosDesconocidos(t *testing.T) {
	assert.False(t, CanAdvance(GenericLifecycle, "desconocido", StatusCompleted))
	assert.False(t, CanAdvance(GenericLifecycle, StatusPending, "desconocido"))
}
