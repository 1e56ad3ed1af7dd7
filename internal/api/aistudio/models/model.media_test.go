package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPodcastVoice(t *testing.T) {
	voice, found := FindPodcastVoice("host_male")
	assert.True(t, found)
	assert.Equal(t, "Carlos (Presentador)", voice.Name)
	assert.Equal(t, "host", voice.Role)

	_, found = FindPodcastVoice("inexistente")
	assert.False(t, found)
}

func TestPodcastVoices_SinDuplicados(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range PodcastVoices {
		assert.False(t, seen[v.ID], "id de hablante duplicado: %s", v.ID)
		seen[v.ID] = true
		assert.NotEmpty(t, v.VoiceID)
		assert.NotEmpty(t, v.Name)
	}
}

func TestPodcastTranscript(t *testing.T) {
	podcast := &Podcast{Segments: []PodcastSegment{
		{Order: 1, SpeakerName: "Carlos", Text: "Bem-vindos ao episodio de hoy."},
		{Order: 2, SpeakerName: "Ana", Text: "Hoy hablamos de los saludos en portugués."},
	}}

	transcript := podcast.Transcript()
	assert.Equal(t, "Carlos: Bem-vindos ao episodio de hoy.\n\nAna: Hoy hablamos de los saludos en portugués.", transcript)
}

func TestPodcastTranscript_SinSegmentos(t *testing.T) {
	podcast := &Podcast{}
	assert.Equal(t, "", podcast.Transcript())
}
