package aistudiosvc

import (
	"testing"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSpeakers_PorEstilo(t *testing.T) {
	assert.Equal(t, []string{"host_female", "expert_male"}, defaultSpeakers(models.PodcastStyleInterview, 2))
	assert.Equal(t, []string{"host_male", "expert_female", "guest_male"}, defaultSpeakers(models.PodcastStyleDebate, 3))
	assert.Equal(t, []string{"host_male", "host_female"}, defaultSpeakers(models.PodcastStyleConversational, 2))
}

func TestDefaultSpeakers_RecortaAlNumeroPedido(t *testing.T) {
	speakers := defaultSpeakers(models.PodcastStyleDebate, 1)
	assert.Equal(t, []string{"host_male"}, speakers)

	// Pedir más hablantes de los que define el estilo no agrega extras.
	speakers = defaultSpeakers(models.PodcastStyleInterview, 5)
	assert.Len(t, speakers, 2)
}

func TestDefaultSpeakers_TodosExisten(t *testing.T) {
	for _, style := range []string{
		models.PodcastStyleConversational,
		models.PodcastStyleLecture,
		models.PodcastStyleInterview,
		models.PodcastStyleDebate,
		models.PodcastStyleStorytelling,
	} {
		for _, id := range defaultSpeakers(style, 4) {
			_, found := models.FindPodcastVoice(id)
			assert.True(t, found, "hablante %s del estilo %s no existe en el catálogo", id, style)
		}
	}
}

func TestPodcastStyles_RecomendacionesValidas(t *testing.T) {
	assert.Len(t, PodcastStyles, 5)
	for _, style := range PodcastStyles {
		assert.NotEmpty(t, style.Name)
		assert.GreaterOrEqual(t, style.RecommendedSpeakers, 1)
		speakers := defaultSpeakers(style.ID, style.RecommendedSpeakers)
		assert.NotEmpty(t, speakers)
	}
}
