package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *MindmapNode {
	return &MindmapNode{
		ID:    "root",
		Label: "Portugués",
		Children: []MindmapNode{
			{
				ID:    "n1",
				Label: "Gramática",
				Children: []MindmapNode{
					{ID: "n1a", Label: "Verbos"},
					{ID: "n1b", Label: "Pronombres"},
				},
			},
			{ID: "n2", Label: "Vocabulario"},
		},
	}
}

func TestCountNodes(t *testing.T) {
	assert.Equal(t, 0, CountNodes(nil))
	assert.Equal(t, 1, CountNodes(&MindmapNode{ID: "solo"}))
	assert.Equal(t, 5, CountNodes(sampleTree()))
}

func TestAssignColors_PorProfundidad(t *testing.T) {
	root := sampleTree()
	AssignColors(root, 0)

	assert.Equal(t, MindmapColors[0], root.Color)
	assert.Equal(t, 0, root.Level)
	assert.Equal(t, MindmapColors[1], root.Children[0].Color)
	assert.Equal(t, 1, root.Children[0].Level)
	assert.Equal(t, MindmapColors[2], root.Children[0].Children[0].Color)
	assert.Equal(t, 2, root.Children[0].Children[0].Level)
	assert.Equal(t, MindmapColors[1], root.Children[1].Color)
}

func TestAssignColors_PaletaCircular(t *testing.T) {
	// Una profundidad mayor al tamaño de la paleta vuelve al inicio.
	node := &MindmapNode{ID: "hondo"}
	AssignColors(node, len(MindmapColors))
	assert.Equal(t, MindmapColors[0], node.Color)
	assert.Equal(t, len(MindmapColors), node.Level)

	AssignColors(nil, 0) // no debe entrar en pánico
}

func TestQuizTotalPoints(t *testing.T) {
	quiz := &Quiz{Questions: []QuizQuestion{
		{ID: "q1", Points: 2},
		{ID: "q2", Points: 3},
		{ID: "q3", Points: 5},
	}}
	assert.Equal(t, 10, quiz.TotalPoints())

	empty := &Quiz{}
	assert.Equal(t, 0, empty.TotalPoints())
}

// Las respuestas de quiz exponen los totales calculados junto con los
// campos persistidos.
func TestQuizMarshalJSON_IncluyeTotales(t *testing.T) {
	quiz := &Quiz{
		Title: "Saludos",
		Questions: []QuizQuestion{
			{ID: "q1", Points: 2},
			{ID: "q2", Points: 3},
		},
	}

	data, err := json.Marshal(quiz)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Saludos", decoded["title"])
	assert.Equal(t, float64(2), decoded["totalQuestions"])
	assert.Equal(t, float64(5), decoded["totalPoints"])

	// La vista del estudiante (sin respuestas) también los incluye.
	data, err = json.Marshal(quiz.WithoutAnswers())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(2), decoded["totalQuestions"])
	assert.Equal(t, float64(5), decoded["totalPoints"])
}

func TestQuizWithoutAnswers(t *testing.T) {
	quiz := &Quiz{
		Title: "Saludos",
		Questions: []QuizQuestion{
			{
				ID:          "q1",
				Question:    "¿Cómo se dice hola en portugués?",
				Explanation: "Olá es el saludo estándar",
				Points:      2,
				Options: []QuizOption{
					{ID: "a", Text: "Olá", IsCorrect: true},
					{ID: "b", Text: "Adeus", IsCorrect: false},
				},
			},
		},
	}

	clean := quiz.WithoutAnswers()

	assert.Equal(t, "Saludos", clean.Title)
	assert.Empty(t, clean.Questions[0].Explanation)
	assert.Equal(t, 2, clean.Questions[0].Points)
	for _, opt := range clean.Questions[0].Options {
		assert.False(t, opt.IsCorrect)
		assert.NotEmpty(t, opt.Text)
	}

	// El quiz original no se modifica.
	assert.True(t, quiz.Questions[0].Options[0].IsCorrect)
	assert.Equal(t, "Olá es el saludo estándar", quiz.Questions[0].Explanation)
}
