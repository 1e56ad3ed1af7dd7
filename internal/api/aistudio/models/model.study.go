package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos de slide de una presentación.
const (
	SlideTypeTitle   = "title"
	SlideTypeContent = "content"
	SlideTypeImage   = "image"
	SlideTypeQuote   = "quote"
	SlideTypeSummary = "summary"
)

// Slide es una lámina de una presentación generada.
type Slide struct {
	Order        int      `json:"order" bson:"order"`
	Title        string   `json:"title" bson:"title"`
	Content      string   `json:"content,omitempty" bson:"content,omitempty"`
	BulletPoints []string `json:"bulletPoints,omitempty" bson:"bulletPoints,omitempty"`
	Type         string   `json:"type" bson:"type"`
	Notes        string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Presentation es una presentación educativa generada.
type Presentation struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string              `json:"title" bson:"title"`
	Topic        string              `json:"topic" bson:"topic"`
	Status       string              `json:"status" bson:"status" index:"single:1"`
	Slides       []Slide             `json:"slides" bson:"slides"`
	NumSlides    int                 `json:"numSlides" bson:"numSlides"`
	Language     string              `json:"language" bson:"language"`
	LessonID     *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy    primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`
}

// Paleta de colores de los mapas mentales, por nivel de profundidad.
var MindmapColors = []string{
	"#6366f1", // índigo (raíz)
	"#8b5cf6", // púrpura
	"#ec4899", // rosa
	"#f97316", // naranja
	"#22c55e", // verde
	"#06b6d4", // cian
	"#3b82f6", // azul
}

// MindmapMaxDepth limita la profundidad aceptada para un mapa mental.
const MindmapMaxDepth = 5

// MindmapNode es un nodo del árbol del mapa mental.
type MindmapNode struct {
	ID       string        `json:"id" bson:"id"`
	Label    string        `json:"label" bson:"label"`
	Color    string        `json:"color" bson:"color"`
	Level    int           `json:"level" bson:"level"`
	Children []MindmapNode `json:"children,omitempty" bson:"children,omitempty"`
}

// CountNodes cuenta los nodos del subárbol, incluida la raíz.
func CountNodes(node *MindmapNode) int {
	if node == nil {
		return 0
	}
	count := 1
	for i := range node.Children {
		count += CountNodes(&node.Children[i])
	}
	return count
}

// AssignColors asigna color y nivel a cada nodo según su profundidad.
func AssignColors(node *MindmapNode, level int) {
	if node == nil {
		return
	}
	node.Color = MindmapColors[level%len(MindmapColors)]
	node.Level = level
	for i := range node.Children {
		AssignColors(&node.Children[i], level+1)
	}
}

// Mindmap es un mapa mental generado.
type Mindmap struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string              `json:"title" bson:"title"`
	Topic        string              `json:"topic" bson:"topic"`
	Depth        int                 `json:"depth" bson:"depth"`
	Status       string              `json:"status" bson:"status" index:"single:1"`
	RootNode     *MindmapNode        `json:"rootNode,omitempty" bson:"rootNode,omitempty"`
	TotalNodes   int                 `json:"totalNodes" bson:"totalNodes"`
	Language     string              `json:"language" bson:"language"`
	LessonID     *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy    primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`
}

// Flashcard es una tarjeta de memoria individual.
type Flashcard struct {
	ID       string `json:"id" bson:"id"`
	Front    string `json:"front" bson:"front"`
	Back     string `json:"back" bson:"back"`
	Hint     string `json:"hint,omitempty" bson:"hint,omitempty"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
}

// FlashcardSet es un set de tarjetas generado para un tema.
type FlashcardSet struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string              `json:"title" bson:"title"`
	Topic        string              `json:"topic" bson:"topic"`
	Difficulty   string              `json:"difficulty" bson:"difficulty"`
	Status       string              `json:"status" bson:"status" index:"single:1"`
	Cards        []Flashcard         `json:"cards" bson:"cards"`
	LessonID     *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy    primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`
}

// QuizOption es una alternativa de respuesta.
type QuizOption struct {
	ID        string `json:"id" bson:"id"`
	Text      string `json:"text" bson:"text"`
	IsCorrect bool   `json:"isCorrect" bson:"isCorrect"`
}

// QuizQuestion es una pregunta del cuestionario con sus alternativas.
type QuizQuestion struct {
	ID          string       `json:"id" bson:"id"`
	Question    string       `json:"question" bson:"question"`
	Type        string       `json:"type" bson:"type"`
	Options     []QuizOption `json:"options" bson:"options"`
	Explanation string       `json:"explanation,omitempty" bson:"explanation,omitempty"`
	Points      int          `json:"points" bson:"points"`
	Category    string       `json:"category,omitempty" bson:"category,omitempty"`
}

// Quiz es un cuestionario generado para un tema.
type Quiz struct {
	ID               primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string              `json:"title" bson:"title"`
	Topic            string              `json:"topic" bson:"topic"`
	Difficulty       string              `json:"difficulty" bson:"difficulty"`
	Status           string              `json:"status" bson:"status" index:"single:1"`
	Questions        []QuizQuestion      `json:"questions" bson:"questions"`
	TimeLimitMinutes int                 `json:"timeLimitMinutes,omitempty" bson:"timeLimitMinutes,omitempty"`
	LessonID         *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy        primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage     string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt        int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64               `json:"updatedAt" bson:"updatedAt"`
}

// TotalPoints suma los puntos de todas las preguntas.
func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// MarshalJSON agrega los totales calculados (preguntas y puntos) a la
// representación JSON del quiz.
func (q Quiz) MarshalJSON() ([]byte, error) {
	type quizAlias Quiz
	return json.Marshal(struct {
		quizAlias
		TotalQuestions int `json:"totalQuestions"`
		TotalPoints    int `json:"totalPoints"`
	}{
		quizAlias:      quizAlias(q),
		TotalQuestions: len(q.Questions),
		TotalPoints:    q.TotalPoints(),
	})
}

// WithoutAnswers retorna una copia del quiz sin marcar las alternativas
// correctas ni las explicaciones. Es la vista que reciben los estudiantes.
func (q *Quiz) WithoutAnswers() Quiz {
	clean := *q
	clean.Questions = make([]QuizQuestion, len(q.Questions))
	for i, question := range q.Questions {
		cq := question
		cq.Explanation = ""
		cq.Options = make([]QuizOption, len(question.Options))
		for j, opt := range question.Options {
			cq.Options[j] = QuizOption{ID: opt.ID, Text: opt.Text}
		}
		clean.Questions[i] = cq
	}
	return clean
}

// LessonQuestion es una pregunta de práctica dentro del contenido generado.
type LessonQuestion struct {
	Question     string   `json:"question" bson:"question"`
	Options      []string `json:"options" bson:"options"`
	CorrectIndex int      `json:"correctIndex" bson:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty" bson:"explanation,omitempty"`
}

// GeneratedLesson es el contenido completo de una lección generado por IA.
type GeneratedLesson struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string              `json:"title" bson:"title"`
	Topic        string              `json:"topic" bson:"topic"`
	LessonType   string              `json:"lessonType" bson:"lessonType"`
	Objectives   []string            `json:"objectives" bson:"objectives"`
	Content      string              `json:"content" bson:"content"`
	KeyPoints    []string            `json:"keyPoints" bson:"keyPoints"`
	Questions    []LessonQuestion    `json:"questions" bson:"questions"`
	Status       string              `json:"status" bson:"status" index:"single:1"`
	LessonID     *primitive.ObjectID `json:"lessonId,omitempty" bson:"lessonId,omitempty" index:"single:1"`
	CreatedBy    primitive.ObjectID  `json:"createdBy" bson:"createdBy" index:"single:1"`
	ErrorMessage string              `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`
}
