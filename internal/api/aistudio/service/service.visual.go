package aistudiosvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/ai"
	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseFailureMessage es el mensaje persistido cuando la respuesta del
// modelo no se puede convertir al artefacto esperado.
const parseFailureMessage = "Error al procesar la respuesta de IA"

// decodeResult convierte el mapa devuelto por el modelo en el tipo destino
// vía un round-trip JSON.
func decodeResult(data map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// PresentationService genera presentaciones educativas.
type PresentationService struct {
	*basesvc.BaseServiceMongoImpl[models.Presentation]
	gemini    *ai.GeminiClient
	assembler *PromptAssembler
}

// NewPresentationService crea un PresentationService nuevo.
func NewPresentationService(assembler *PromptAssembler) (*PresentationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedPresentations)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de presentaciones: %v", common.ErrNotFound)
	}
	return &PresentationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Presentation](collection),
		gemini:               ai.NewGeminiClient(),
		assembler:            assembler,
	}, nil
}

var presentationSchema = map[string]interface{}{
	"title": "string",
	"slides": []interface{}{
		map[string]interface{}{
			"order":        "number",
			"title":        "string",
			"content":      "string",
			"bulletPoints": []string{"string"},
			"type":         "title|content|image|quote|summary",
			"notes":        "string",
		},
	},
}

// Generate crea una presentación: arma el prompt en capas, pide el JSON al
// modelo y persiste los slides.
func (s *PresentationService) Generate(ctx context.Context, input *dto.PresentationGenerateInput, userID primitive.ObjectID) (*models.Presentation, error) {
	numSlides := input.NumSlides
	if numSlides == 0 {
		numSlides = 10
	}
	language := input.Language
	if language == "" {
		language = "es"
	}

	presentation := models.Presentation{
		Title:     input.Topic,
		Topic:     input.Topic,
		Status:    models.StatusGenerating,
		NumSlides: numSlides,
		Language:  language,
		LessonID:  utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy: userID,
	}
	created, err := s.InsertOne(ctx, presentation)
	if err != nil {
		return nil, err
	}

	// Una falla de generación no es un error HTTP: se responde el
	// artefacto en estado failed con su errorMessage.
	if err := s.runGeneration(ctx, created.ID, input, numSlides); err != nil {
		logrus.WithField("presentationId", created.ID.Hex()).Errorf("AIStudio: falló la generación de la presentación: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// runGeneration pide los slides al modelo y cierra el registro; ante una
// falla deja el documento en estado failed.
func (s *PresentationService) runGeneration(ctx context.Context, id primitive.ObjectID, input *dto.PresentationGenerateInput, numSlides int) error {
	genCtx := models.NewGenerationContext(input.Topic)
	if input.Level != "" {
		genCtx.Nivel = input.Level
	}
	genCtx.AdditionalContext = input.AdditionalContext
	genCtx.ModuleParams = map[string]interface{}{"num_slides": numSlides}

	prompt, err := s.assembler.Assemble(ctx, models.ModulePresentation, genCtx)
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	result, err := s.gemini.GenerateJSON(ctx, prompt, presentationSchema, "")
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	var parsed struct {
		Title  string         `json:"title"`
		Slides []models.Slide `json:"slides"`
	}
	if err := decodeResult(result, &parsed); err != nil || len(parsed.Slides) == 0 {
		s.markFailed(ctx, id, parseFailureMessage)
		return common.ErrAIInvalidResponse
	}

	for i := range parsed.Slides {
		parsed.Slides[i].Order = i + 1
		if parsed.Slides[i].Type == "" {
			parsed.Slides[i].Type = models.SlideTypeContent
		}
	}
	title := parsed.Title
	if title == "" {
		title = input.Topic
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    models.StatusCompleted,
			"title":     title,
			"slides":    parsed.Slides,
			"numSlides": len(parsed.Slides),
		},
	})
	return err
}

func (s *PresentationService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("presentationId", id.Hex()).Errorf("AIStudio: no se pudo marcar la presentación como fallida: %v", err)
	}
}

// List devuelve las presentaciones visibles para el usuario.
func (s *PresentationService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.Presentation, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve una presentación por id.
func (s *PresentationService) Get(ctx context.Context, id primitive.ObjectID) (*models.Presentation, error) {
	presentation, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &presentation, nil
}

// Delete elimina una presentación; solo el dueño o un admin.
func (s *PresentationService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	presentation, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && presentation.CreatedBy != userID {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, id)
}

// MindmapService genera mapas mentales.
type MindmapService struct {
	*basesvc.BaseServiceMongoImpl[models.Mindmap]
	gemini    *ai.GeminiClient
	assembler *PromptAssembler
}

// NewMindmapService crea un MindmapService nuevo.
func NewMindmapService(assembler *PromptAssembler) (*MindmapService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GeneratedMindmaps)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de mapas mentales: %v", common.ErrNotFound)
	}
	return &MindmapService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Mindmap](collection),
		gemini:               ai.NewGeminiClient(),
		assembler:            assembler,
	}, nil
}

var mindmapSchema = map[string]interface{}{
	"title": "string",
	"root": map[string]interface{}{
		"label": "string",
		"children": []interface{}{
			map[string]interface{}{
				"label":    "string",
				"children": "...",
			},
		},
	},
}

// Generate crea un mapa mental podando el árbol a la profundidad pedida y
// asignando colores por nivel.
func (s *MindmapService) Generate(ctx context.Context, input *dto.MindmapGenerateInput, userID primitive.ObjectID) (*models.Mindmap, error) {
	depth := input.Depth
	if depth == 0 {
		depth = 3
	}
	language := input.Language
	if language == "" {
		language = "es"
	}

	mindmap := models.Mindmap{
		Title:     input.Topic,
		Topic:     input.Topic,
		Depth:     depth,
		Status:    models.StatusGenerating,
		Language:  language,
		LessonID:  utility.String2ObjectIDPtr(input.LessonID),
		CreatedBy: userID,
	}
	created, err := s.InsertOne(ctx, mindmap)
	if err != nil {
		return nil, err
	}

	// Una falla de generación no es un error HTTP: se responde el
	// artefacto en estado failed con su errorMessage.
	if err := s.runGeneration(ctx, created.ID, input, depth); err != nil {
		logrus.WithField("mindmapId", created.ID.Hex()).Errorf("AIStudio: falló la generación del mapa mental: %v", err)
	}

	final, err := s.FindOneById(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &final, nil
}

// runGeneration pide el árbol al modelo, lo poda y cierra el registro;
// ante una falla deja el documento en estado failed.
func (s *MindmapService) runGeneration(ctx context.Context, id primitive.ObjectID, input *dto.MindmapGenerateInput, depth int) error {
	genCtx := models.NewGenerationContext(input.Topic)
	if input.Level != "" {
		genCtx.Nivel = input.Level
	}
	genCtx.AdditionalContext = input.AdditionalContext
	genCtx.ModuleParams = map[string]interface{}{"profundidad": depth}

	prompt, err := s.assembler.Assemble(ctx, models.ModuleMindmap, genCtx)
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	result, err := s.gemini.GenerateJSON(ctx, prompt, mindmapSchema, "")
	if err != nil {
		s.markFailed(ctx, id, err.Error())
		return err
	}

	var parsed struct {
		Title string              `json:"title"`
		Root  *models.MindmapNode `json:"root"`
	}
	if err := decodeResult(result, &parsed); err != nil || parsed.Root == nil {
		s.markFailed(ctx, id, parseFailureMessage)
		return common.ErrAIInvalidResponse
	}

	pruneDepth(parsed.Root, 0, depth)
	assignNodeIDs(parsed.Root, new(int))
	models.AssignColors(parsed.Root, 0)

	title := parsed.Title
	if title == "" {
		title = input.Topic
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":     models.StatusCompleted,
			"title":      title,
			"rootNode":   parsed.Root,
			"totalNodes": models.CountNodes(parsed.Root),
		},
	})
	return err
}

// pruneDepth recorta las ramas que superan la profundidad máxima.
func pruneDepth(node *models.MindmapNode, level, maxDepth int) {
	if node == nil {
		return
	}
	if level >= maxDepth {
		node.Children = nil
		return
	}
	for i := range node.Children {
		pruneDepth(&node.Children[i], level+1, maxDepth)
	}
}

// assignNodeIDs numera los nodos en preorden (n1, n2, ...).
func assignNodeIDs(node *models.MindmapNode, counter *int) {
	if node == nil {
		return
	}
	*counter++
	node.ID = fmt.Sprintf("n%d", *counter)
	for i := range node.Children {
		assignNodeIDs(&node.Children[i], counter)
	}
}

func (s *MindmapService) markFailed(ctx context.Context, id primitive.ObjectID, message string) {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       models.StatusFailed,
			"errorMessage": message,
		},
	})
	if err != nil {
		logrus.WithField("mindmapId", id.Hex()).Errorf("AIStudio: no se pudo marcar el mapa mental como fallido: %v", err)
	}
}

// List devuelve los mapas mentales visibles para el usuario.
func (s *MindmapService) List(ctx context.Context, lessonID *primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) ([]models.Mindmap, error) {
	return s.Find(ctx, artifactListFilter(lessonID, userID, isAdmin), artifactListOptions())
}

// Get devuelve un mapa mental por id.
func (s *MindmapService) Get(ctx context.Context, id primitive.ObjectID) (*models.Mindmap, error) {
	mindmap, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &mindmap, nil
}

// Delete elimina un mapa mental; solo el dueño o un admin.
func (s *MindmapService) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, isAdmin bool) error {
	mindmap, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && mindmap.CreatedBy != userID {
		return common.ErrForbidden
	}
	return s.DeleteById(ctx, id)
}

// Colors expone la paleta usada por nivel de profundidad.
func (s *MindmapService) Colors() []string {
	return models.MindmapColors
}
