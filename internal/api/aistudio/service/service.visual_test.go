package aistudiosvc

import (
	"testing"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"

	"github.com/stretchr/testify/assert"
)

func deepChain(levels int) *models.MindmapNode {
	node := &models.MindmapNode{ID: "hoja"}
	for i := levels - 1; i > 0; i-- {
		node = &models.MindmapNode{ID: "nivel", Children: []models.MindmapNode{*node}}
	}
	return node
}

func TestPruneDepth_RecortaRamasProfundas(t *testing.T) {
	root := deepChain(6)
	pruneDepth(root, 0, 3)

	depth := 0
	for node := root; len(node.Children) > 0; node = &node.Children[0] {
		depth++
	}
	assert.Equal(t, 3, depth)
}

func TestPruneDepth_NoTocaArbolesDentroDelLimite(t *testing.T) {
	root := deepChain(2)
	pruneDepth(root, 0, models.MindmapMaxDepth)
	assert.Equal(t, 2, models.CountNodes(root))

	pruneDepth(nil, 0, 3) // no debe entrar en pánico
}
