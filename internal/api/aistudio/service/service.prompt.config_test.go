package aistudiosvc

import (
	"context"
	"fmt"
	"testing"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func masterPromptWithVersions(n int) *models.MasterPrompt {
	prompt := &models.MasterPrompt{
		ID:             models.DocMasterPrompt,
		CurrentVersion: n,
	}
	for i := 1; i <= n; i++ {
		prompt.Versions = append(prompt.Versions, models.PromptVersion{
			Version: i,
			Content: fmt.Sprintf("contenido v%d", i),
		})
	}
	if n > 0 {
		prompt.Content = prompt.Versions[n-1].Content
	}
	return prompt
}

func TestAppendPromptVersion_IncrementaEstrictamente(t *testing.T) {
	current := masterPromptWithVersions(3)

	updated := appendPromptVersion(current, "contenido v4", "ajuste", "admin@idecap.edu.pe", 1700000000000)

	assert.Equal(t, 4, updated.CurrentVersion)
	assert.Equal(t, "contenido v4", updated.Content)
	assert.Equal(t, "admin@idecap.edu.pe", updated.UpdatedBy)
	assert.Equal(t, int64(1700000000000), updated.UpdatedAt)

	require.Len(t, updated.Versions, 4)
	head := updated.Versions[len(updated.Versions)-1]
	assert.Equal(t, 4, head.Version)
	assert.Equal(t, "contenido v4", head.Content)
	assert.Equal(t, "ajuste", head.Notes)

	// El documento original no se modifica.
	assert.Equal(t, 3, current.CurrentVersion)
	assert.Len(t, current.Versions, 3)
}

func TestAppendPromptVersion_ConservaLasDiezMasRecientes(t *testing.T) {
	current := masterPromptWithVersions(maxPromptVersions)

	updated := appendPromptVersion(current, "contenido v11", "", "admin@idecap.edu.pe", 1700000000000)

	require.Len(t, updated.Versions, maxPromptVersions)
	// Se descarta la más antigua; la numeración no se reinicia.
	assert.Equal(t, 2, updated.Versions[0].Version)
	assert.Equal(t, 11, updated.Versions[maxPromptVersions-1].Version)
	assert.Equal(t, 11, updated.CurrentVersion)
}

func TestAppendPromptVersion_RollbackAgregaVersionNueva(t *testing.T) {
	current := masterPromptWithVersions(5)

	target, found := findPromptVersion(current.Versions, 2)
	require.True(t, found)

	updated := appendPromptVersion(current, target.Content, "Rollback a versión 2", "admin@idecap.edu.pe", 1700000000000)

	// El rollback no reescribe la historia: queda como versión 6 con el
	// contenido de la 2.
	assert.Equal(t, 6, updated.CurrentVersion)
	assert.Equal(t, "contenido v2", updated.Content)
	require.Len(t, updated.Versions, 6)
	assert.Equal(t, 6, updated.Versions[5].Version)
	assert.Equal(t, "contenido v2", updated.Versions[5].Content)
	assert.Equal(t, "Rollback a versión 2", updated.Versions[5].Notes)
}

// Pedir la extensión de un módulo que no existe es un 404, no un error de
// validación.
func TestGetModuleExtension_ModuloDesconocido(t *testing.T) {
	s := &PromptConfigService{}

	_, err := s.GetModuleExtension(context.Background(), "karaoke")
	require.Error(t, err)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusNotFound, appErr.StatusCode)
}

func TestFindPromptVersion(t *testing.T) {
	versions := masterPromptWithVersions(3).Versions

	v, found := findPromptVersion(versions, 2)
	assert.True(t, found)
	assert.Equal(t, "contenido v2", v.Content)

	_, found = findPromptVersion(versions, 9)
	assert.False(t, found)

	_, found = findPromptVersion(nil, 1)
	assert.False(t, found)
}
