package portalsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentLevelOrder(t *testing.T) {
	assert.Equal(t, 1, StudentLevelOrder("básico"))
	assert.Equal(t, 1, StudentLevelOrder("basic"))
	assert.Equal(t, 2, StudentLevelOrder("Intermedio"))
	assert.Equal(t, 2, StudentLevelOrder("intermediate"))
	assert.Equal(t, 3, StudentLevelOrder("  AVANZADO  "))
	assert.Equal(t, 3, StudentLevelOrder("advanced"))

	// Desconocido o vacío cuenta como básico.
	assert.Equal(t, 1, StudentLevelOrder(""))
	assert.Equal(t, 1, StudentLevelOrder("otro"))
}

func TestLevelDifficultyOrder_PorNombre(t *testing.T) {
	assert.Equal(t, 1, LevelDifficultyOrder("Nivel Básico", 5))
	assert.Equal(t, 1, LevelDifficultyOrder("Portugués para principiantes", 9))
	assert.Equal(t, 2, LevelDifficultyOrder("Intermedio A", 1))
	assert.Equal(t, 3, LevelDifficultyOrder("Curso Avanzado", 1))
	assert.Equal(t, 3, LevelDifficultyOrder("Expert track", 1))
}

func TestLevelDifficultyOrder_PorOrden(t *testing.T) {
	// Sin palabra clave en el nombre decide el orden del nivel.
	assert.Equal(t, 1, LevelDifficultyOrder("Nivel A", 0))
	assert.Equal(t, 1, LevelDifficultyOrder("Nivel A", 1))
	assert.Equal(t, 2, LevelDifficultyOrder("Nivel B", 2))
	assert.Equal(t, 3, LevelDifficultyOrder("Nivel C", 3))
	assert.Equal(t, 3, LevelDifficultyOrder("Nivel D", 10))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, ProgressPercent(0, 0))
	assert.Equal(t, 0.0, ProgressPercent(5, -1))
	assert.Equal(t, 0.0, ProgressPercent(0, 10))
	assert.Equal(t, 50.0, ProgressPercent(5, 10))
	assert.Equal(t, 100.0, ProgressPercent(10, 10))

	// Redondeo a un decimal.
	assert.Equal(t, 33.3, ProgressPercent(1, 3))
	assert.Equal(t, 66.7, ProgressPercent(2, 3))
	assert.Equal(t, 16.7, ProgressPercent(1, 6))
}
