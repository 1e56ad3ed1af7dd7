package portalsvc

import (
	"testing"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateChange_SinPeriodoAnterior(t *testing.T) {
	change, trend := calculateChange(10, 0)
	assert.Equal(t, 100.0, change)
	assert.Equal(t, models.TrendUp, trend)

	change, trend = calculateChange(0, 0)
	assert.Equal(t, 0.0, change)
	assert.Equal(t, models.TrendNeutral, trend)
}

func TestCalculateChange_Tendencias(t *testing.T) {
	change, trend := calculateChange(150, 100)
	assert.Equal(t, 50.0, change)
	assert.Equal(t, models.TrendUp, trend)

	change, trend = calculateChange(75, 100)
	assert.Equal(t, -25.0, change)
	assert.Equal(t, models.TrendDown, trend)

	change, trend = calculateChange(100, 100)
	assert.Equal(t, 0.0, change)
	assert.Equal(t, models.TrendNeutral, trend)
}

func TestCalculateChange_RedondeoAUnDecimal(t *testing.T) {
	change, trend := calculateChange(1, 3)
	assert.Equal(t, -66.7, change)
	assert.Equal(t, models.TrendDown, trend)

	change, _ = calculateChange(4, 3)
	assert.Equal(t, 33.3, change)
}
