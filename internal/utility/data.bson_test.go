package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap_RespetaTagsBson(t *testing.T) {
	type doc struct {
		Name  string `bson:"name"`
		Email string `bson:"email,omitempty"`
		Age   int    `bson:"age"`
	}

	result, err := ToMap(doc{Name: "Ana", Age: 21})
	require.NoError(t, err)

	assert.Equal(t, "Ana", result["name"])
	assert.Equal(t, int32(21), result["age"])
	// omitempty: el campo vacío no aparece en el mapa.
	_, exists := result["email"]
	assert.False(t, exists)
}

func TestToMap_ValorNoSerializable(t *testing.T) {
	_, err := ToMap(make(chan int))
	assert.Error(t, err)
}
