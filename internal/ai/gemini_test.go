package ai

import (
	"testing"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripJSONFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripJSONFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripJSONFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, StripJSONFences("  \n{\"a\":1}\n  "))
	assert.Equal(t, "", StripJSONFences("```json\n```"))
}

func TestDecodeJSONResponse_JSONValido(t *testing.T) {
	result, err := DecodeJSONResponse(`{"title": "Saludos", "slides": 5}`)
	require.NoError(t, err)
	assert.Equal(t, "Saludos", result["title"])
	assert.Equal(t, float64(5), result["slides"])
}

func TestDecodeJSONResponse_ConBloqueMarkdown(t *testing.T) {
	result, err := DecodeJSONResponse("```json\n{\"ok\": true}\n```")
	require.NoError(t, err)
	assert.Equal(t, true, result["ok"])
}

func TestDecodeJSONResponse_ReparaJSONMalformado(t *testing.T) {
	// Coma colgante: inválido para encoding/json pero reparable.
	result, err := DecodeJSONResponse(`{"items": [1, 2, 3,], "name": "test",}`)
	require.NoError(t, err)
	assert.Equal(t, "test", result["name"])
}

func TestDecodeJSONResponse_TextoIrreparable(t *testing.T) {
	_, err := DecodeJSONResponse("esto no es json de ninguna forma")
	assert.ErrorIs(t, err, common.ErrAIInvalidResponse)
}
