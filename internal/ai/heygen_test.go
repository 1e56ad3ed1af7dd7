package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVideoStatus(t *testing.T) {
	cases := map[string]string{
		"pending":    "pending",
		"waiting":    "pending",
		"processing": "processing",
		"completed":  "completed",
		"failed":     "failed",
		"error":      "failed",
	}
	for provider, expected := range cases {
		assert.Equal(t, expected, normalizeVideoStatus(provider), "estado del proveedor: %s", provider)
	}

	// Un estado desconocido del proveedor se trata como en proceso.
	assert.Equal(t, "processing", normalizeVideoStatus("rendering"))
	assert.Equal(t, "processing", normalizeVideoStatus(""))
}
