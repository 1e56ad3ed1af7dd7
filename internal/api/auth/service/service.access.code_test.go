package authsvc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	code, ok := NormalizeCode("  ab2c9k  ")
	assert.True(t, ok)
	assert.Equal(t, "AB2C9K", code)

	code, ok = NormalizeCode("XYZ234")
	assert.True(t, ok)
	assert.Equal(t, "XYZ234", code)
}

func TestNormalizeCode_Rechazos(t *testing.T) {
	for _, input := range []string{"", "   ", "ab", "X2Z"} {
		_, ok := NormalizeCode(input)
		assert.False(t, ok, "entrada: %q", input)
	}
}

func TestRandomCode_LongitudYAlfabeto(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := randomCode()
		require.NoError(t, err)
		assert.Len(t, code, accessCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(accessCodeAlphabet, r), "carácter fuera del alfabeto: %c", r)
		}
		seen[code] = true
	}
	// Con 31^6 combinaciones, 50 códigos seguidos no deberían colisionar.
	assert.Greater(t, len(seen), 45)
}

func TestRandomCode_SinCaracteresAmbiguos(t *testing.T) {
	for _, ambiguous := range "ILO01" {
		assert.False(t, strings.ContainsRune(accessCodeAlphabet, ambiguous), "el alfabeto no debe incluir %c", ambiguous)
	}
}

func TestInvalidResult(t *testing.T) {
	result := invalidResult("Código de acceso expirado")
	assert.False(t, result.Valid)
	assert.Equal(t, "Código de acceso expirado", result.Message)
	assert.Empty(t, result.Token)
	assert.Nil(t, result.Student)
}
