package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@idecap.edu.pe", NormalizeEmail("  Ana@IDECAP.edu.pe  "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "hola", TruncateString("hola", 10))
	assert.Equal(t, "hola", TruncateString("hola", 4))
	assert.Equal(t, "hol…", TruncateString("holanda", 4))
	assert.Equal(t, "", TruncateString("hola", 0))
}

func TestTruncateString_CuentaRunas(t *testing.T) {
	// El corte es por runas, no por bytes.
	assert.Equal(t, "canç…", TruncateString("canção", 5))
	assert.Equal(t, "canção", TruncateString("canção", 6))
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))
	assert.True(t, String2ObjectID("no-es-hex").IsZero())
	assert.True(t, String2ObjectID("").IsZero())
}

func TestString2ObjectIDPtr(t *testing.T) {
	id := primitive.NewObjectID()
	ptr := String2ObjectIDPtr(id.Hex())
	assert.NotNil(t, ptr)
	assert.Equal(t, id, *ptr)

	assert.Nil(t, String2ObjectIDPtr(""))
	assert.Nil(t, String2ObjectIDPtr("zzz"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains([]int{}, 1))
}
