package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	now := time.Now()
	cache := NewCacheWithClock(5*time.Minute, func() time.Time { return now })

	cache.Set("clave", "valor")

	value, found := cache.Get("clave")
	assert.True(t, found)
	assert.Equal(t, "valor", value)

	_, found = cache.Get("inexistente")
	assert.False(t, found)
}

func TestCache_Expiracion(t *testing.T) {
	now := time.Now()
	cache := NewCacheWithClock(5*time.Minute, func() time.Time { return now })

	cache.Set("clave", 42)

	// Justo antes del TTL la entrada sigue viva.
	now = now.Add(5 * time.Minute)
	_, found := cache.Get("clave")
	assert.True(t, found)

	// Pasado el TTL la entrada vence.
	now = now.Add(time.Second)
	_, found = cache.Get("clave")
	assert.False(t, found)
}

func TestCache_DeleteYClear(t *testing.T) {
	cache := NewCacheWithClock(time.Minute, time.Now)

	cache.Set("a", 1)
	cache.Set("b", 2)
	assert.Equal(t, 2, cache.Len())

	cache.Delete("a")
	_, found := cache.Get("a")
	assert.False(t, found)
	assert.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Sobrescritura(t *testing.T) {
	cache := NewCacheWithClock(time.Minute, time.Now)

	cache.Set("clave", "primero")
	cache.Set("clave", "segundo")

	value, found := cache.Get("clave")
	assert.True(t, found)
	assert.Equal(t, "segundo", value)
	assert.Equal(t, 1, cache.Len())
}
