package utility

import (
	"sync"
	"time"
)

// cacheItem guarda un valor con su instante de expiración
type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// Cache es un caché en memoria con TTL por entrada, protegido por
// sync.RWMutex. El reloj es inyectable para controlar la expiración en
// tests.
type Cache struct {
	items    map[string]cacheItem
	mu       sync.RWMutex
	ttl      time.Duration
	cleanup  time.Duration
	now      func() time.Time
	stopChan chan struct{}
}

// NewCache crea un caché con el TTL dado y arranca el goroutine de
// limpieza que elimina las entradas vencidas cada cleanupInterval.
func NewCache(ttl time.Duration, cleanupInterval time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheItem),
		ttl:      ttl,
		cleanup:  cleanupInterval,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	go cache.cleanupLoop()

	return cache
}

// NewCacheWithClock crea un caché sin goroutine de limpieza y con un
// reloj inyectado. Pensado para tests.
func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		items:    make(map[string]cacheItem),
		ttl:      ttl,
		now:      now,
		stopChan: make(chan struct{}),
	}
}

// Set guarda un valor con el TTL del caché
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Get obtiene un valor; retorna false si no existe o ya venció
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists {
		return nil, false
	}
	if c.now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

// Delete elimina una entrada del caché
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear elimina todas las entradas del caché
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheItem)
}

// Len retorna la cantidad de entradas (incluye las vencidas aún no limpiadas)
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// cleanupLoop elimina periódicamente las entradas vencidas
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := c.now()
			for key, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}

// Stop detiene el goroutine de limpieza
func (c *Cache) Stop() {
	close(c.stopChan)
}
