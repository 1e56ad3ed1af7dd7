// Package registry implementa un registry genérico thread-safe para
// administrar instancias singleton de la aplicación (colecciones de
// MongoDB, clientes externos, etc.).
package registry

import (
	"fmt"
	"sync"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
)

// Registry es un registry genérico protegido por sync.RWMutex.
// El type parameter T permite administrar cualquier tipo de objeto.
//
// Example:
//
//	colRegistry := NewRegistry[*mongo.Collection]()
//	colRegistry.Register("users", usersCol)
//	if col, exists := colRegistry.Get("users"); exists {
//	    _ = col
//	}
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry crea y retorna un registry nuevo.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register registra un item nuevo. Si el nombre ya existe, lo sobreescribe.
//
// Returns:
//   - isNew: true si es un item nuevo, false si sobreescribió uno existente
//   - err: error si el nombre está vacío
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("el nombre no puede estar vacío: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get obtiene un item por nombre. Retorna el zero value de T si no existe.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate obtiene un item por nombre; si no existe lo crea con la
// función creator bajo el lock, de modo que solo se crea una instancia.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("el nombre no puede estar vacío: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("no se pudo crear el item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update actualiza un item de forma thread-safe con la función updater.
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item no encontrado: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("no se pudo actualizar el item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear elimina un item del registry. Si se provee cleanup, se invoca
// antes de eliminar para liberar recursos.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("el nombre no puede estar vacío: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("no se pudo limpiar el item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll elimina todos los items; cleanup (opcional) se invoca por item.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("no se pudo limpiar %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("errores durante la limpieza: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
