// Package memory хранит данные в памяти процесса: каталог при catalog.store=memory и тестовые стенды.
package memory

import (
	"sync"

	"github.com/example/restorun-backoffice/internal/domain"
)

type table[T any] struct {
	mu    sync.RWMutex
	store map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{store: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.store[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return v, nil
}

func (t *table[T]) set(id string, v T) {
	t.mu.Lock()
	t.store[id] = v
	t.mu.Unlock()
}

func (t *table[T]) insert(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.store[id]; ok {
		return domain.ErrConflict
	}
	t.store[id] = v
	return nil
}

func (t *table[T]) replace(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.store[id]; !ok {
		return domain.ErrNotFound
	}
	t.store[id] = v
	return nil
}

func (t *table[T]) remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.store, id)
	return nil
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.store))
	for _, v := range t.store {
		out = append(out, v)
	}
	return out
}
