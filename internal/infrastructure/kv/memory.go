package kv

import (
	"context"
	"sync"
)

// Memory implementación en memoria de Store, para tests y para el driver
// "memory" (estado solo del proceso, sin durabilidad).
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory construye un almacén vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get devuelve el valor de la clave o ErrNotFound.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set guarda una copia del valor bajo la clave.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}
