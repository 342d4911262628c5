package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory — адаптер хранилища в памяти процесса. Используется в тестах
// вместо PostgreSQL, контракт тот же.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get читает значение по ключу и распаковывает его в result.
func (m *Memory) Get(_ context.Context, key string, result any) (bool, error) {
	const op = "storage.Memory.Get"

	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сериализует значение и сохраняет его под ключом.
func (m *Memory) Set(_ context.Context, key string, value any) error {
	const op = "storage.Memory.Set"

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

// SetRaw кладёт под ключ произвольные байты в обход сериализации.
// Нужен тестам, проверяющим поведение на повреждённых данных.
func (m *Memory) SetRaw(key string, raw []byte) {
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}
