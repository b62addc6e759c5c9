package memory

import (
	"context"
	"sync"

	"github.com/porchfest-map/internal/domain/repository"
)

// StateRepository - хранилище состояния в памяти процесса.
// Данные теряются при перезапуске.
type StateRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

var _ repository.StateRepository = (*StateRepository)(nil)

func NewStateRepository() *StateRepository {
	return &StateRepository{records: make(map[string][]byte)}
}

func (r *StateRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.records[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (r *StateRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[key] = append([]byte(nil), value...)
	return nil
}

func (r *StateRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, key)
	return nil
}

// Len - число сохраненных записей
func (r *StateRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
