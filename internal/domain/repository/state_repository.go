package repository

import (
	"context"
)

// StateRepository - key/value хранилище записей состояния пользователя
type StateRepository interface {
	// Get получает запись по ключу. Отсутствие записи: nil, nil
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет запись целиком (последняя запись выигрывает)
	Set(ctx context.Context, key string, value []byte) error

	// Delete удаляет запись
	Delete(ctx context.Context, key string) error
}
