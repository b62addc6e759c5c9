package worker

import (
	"context"
)

// Worker - фоновая задача процесса
type Worker interface {
	// Start блокируется до Stop или отмены контекста
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
