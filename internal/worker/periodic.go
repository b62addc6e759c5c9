package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task - один проход периодического воркера
type Task func(ctx context.Context)

// PeriodicWorker выполняет Task раз в interval
type PeriodicWorker struct {
	name     string
	interval time.Duration
	task     Task
	logger   *zap.Logger

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewPeriodicWorker создает PeriodicWorker
func NewPeriodicWorker(name string, interval time.Duration, task Task, logger *zap.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Name возвращает имя воркера
func (w *PeriodicWorker) Name() string {
	return w.name
}

// Start запускает цикл. Первый проход через interval после старта.
func (w *PeriodicWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopChan:
			return nil
		case <-ticker.C:
			w.runTask(ctx)
		}
	}
}

func (w *PeriodicWorker) runTask(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Worker task panicked",
				zap.String("name", w.name),
				zap.Any("panic", r),
			)
		}
	}()
	w.task(ctx)
}

// Stop останавливает воркер. Повторный вызов ничего не делает.
func (w *PeriodicWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.logger.Info("Stopping worker", zap.String("name", w.name))
	close(w.stopChan)
	w.stopped = true

	return nil
}

// IsStopped проверяет, остановлен ли воркер
func (w *PeriodicWorker) IsStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}
