package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/domain/repository"
	"go.uber.org/zap"
)

// Session - состояние одного браузера
type Session struct {
	ID string

	mu         sync.Mutex
	reconciler *Reconciler
	surface    *CommandSurface

	// lastSeen читается и пишется только под SessionManager.mu
	lastSeen time.Time
}

// Reconciler - ядро сессии. Вызывать только внутри SessionManager.Do.
func (s *Session) Reconciler() *Reconciler {
	return s.reconciler
}

// Surface - очередь команд рендерера сессии
func (s *Session) Surface() *CommandSurface {
	return s.surface
}

// Reattach - браузер открыл карту заново: рендерер пуст,
// поэтому фильтр и все флаги отправляются повторно
func (s *Session) Reattach() {
	s.surface.Reset()
	s.reconciler.Refresh()
	s.reconciler.Sync()
}

// SessionOptions - параметры сессий
type SessionOptions struct {
	Namespace   string
	IdleTimeout time.Duration
	FocusZoom   float64
}

// SessionManager держит по одному Reconciler на сессию.
// Вызовы одной сессии выполняются последовательно.
type SessionManager struct {
	dataset *domain.Dataset
	repo    repository.StateRepository
	opts    SessionOptions
	clock   Clock
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager создает менеджер сессий
func NewSessionManager(
	dataset *domain.Dataset,
	repo repository.StateRepository,
	opts SessionOptions,
	clock Clock,
	logger *zap.Logger,
) *SessionManager {
	if clock == nil {
		clock = time.Now
	}
	return &SessionManager{
		dataset:  dataset,
		repo:     repo,
		opts:     opts,
		clock:    clock,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// NewSessionID генерирует идентификатор новой сессии
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID - идентификатор выдан сервером (uuid)
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Do выполняет fn под блокировкой сессии, создавая сессию при первом обращении
func (m *SessionManager) Do(ctx context.Context, sessionID string, fn func(s *Session) error) error {
	s := m.acquire(ctx, sessionID)
	defer s.mu.Unlock()

	return fn(s)
}

// acquire возвращает заблокированную сессию, которая все еще зарегистрирована.
// Сессию могли вытеснить между get и Lock: тогда берется новая.
func (m *SessionManager) acquire(ctx context.Context, sessionID string) *Session {
	for {
		s := m.get(ctx, sessionID)
		s.mu.Lock()
		if m.touch(sessionID, s) {
			return s
		}
		s.mu.Unlock()
	}
}

// touch обновляет lastSeen, если s - текущая сессия для sessionID
func (m *SessionManager) touch(sessionID string, s *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions[sessionID] != s {
		return false
	}
	s.lastSeen = m.clock()
	return true
}

// get находит или создает сессию. lastSeen обновляется под общей блокировкой,
// чтобы Evict не выбрал только что полученную сессию.
func (m *SessionManager) get(ctx context.Context, sessionID string) *Session {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if ok {
		s.lastSeen = m.clock()
	}
	m.mu.Unlock()
	if ok {
		return s
	}

	// Загрузка из хранилища идет без общей блокировки
	surface := NewCommandSurface()
	store := NewInteractionStore(m.repo, m.opts.Namespace, sessionID, m.logger)
	created := &Session{
		ID:      sessionID,
		surface: surface,
		reconciler: NewReconciler(
			ctx,
			m.dataset,
			store,
			surface,
			m.clock,
			m.opts.FocusZoom,
			m.logger.With(zap.String("session_id", sessionID)),
		),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[sessionID]; ok {
		existing.lastSeen = m.clock()
		return existing
	}
	created.lastSeen = m.clock()
	m.sessions[sessionID] = created
	m.logger.Debug("Session opened", zap.String("session_id", sessionID))
	return created
}

// Evict удаляет сессии без активности дольше IdleTimeout.
// Запись в хранилище остается. Занятые сессии пропускаются.
func (m *SessionManager) Evict() int {
	if m.opts.IdleTimeout <= 0 {
		return 0
	}
	deadline := m.clock().Add(-m.opts.IdleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if !s.mu.TryLock() {
			continue
		}
		if s.lastSeen.Before(deadline) {
			delete(m.sessions, id)
			evicted++
		}
		s.mu.Unlock()
	}

	if evicted > 0 {
		m.logger.Info("Idle sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("active", len(m.sessions)),
		)
	}
	return evicted
}

// Len - число активных сессий
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
