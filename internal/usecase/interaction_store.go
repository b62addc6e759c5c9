package usecase

import (
	"context"
	"fmt"

	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/domain/repository"
	"go.uber.org/zap"
)

// StateStore - постоянное хранилище истории пользователя.
// Load никогда не возвращает ошибку: при любой проблеме это пустые множества.
type StateStore interface {
	Load(ctx context.Context) domain.InteractionState
	Save(ctx context.Context, visited, bookmarked domain.IDSet) error
}

// InteractionStore - запись visited/bookmarked одной сессии под ключом <namespace>:<session>
type InteractionStore struct {
	repo   repository.StateRepository
	key    string
	logger *zap.Logger
}

var _ StateStore = (*InteractionStore)(nil)

// StateKey - ключ записи сессии в хранилище
func StateKey(namespace, sessionID string) string {
	return namespace + ":" + sessionID
}

// NewInteractionStore создает хранилище для одной сессии
func NewInteractionStore(
	repo repository.StateRepository,
	namespace string,
	sessionID string,
	logger *zap.Logger,
) *InteractionStore {
	key := StateKey(namespace, sessionID)
	return &InteractionStore{
		repo:   repo,
		key:    key,
		logger: logger.With(zap.String("state_key", key)),
	}
}

// Key - ключ записи
func (s *InteractionStore) Key() string {
	return s.key
}

// Load читает запись. Отсутствие, ошибка чтения или битый JSON дают пустые множества.
func (s *InteractionStore) Load(ctx context.Context) domain.InteractionState {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("Failed to read interaction record, using empty state", zap.Error(err))
		return domain.NewInteractionState()
	}
	if data == nil {
		return domain.NewInteractionState()
	}

	state, err := domain.DecodeRecord(data)
	if err != nil {
		s.logger.Warn("Discarding unreadable interaction record", zap.Error(err))
		return domain.NewInteractionState()
	}

	return state
}

// Save записывает оба множества одной записью.
// nil означает "не передано": значение берется из текущей записи (read-modify-write).
func (s *InteractionStore) Save(ctx context.Context, visited, bookmarked domain.IDSet) error {
	if visited == nil || bookmarked == nil {
		current := s.Load(ctx)
		if visited == nil {
			visited = current.Visited
		}
		if bookmarked == nil {
			bookmarked = current.Bookmarked
		}
	}

	data, err := domain.EncodeRecord(domain.InteractionState{
		Visited:    visited,
		Bookmarked: bookmarked,
	})
	if err != nil {
		return fmt.Errorf("encode interaction record: %w", err)
	}

	if err := s.repo.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write interaction record: %w", err)
	}

	s.logger.Debug("Interaction record saved",
		zap.Int("visited", visited.Len()),
		zap.Int("bookmarked", bookmarked.Len()),
	)
	return nil
}

// SaveVisited обновляет только visited
func (s *InteractionStore) SaveVisited(ctx context.Context, visited domain.IDSet) error {
	return s.Save(ctx, visited, nil)
}

// SaveBookmarked обновляет только bookmarked
func (s *InteractionStore) SaveBookmarked(ctx context.Context, bookmarked domain.IDSet) error {
	return s.Save(ctx, nil, bookmarked)
}

// Reset удаляет запись целиком: следующий Load вернет пустые множества
func (s *InteractionStore) Reset(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete interaction record: %w", err)
	}
	return nil
}
