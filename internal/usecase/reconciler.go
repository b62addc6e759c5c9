package usecase

import (
	"context"
	"time"

	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/pkg/errors"
	"github.com/porchfest-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// Clock - источник текущего времени (подменяется в тестах)
type Clock func() time.Time

// Reconciler держит согласованными три представления: запись в хранилище,
// состояние в памяти и feature-state рендерера.
// Не потокобезопасен: вызовы одной сессии сериализует SessionManager.
type Reconciler struct {
	dataset   *domain.Dataset
	store     StateStore
	surface   domain.RenderSurface
	clock     Clock
	focusZoom float64
	logger    *zap.Logger

	state    domain.InteractionState
	filter   domain.FilterSelection
	selected domain.PointID
	hasSel   bool
	result   dto.FilterResult
}

// NewReconciler загружает историю из хранилища, применяет пустой фильтр
// и синхронизирует рендерер
func NewReconciler(
	ctx context.Context,
	dataset *domain.Dataset,
	store StateStore,
	surface domain.RenderSurface,
	clock Clock,
	focusZoom float64,
	logger *zap.Logger,
) *Reconciler {
	if clock == nil {
		clock = time.Now
	}

	r := &Reconciler{
		dataset:   dataset,
		store:     store,
		surface:   surface,
		clock:     clock,
		focusZoom: focusZoom,
		logger:    logger,
		state:     store.Load(ctx),
	}

	r.ApplyFilter(domain.FilterSelection{})
	r.Sync()

	return r
}

// Select - клик по точке: отметка visited, синхронизация, перелет камеры и карточка.
// Повторный выбор не меняет visited, но снова открывает карточку и центрирует карту.
func (r *Reconciler) Select(ctx context.Context, id domain.PointID) (domain.DetailView, error) {
	point, ok := r.dataset.Get(id)
	if !ok {
		return domain.DetailView{}, errors.ErrPointNotFound.WithDetails(map[string]interface{}{
			"id": id,
		})
	}

	if !r.state.Visited.Has(id) {
		r.state.Visited.Add(id)
		r.persist(ctx, r.state.Visited.Clone(), nil)
	}

	r.selected = id
	r.hasSel = true

	r.Sync()
	r.surface.FlyTo(point.Coordinates, r.focusZoom)

	return r.detail(point), nil
}

// ToggleBookmark переключает закладку выбранной точки.
// Все представления и карточка обновляются до возврата.
func (r *Reconciler) ToggleBookmark(ctx context.Context) (domain.DetailView, error) {
	if !r.hasSel {
		return domain.DetailView{}, errors.ErrNoPointSelected
	}

	point, ok := r.dataset.Get(r.selected)
	if !ok {
		r.hasSel = false
		return domain.DetailView{}, errors.ErrNoPointSelected
	}

	if r.state.Bookmarked.Has(point.ID) {
		r.state.Bookmarked.Remove(point.ID)
	} else {
		r.state.Bookmarked.Add(point.ID)
	}
	r.persist(ctx, nil, r.state.Bookmarked.Clone())

	r.Sync()
	if r.filter.OnlyBookmarked {
		r.ApplyFilter(r.filter)
	}

	return r.detail(point), nil
}

// ClearVisited очищает историю посещений и возвращает число сброшенных точек
func (r *Reconciler) ClearVisited(ctx context.Context) int {
	cleared := r.state.Visited.Len()

	r.state.Visited = domain.NewIDSet()
	r.persist(ctx, domain.NewIDSet(), nil)
	r.Sync()

	return cleared
}

// CloseDetail закрывает карточку, состояние не меняется
func (r *Reconciler) CloseDetail() {
	r.hasSel = false
}

// ApplyFilter пересобирает предикат и выражение на текущий момент и отдает выражение рендереру
func (r *Reconciler) ApplyFilter(sel domain.FilterSelection) dto.FilterResult {
	sel = sel.Normalized()
	now := r.clock()

	pred := BuildPredicate(sel, r.state.Bookmarked, now)
	expr := BuildExpression(sel, r.state.Bookmarked, now)
	r.surface.SetFilter(expr)

	r.filter = sel
	r.result = dto.FilterResult{
		Filter:      sel,
		Expression:  expr,
		VisibleIDs:  VisibleIDs(r.dataset, pred),
		EvaluatedAt: now.UnixMilli(),
	}
	return r.result
}

// Refresh пересчитывает текущий фильтр (новое "сейчас" для окна выступлений)
func (r *Reconciler) Refresh() dto.FilterResult {
	return r.ApplyFilter(r.filter)
}

// Sync сравнивает желаемое состояние каждой точки с рендерером
// и обновляет только отличающиеся. Возвращает число обновлений.
func (r *Reconciler) Sync() int {
	changed := 0
	r.dataset.Each(func(p *domain.PointRecord) {
		desired := r.state.VisualState(p.ID)
		if r.surface.FeatureState(p.ID) == desired {
			return
		}
		r.surface.SetFeatureState(p.ID, desired)
		changed++
	})

	if changed > 0 {
		r.logger.Debug("Surface synced", zap.Int("changed", changed))
	}
	return changed
}

// State - копия истории пользователя
func (r *Reconciler) State() domain.InteractionState {
	return r.state.Clone()
}

// Selected - открытая карточка, если есть
func (r *Reconciler) Selected() (domain.DetailView, bool) {
	if !r.hasSel {
		return domain.DetailView{}, false
	}
	point, ok := r.dataset.Get(r.selected)
	if !ok {
		return domain.DetailView{}, false
	}
	return r.detail(point), true
}

// Filter - текущий выбор фильтров
func (r *Reconciler) Filter() domain.FilterSelection {
	return r.filter
}

// LastResult - результат последнего применения фильтра
func (r *Reconciler) LastResult() dto.FilterResult {
	return r.result
}

// VisualStates - желаемые флаги точек, у которых есть хотя бы один флаг
func (r *Reconciler) VisualStates() map[domain.PointID]domain.VisualState {
	out := make(map[domain.PointID]domain.VisualState)
	r.dataset.Each(func(p *domain.PointRecord) {
		if vs := r.state.VisualState(p.ID); vs != (domain.VisualState{}) {
			out[p.ID] = vs
		}
	})
	return out
}

func (r *Reconciler) detail(point domain.PointRecord) domain.DetailView {
	vs := r.state.VisualState(point.ID)
	return domain.DetailView{
		Point:      point,
		Visited:    vs.Visited,
		Bookmarked: vs.Bookmarked,
		Color:      vs.Color(),
	}
}

// persist - запись в хранилище по принципу best-effort: ошибка только логируется
func (r *Reconciler) persist(ctx context.Context, visited, bookmarked domain.IDSet) {
	if err := r.store.Save(ctx, visited, bookmarked); err != nil {
		r.logger.Warn("Failed to persist interaction state", zap.Error(err))
	}
}
