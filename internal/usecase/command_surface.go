package usecase

import "github.com/porchfest-map/internal/domain"

// CommandSurface - рендерер на стороне сервера: хранит зеркало feature-state
// браузера и копит команды, которые браузер применит к карте
type CommandSurface struct {
	states  map[domain.PointID]domain.VisualState
	filter  domain.FilterExpression
	pending []domain.SurfaceCommand
}

var _ domain.RenderSurface = (*CommandSurface)(nil)

func NewCommandSurface() *CommandSurface {
	return &CommandSurface{
		states: make(map[domain.PointID]domain.VisualState),
	}
}

func (s *CommandSurface) SetFilter(expr domain.FilterExpression) {
	s.filter = expr
	s.pending = append(s.pending, domain.SurfaceCommand{
		Type:   domain.CommandSetFilter,
		Filter: expr,
	})
}

func (s *CommandSurface) FeatureState(id domain.PointID) domain.VisualState {
	return s.states[id]
}

func (s *CommandSurface) SetFeatureState(id domain.PointID, state domain.VisualState) {
	if state == (domain.VisualState{}) {
		delete(s.states, id)
	} else {
		s.states[id] = state
	}

	pid := id
	st := state
	s.pending = append(s.pending, domain.SurfaceCommand{
		Type:  domain.CommandSetFeatureState,
		ID:    &pid,
		State: &st,
	})
}

func (s *CommandSurface) FlyTo(center domain.Coordinates, zoom float64) {
	c := center
	s.pending = append(s.pending, domain.SurfaceCommand{
		Type:   domain.CommandFlyTo,
		Center: &c,
		Zoom:   zoom,
	})
}

// Filter - последнее выражение фильтра
func (s *CommandSurface) Filter() domain.FilterExpression {
	return s.filter
}

// Drain забирает накопленные команды
func (s *CommandSurface) Drain() []domain.SurfaceCommand {
	out := s.pending
	s.pending = nil
	if out == nil {
		out = []domain.SurfaceCommand{}
	}
	return out
}

// Reset - браузер перезагрузил карту: зеркало и очередь сбрасываются
func (s *CommandSurface) Reset() {
	s.states = make(map[domain.PointID]domain.VisualState)
	s.filter = nil
	s.pending = nil
}
