package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/usecase"
)

func TestCommandSurface(t *testing.T) {
	s := usecase.NewCommandSurface()

	s.SetFilter(domain.FilterExpression{"all"})
	s.SetFeatureState(7, domain.VisualState{Visited: true})
	s.FlyTo(domain.Coordinates{Lon: -71.1, Lat: 42.3}, 16)

	assert.Equal(t, domain.VisualState{Visited: true}, s.FeatureState(7))
	assert.Equal(t, domain.FilterExpression{"all"}, s.Filter())

	cmds := s.Drain()
	require.Len(t, cmds, 3)
	assert.Equal(t, domain.CommandSetFilter, cmds[0].Type)
	assert.Equal(t, domain.CommandSetFeatureState, cmds[1].Type)
	assert.Equal(t, domain.PointID(7), *cmds[1].ID)
	assert.Equal(t, domain.VisualState{Visited: true}, *cmds[1].State)
	assert.Equal(t, domain.CommandFlyTo, cmds[2].Type)
	assert.Equal(t, 16.0, cmds[2].Zoom)

	assert.Empty(t, s.Drain(), "drain empties the queue")
	assert.NotNil(t, s.Drain())
}

func TestCommandSurface_ClearingStateForgetsPoint(t *testing.T) {
	s := usecase.NewCommandSurface()
	s.SetFeatureState(1, domain.VisualState{Bookmarked: true})
	s.SetFeatureState(1, domain.VisualState{})

	assert.Equal(t, domain.VisualState{}, s.FeatureState(1))
}

func TestCommandSurface_Reset(t *testing.T) {
	s := usecase.NewCommandSurface()
	s.SetFilter(domain.FilterExpression{"all"})
	s.SetFeatureState(1, domain.VisualState{Visited: true})

	s.Reset()

	assert.Equal(t, domain.VisualState{}, s.FeatureState(1))
	assert.Nil(t, s.Filter())
	assert.Empty(t, s.Drain())
}
