package scene

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/art/internal/domain/input"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

type minimal struct {
	Base
}

func (m *minimal) Init(context.Context) error  { return nil }
func (m *minimal) Draw(s render.Surface) error { return nil }

var _ Scene = (*minimal)(nil)

type stubRuntime struct{ id int }

func (stubRuntime) Images() assets.ImageStore  { return nil }
func (stubRuntime) Audio() assets.AudioStore   { return nil }
func (stubRuntime) Keys() input.Keys           { return input.Keys{} }
func (stubRuntime) Size() (int, int)           { return 0, 0 }
func (stubRuntime) TileSize() int              { return 16 }
func (stubRuntime) Now() float64               { return 0 }
func (stubRuntime) Service(string) (any, bool) { return nil, false }
func (stubRuntime) Play()                      {}
func (stubRuntime) Pause()                     {}
func (stubRuntime) IsPlaying() bool            { return false }

func TestBase_Defaults(t *testing.T) {
	m := &minimal{}

	assert.Nil(t, m.Runtime())
	assert.False(t, m.IsInitialized())
	assert.NoError(t, m.Update())
	assert.NotPanics(t, func() {
		m.Start()
		m.Stop()
	})
}

func TestBase_MarkInitialized(t *testing.T) {
	m := &minimal{}
	m.MarkInitialized()
	assert.True(t, m.IsInitialized())
}

func TestBase_Attach(t *testing.T) {
	m := &minimal{}
	rt := &stubRuntime{}

	m.Attach(rt)
	assert.Same(t, rt, m.Runtime())

	assert.NotPanics(t, func() { m.Attach(rt) }, "re-attaching the same runtime is fine")
	assert.Panics(t, func() { m.Attach(&stubRuntime{id: 1}) })
}
