package host

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/art/internal/domain/input"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// Ebiten is a Host driven by the ebiten game loop. It implements
// ebiten.Game: every ebiten Update fires the pending frame callback with the
// milliseconds elapsed since the host was created, and every Draw blits the
// offscreen canvas onto the screen.
type Ebiten struct {
	*Manual

	canvas *render.EbitenCanvas
	width  int
	height int
	start  time.Time

	// PollKeys reads the keyboard; OnKeys receives the result before the
	// frame callback runs.
	PollKeys func() input.Keys
	OnKeys   func(input.Keys)

	// OnFrame runs before every frame callback, after OnKeys.
	OnFrame func()

	// Fullscreen starts the window in fullscreen mode. F11 toggles it.
	Fullscreen bool

	// Err reports a fatal runtime error. Returning it from Update ends the
	// ebiten loop.
	Err func() error
}

// NewEbiten creates a host that presents the given canvas.
func NewEbiten(canvas *render.EbitenCanvas) *Ebiten {
	w, h := canvas.Size()
	return &Ebiten{
		Manual: NewManual(),
		canvas: canvas,
		width:  w,
		height: h,
		start:  time.Now(),
	}
}

// Update implements ebiten.Game.
func (e *Ebiten) Update() error {
	if e.PollKeys != nil && e.OnKeys != nil {
		e.OnKeys(e.PollKeys())
	}
	if e.OnFrame != nil {
		e.OnFrame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	e.Step(float64(time.Since(e.start).Microseconds()) / 1000)

	if e.Err != nil {
		if err := e.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (e *Ebiten) Draw(screen *ebiten.Image) {
	screen.DrawImage(e.canvas.Image(), nil)
}

// Layout implements ebiten.Game.
func (e *Ebiten) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

// Run opens the window and blocks until it is closed or Err reports an
// error. Update runs once per display frame, like a browser's animation
// frame callback.
func (e *Ebiten) Run(title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(e.width*scale, e.height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetFullscreen(e.Fullscreen)

	return ebiten.RunGame(e)
}
