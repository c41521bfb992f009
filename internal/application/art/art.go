// Package art provides the runtime that drives a play and a pause scene
// with a fixed-timestep frame loop.
package art

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/younwookim/art/internal/application/scene"
	"github.com/younwookim/art/internal/application/state"
	"github.com/younwookim/art/internal/domain/input"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/host"
	"github.com/younwookim/art/internal/infrastructure/render"
)

const (
	DefaultFrameRate = 60
	DefaultCanvas    = "#art-canvas"
	DefaultTileSize  = 16
)

var colorGrid = color.RGBA{255, 255, 255, 255}

// Config holds the runtime settings. Zero values fall back to the defaults.
type Config struct {
	Width       int
	Height      int
	TileSize    int
	FrameRate   int
	Canvas      string
	DisplayGrid bool
}

// slot is one of the two scenes with its init bookkeeping.
type slot struct {
	name    string
	scene   scene.Scene
	pending chan error // non-nil while Init runs
	failed  error
}

// Art owns a play and a pause scene and drives whichever is active.
//
// All methods must be called from the goroutine that runs the frame
// callbacks. The only other goroutine is a scene's Init.
type Art struct {
	cfg       Config
	play      *slot
	pause     *slot
	isPlaying bool

	// Accumulator bookkeeping in milliseconds.
	elapsedAcc  float64
	elapsedPrev float64
	frameRate   float64

	surface render.Surface
	width   int
	height  int

	host       host.Host
	surfaces   render.Provider
	images     assets.ImageStore
	audio      assets.AudioStore
	soundtrack string
	music      *assets.Player
	services   map[string]any
	logger     *log.Logger
	clock      func() time.Time

	keys input.Keys
	now  float64

	started   bool
	closed    bool
	startTime time.Time
	frameID   host.FrameID
	ctx       context.Context
	cancel    context.CancelFunc
	err       error
}

var _ scene.Runtime = (*Art)(nil)

// Option configures an Art.
type Option func(*Art)

// WithHost sets the per-frame callback mechanism. Without a host, Tick has
// to be called by hand.
func WithHost(h host.Host) Option {
	return func(a *Art) { a.host = h }
}

// WithSurfaces sets the provider the canvas selector is resolved against.
func WithSurfaces(p render.Provider) Option {
	return func(a *Art) { a.surfaces = p }
}

// WithImages sets the image store scenes draw from.
func WithImages(s assets.ImageStore) Option {
	return func(a *Art) { a.images = s }
}

// WithAudio sets the audio store scenes play from.
func WithAudio(s assets.AudioStore) Option {
	return func(a *Art) { a.audio = s }
}

// WithSoundtrack names a sound from the audio store that plays while the
// play scene is active.
func WithSoundtrack(name string) Option {
	return func(a *Art) { a.soundtrack = name }
}

// WithServices registers custom services scenes can look up by name.
func WithServices(services map[string]any) Option {
	return func(a *Art) { a.services = services }
}

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(a *Art) { a.logger = l }
}

// WithClock sets the wall clock used for diagnostics.
func WithClock(clock func() time.Time) Option {
	return func(a *Art) { a.clock = clock }
}

// New creates a runtime that starts in pause mode. Nothing happens until
// Start is called.
func New(cfg Config, play, pause scene.Scene, opts ...Option) *Art {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	if cfg.Canvas == "" {
		cfg.Canvas = DefaultCanvas
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultTileSize
	}

	a := &Art{
		cfg:       cfg,
		play:      &slot{name: "play", scene: play},
		pause:     &slot{name: "pause", scene: pause},
		frameRate: float64(cfg.FrameRate),
		width:     cfg.Width,
		height:    cfg.Height,
		logger:    log.Default(),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start acquires the drawing surface, attaches both scenes and registers
// the first frame callback. It can only be called once.
func (a *Art) Start(ctx context.Context) error {
	if a.started {
		return ErrAlreadyStarted
	}

	surface, err := render.Open(a.surfaces, a.cfg.Canvas)
	if err != nil {
		return fmt.Errorf("failed to acquire canvas: %w", err)
	}

	if a.soundtrack != "" && a.audio != nil {
		snd, err := a.audio.Get(a.soundtrack)
		if err != nil {
			return fmt.Errorf("failed to load soundtrack: %w", err)
		}
		a.music = assets.NewPlayer(snd)
	}

	a.surface = surface
	if a.width == 0 || a.height == 0 {
		a.width, a.height = surface.Size()
	}

	a.play.scene.Attach(a)
	a.pause.scene.Attach(a)

	a.ctx, a.cancel = context.WithCancel(ctx)
	a.startTime = a.clock()
	a.started = true
	if a.music != nil && a.isPlaying {
		a.music.Switch(true)
	}

	if a.host != nil {
		a.frameID = a.host.RequestFrame(a.frame)
	}

	a.logger.Printf("art started: %dx%d canvas %s at %d fps", a.width, a.height, a.cfg.Canvas, a.cfg.FrameRate)
	return nil
}

// Close unregisters the pending frame callback and cancels scene inits in
// flight. The runtime cannot be restarted.
func (a *Art) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.host != nil && a.frameID != 0 {
		a.host.CancelFrame(a.frameID)
		a.frameID = 0
	}
	if a.cancel != nil {
		a.cancel()
	}
}

// Err returns the error that halted the frame loop, if any.
func (a *Art) Err() error {
	return a.err
}

// frame is the perpetual frame callback.
func (a *Art) frame(ts float64) {
	a.frameID = 0
	if a.closed {
		return
	}

	if err := a.Tick(ts); err != nil {
		var stepErr *StepError
		if !errors.As(err, &stepErr) || stepErr.Scene == a.pause.name {
			// Nothing left to fall back to.
			a.err = err
			a.logger.Printf("art halted: %v", err)
			return
		}
	}

	a.frameID = a.host.RequestFrame(a.frame)
}

// budget returns the duration of one logical frame in milliseconds.
func (a *Art) budget() float64 {
	return 1000 / a.frameRate
}

// Tick processes one animation frame with the given timestamp in
// milliseconds. At most one logical update+draw runs per call; when the
// loop falls far behind, the backlog is dropped rather than caught up.
func (a *Art) Tick(elapsed float64) error {
	if !a.started {
		return ErrNotStarted
	}

	a.now = elapsed
	a.elapsedAcc += elapsed - a.elapsedPrev
	defer func() { a.elapsedPrev = elapsed }()

	if a.elapsedAcc < a.budget() {
		return nil
	}

	active := a.active()
	ready, err := a.ensureInit(active)
	if err != nil {
		return err
	}
	if !ready {
		return nil
	}

	return a.step(active)
}

// step runs one logical update+draw of s.
func (a *Art) step(s *slot) error {
	ox, oy := a.surface.Offset()
	a.surface.ClearRect(-ox, -oy, float64(a.width), float64(a.height))

	err := a.run(s)
	if err == nil && a.cfg.DisplayGrid && s == a.play {
		a.drawGrid()
	}

	// Reset even on failure so the next frame is timed as usual.
	a.elapsedAcc = 0

	if err != nil {
		a.logger.Printf("time since start %s", a.sinceStart())
		a.logger.Printf("%s scene failed: %v", s.name, err)
		if s == a.play {
			a.SetActive(false)
		}
		return &StepError{Scene: s.name, Err: err}
	}
	return nil
}

// run calls Update then Draw on s. A panic in either is returned as an
// error.
func (a *Art) run(s *slot) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s scene panicked: %v", s.name, r)
		}
	}()
	if err := s.scene.Update(); err != nil {
		return err
	}
	return s.scene.Draw(a.surface)
}

// ensureInit reports whether s is ready to run, starting its Init on the
// first call.
func (a *Art) ensureInit(s *slot) (bool, error) {
	if s.scene.IsInitialized() {
		return true, nil
	}
	if s.failed != nil {
		return false, s.failed
	}

	if s.pending == nil {
		ch := make(chan error, 1)
		s.pending = ch
		go func() { ch <- runInit(a.ctx, s.scene) }()
		a.logger.Printf("initializing %s scene", s.name)
	}

	select {
	case err := <-s.pending:
		s.pending = nil
		if err != nil {
			s.failed = &InitError{Scene: s.name, Err: err}
			return false, s.failed
		}
		s.scene.MarkInitialized()
		a.logger.Printf("%s scene initialized", s.name)
		return true, nil
	default:
		return false, nil
	}
}

func runInit(ctx context.Context, s scene.Scene) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("init panicked: %v", r)
		}
	}()
	return s.Init(ctx)
}

func (a *Art) drawGrid() {
	ts := a.cfg.TileSize
	rows := a.height / ts
	cols := a.width / ts
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a.surface.StrokeRect(float64(c*ts), float64(r*ts), float64(ts), float64(ts), colorGrid)
		}
	}
}

func (a *Art) sinceStart() string {
	d := a.clock().Sub(a.startTime)
	if d < 0 {
		d = -d
	}
	return fmt.Sprintf("%d:%d:%d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

func (a *Art) active() *slot {
	return a.slot(a.isPlaying)
}

func (a *Art) slot(playing bool) *slot {
	if playing {
		return a.play
	}
	return a.pause
}

// SetActive switches between the play (true) and pause (false) scene. The
// outgoing scene is stopped before the incoming one starts; the playing
// flag changes last. Before Start only the flag is recorded; no scene is
// started or stopped.
func (a *Art) SetActive(playing bool) {
	if playing == a.isPlaying {
		return
	}
	if !a.started {
		a.isPlaying = playing
		return
	}

	a.slot(a.isPlaying).scene.Stop()
	a.slot(playing).scene.Start()
	if a.music != nil {
		a.music.Switch(playing)
	}
	a.isPlaying = playing
}

// Play activates the play scene.
func (a *Art) Play() {
	a.SetActive(true)
}

// Pause activates the pause scene.
func (a *Art) Pause() {
	a.SetActive(false)
}

// Toggle switches to the other scene.
func (a *Art) Toggle() {
	a.SetActive(!a.isPlaying)
}

// IsPlaying reports whether the play scene is active.
func (a *Art) IsPlaying() bool {
	return a.isPlaying
}

// State returns the lifecycle state of the play (true) or pause (false)
// scene.
func (a *Art) State(playing bool) state.State {
	s := a.slot(playing)
	switch {
	case s.failed != nil:
		return state.Failed
	case s.scene.IsInitialized() && playing == a.isPlaying:
		return state.Running
	case s.scene.IsInitialized():
		return state.Stopped
	case s.pending != nil:
		return state.Initializing
	default:
		return state.Inactive
	}
}

// Images implements scene.Runtime.
func (a *Art) Images() assets.ImageStore {
	return a.images
}

// Audio implements scene.Runtime.
func (a *Art) Audio() assets.AudioStore {
	return a.audio
}

// Music returns the soundtrack player, or nil without a soundtrack.
func (a *Art) Music() *assets.Player {
	return a.music
}

// AdjustVolume changes the soundtrack volume by delta. It does nothing
// without a soundtrack.
func (a *Art) AdjustVolume(delta float64) {
	if a.music == nil || delta == 0 {
		return
	}
	a.music.OnVolume(a.music.Volume() + delta)
	a.logger.Printf("volume %.1f", a.music.Volume())
}

// Keys implements scene.Runtime.
func (a *Art) Keys() input.Keys {
	return a.keys
}

// SetKeys records the current key state. Hosts call it before each frame.
func (a *Art) SetKeys(k input.Keys) {
	a.keys = k
}

// Size implements scene.Runtime.
func (a *Art) Size() (w, h int) {
	return a.width, a.height
}

// TileSize implements scene.Runtime.
func (a *Art) TileSize() int {
	return a.cfg.TileSize
}

// Now implements scene.Runtime.
func (a *Art) Now() float64 {
	return a.now
}

// Service implements scene.Runtime.
func (a *Art) Service(name string) (any, bool) {
	s, ok := a.services[name]
	return s, ok
}

// Surface returns the drawing surface acquired by Start.
func (a *Art) Surface() render.Surface {
	return a.surface
}
