// Package playing provides the play scene: a player walking around a tile
// stage with polygon obstacles and animated decorations.
package playing

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/art/internal/application/replay"
	"github.com/younwookim/art/internal/application/scene"
	"github.com/younwookim/art/internal/application/system"
	"github.com/younwookim/art/internal/domain/collision"
	"github.com/younwookim/art/internal/domain/entity"
	"github.com/younwookim/art/internal/domain/input"
	"github.com/younwookim/art/internal/infrastructure/config"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorObstacle    = color.RGBA{131, 118, 156, 255}
	colorObstacleHit = color.RGBA{255, 0, 77, 255}
)

// Options configures the play scene.
type Options struct {
	Loader *config.Loader
	Stage  string
	Player config.PlayerConfig

	// Recorder, if set, receives the keys of every logical frame.
	Recorder *replay.Recorder
	// Replayer, if set, replaces the runtime's keys with recorded ones.
	Replayer *replay.Replayer
}

// Playing is the play scene
type Playing struct {
	scene.Base

	opts Options

	stage      *entity.Stage
	background color.RGBA
	objects    *entity.Registry
	obstacles  []*entity.Obstacle
	player     entity.Object
	body       *entity.Body
	sprite     *entity.Sprite
	pickups    map[entity.ObjectID]bool

	input    *system.InputSystem
	movement *system.MovementSystem

	frames    int
	collected int
}

// New creates a play scene. Nothing is loaded until Init. A replay names
// the stage it was recorded on, which wins over opts.Stage.
func New(opts Options) *Playing {
	if opts.Replayer != nil && opts.Replayer.Data().Stage != "" {
		opts.Stage = opts.Replayer.Data().Stage
	}
	speed := float64(opts.Player.Speed)
	if speed <= 0 {
		speed = 1
	}
	return &Playing{
		opts:  opts,
		input: system.NewInputSystem(speed),
	}
}

// Init loads the stage and its sprite sheets and builds the objects.
func (p *Playing) Init(ctx context.Context) error {
	stageCfg, err := p.opts.Loader.LoadStage(p.opts.Stage)
	if err != nil {
		return err
	}

	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return err
	}
	if stage.IsSolidAt(stage.SpawnX, stage.SpawnY) {
		return fmt.Errorf("stage %s: player spawn (%d, %d) is inside a wall", p.opts.Stage, stage.SpawnX, stage.SpawnY)
	}

	background := colorBG
	if stageCfg.Background != "" {
		background, err = system.ParseColor(stageCfg.Background)
		if err != nil {
			return fmt.Errorf("stage %s: background: %w", p.opts.Stage, err)
		}
	}

	sheets, err := p.loadSprites(ctx, stageCfg)
	if err != nil {
		return err
	}

	var ids entity.IDs
	objects := entity.NewRegistry()
	movement := system.NewMovementSystem(nil)

	for _, b := range stage.Blocks(&ids) {
		movement.AddSolid(b)
		if err := objects.Add(b); err != nil {
			return err
		}
	}

	obstacles, err := system.LoadObstacles(stageCfg, &ids, colorObstacle)
	if err != nil {
		return err
	}
	for _, o := range obstacles {
		o.HitColor = colorObstacleHit
		if err := objects.Add(o); err != nil {
			return err
		}
	}

	decorations, err := system.LoadDecorations(stageCfg, sheets, p.Runtime().Images(), &ids)
	if err != nil {
		return err
	}
	// Decorations come back in config order.
	pickups := make(map[entity.ObjectID]bool)
	for i, d := range decorations {
		if err := objects.Add(d); err != nil {
			return err
		}
		if stageCfg.Decorations[i].Pickup {
			pickups[d.ID()] = true
		}
	}

	// Player last so it is drawn on top.
	player, body, sprite, err := p.newPlayer(sheets, ids.Next(), float64(stage.SpawnX), float64(stage.SpawnY))
	if err != nil {
		return err
	}
	if err := objects.Add(player); err != nil {
		return err
	}

	p.stage = stage
	p.background = background
	p.objects = objects
	p.obstacles = obstacles
	p.player = player
	p.body = body
	p.sprite = sprite
	p.pickups = pickups
	p.movement = movement

	log.Printf("stage %s loaded: %dx%d tiles, %d objects", p.opts.Stage, stage.Width, stage.Height, objects.Len())
	return nil
}

// loadSprites loads every sprite sheet the stage's decorations and the
// player refer to.
func (p *Playing) loadSprites(ctx context.Context, cfg *config.StageConfig) (map[string]*config.SpriteSheet, error) {
	sheets := make(map[string]*config.SpriteSheet)
	var mu sync.Mutex

	names := make([]string, 0, len(cfg.Decorations)+1)
	for _, d := range cfg.Decorations {
		names = append(names, d.Sprite)
	}
	names = append(names, p.opts.Player.Sprite)

	g, ctx := errgroup.WithContext(ctx)
	seen := make(map[string]bool)
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sheet, err := p.opts.Loader.LoadSprite(name)
			if err != nil {
				return err
			}
			mu.Lock()
			sheets[name] = sheet
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sheets, nil
}

// newPlayer builds the player from its sprite sheet, its image or, with
// neither, a plain block. The sprite is nil unless a sheet is configured.
func (p *Playing) newPlayer(sheets map[string]*config.SpriteSheet, id entity.ObjectID, x, y float64) (entity.Object, *entity.Body, *entity.Sprite, error) {
	w, h := float64(p.opts.Player.Width), float64(p.opts.Player.Height)
	if w <= 0 || h <= 0 {
		ts := float64(p.Runtime().TileSize())
		w, h = ts, ts
	}
	switch {
	case p.opts.Player.Sprite != "":
		spr, err := system.NewSprite(sheets[p.opts.Player.Sprite], id, x, y, w, h)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("player: %w", err)
		}
		spr.Play("idle")
		return spr, &spr.Body, spr, nil
	case p.opts.Player.Image != "":
		img := entity.NewStaticImage(id, p.opts.Player.Image, x, y, w, h)
		return img, &img.Body, nil, nil
	default:
		blk := entity.NewBlock(id, x, y, w, h, colorPlayer)
		return blk, &blk.Body, nil, nil
	}
}

// Update advances the scene by one logical frame
func (p *Playing) Update() error {
	rt := p.Runtime()
	keys := p.keys(rt.Keys())

	if p.opts.Recorder != nil {
		p.opts.Recorder.RecordFrame(keys)
	}

	toggle := false
	var dx, dy float64
	for _, intent := range p.input.Intents(p.player.ID(), keys) {
		switch it := intent.(type) {
		case system.MoveIntent:
			p.movement.Apply(p.body, it)
			dx, dy = it.DX, it.DY
		case system.ToggleIntent:
			toggle = true
		}
	}
	p.animatePlayer(dx, dy)

	p.checkObstacles()
	p.collectPickups()
	p.objects.Update(rt.Now())
	p.frames++

	if toggle {
		rt.Pause()
	}
	return nil
}

// keys returns the keys for this frame, taken from the replay while one
// is running.
func (p *Playing) keys(live input.Keys) input.Keys {
	if p.opts.Replayer == nil {
		return live
	}
	r := p.opts.Replayer
	if r.Done() {
		return input.Keys{}
	}
	k, _ := r.Next()
	if r.Done() {
		log.Printf("replay finished after %d frames", r.TotalFrames())
	}
	return k
}

// animatePlayer turns the player sprite toward its movement and picks the
// walk or idle animation.
func (p *Playing) animatePlayer(dx, dy float64) {
	if p.sprite == nil {
		return
	}
	p.sprite.Face(dx, dy)
	if dx != 0 || dy != 0 {
		p.sprite.PlayFacing("walk")
	} else {
		p.sprite.PlayFacing("idle")
	}
}

// collectPickups removes every pickup the player touches.
func (p *Playing) collectPickups() {
	if len(p.pickups) == 0 {
		return
	}
	var hits []entity.ObjectID
	p.objects.Each(func(o entity.Object) bool {
		if !p.pickups[o.ID()] {
			return true
		}
		if _, hit := collision.Detect(p.body, o); hit {
			hits = append(hits, o.ID())
		}
		return true
	})
	for _, id := range hits {
		p.objects.Remove(id)
		delete(p.pickups, id)
		p.collected++
		log.Printf("pickup %d collected (%d total)", id, p.collected)
	}
}

// checkObstacles flags every obstacle the player overlaps.
func (p *Playing) checkObstacles() {
	b := p.body.Box()
	shape := collision.BoxToPolygon(b.X, b.Y, b.Width, b.Height)
	for _, o := range p.obstacles {
		o.Hit = collision.ConvexPolygonsOverlap(shape, o.Polygon())
	}
}

// Draw renders the stage with the camera centered on the player
func (p *Playing) Draw(surface render.Surface) error {
	camX, camY := p.camera()
	surface.SetOffset(-camX, -camY)

	ts := float64(p.stage.TileSize)
	surface.FillRect(0, 0, float64(p.stage.Width)*ts, float64(p.stage.Height)*ts, p.background)

	return p.objects.Draw(surface, p.Runtime().Images())
}

// camera returns the top-left corner of the view, clamped to the stage.
func (p *Playing) camera() (float64, float64) {
	w, h := p.Runtime().Size()
	ts := p.stage.TileSize
	b := p.body.Box()

	camX := b.X + b.Width/2 - float64(w)/2
	camY := b.Y + b.Height/2 - float64(h)/2

	maxCamX := float64(p.stage.Width*ts - w)
	maxCamY := float64(p.stage.Height*ts - h)
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return float64(int(camX)), float64(int(camY))
}

// Start is called when the scene becomes active
func (p *Playing) Start() {
	// A Space still held from resuming is not a new press.
	p.input.Reset(p.Runtime().Keys())
	log.Printf("playing (frame %d)", p.frames)
}

// Stop is called when the scene stops being active
func (p *Playing) Stop() {
	if p.opts.Recorder != nil {
		log.Printf("paused, %d frames recorded", p.opts.Recorder.FrameCount())
	}
}

// Player returns the player's body, or nil before Init.
func (p *Playing) Player() *entity.Body {
	return p.body
}

// Obstacles returns the stage's polygon obstacles.
func (p *Playing) Obstacles() []*entity.Obstacle {
	return p.obstacles
}

// Objects returns every object of the scene in draw order.
func (p *Playing) Objects() *entity.Registry {
	return p.objects
}

// Collected returns the number of pickups the player has collected.
func (p *Playing) Collected() int {
	return p.collected
}

// Frames returns the number of logical frames played.
func (p *Playing) Frames() int {
	return p.frames
}
