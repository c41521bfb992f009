package system

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/younwookim/art/internal/domain/collision"
	"github.com/younwookim/art/internal/domain/entity"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	mappings := make(map[rune]entity.Tile, len(cfg.TileMapping))
	for key, mapping := range cfg.TileMapping {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("stage %s: tile key %q must be a single character", cfg.ID, key)
		}

		var tileType entity.TileType
		switch mapping.Type {
		case "wall":
			tileType = entity.TileWall
		default:
			tileType = entity.TileEmpty
		}

		var clr color.RGBA
		if mapping.Color != "" {
			c, err := ParseColor(mapping.Color)
			if err != nil {
				return nil, fmt.Errorf("stage %s: tile %q: %w", cfg.ID, key, err)
			}
			clr = c
		}

		mappings[r[0]] = entity.Tile{Type: tileType, Solid: mapping.Solid, Color: clr}
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			if x >= tileWidth {
				break
			}
			tiles[y][x] = mappings[char]
			x++
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}, nil
}

// LoadObstacles creates the stage's polygon obstacles.
func LoadObstacles(cfg *config.StageConfig, ids *entity.IDs, clr color.RGBA) ([]*entity.Obstacle, error) {
	obstacles := make([]*entity.Obstacle, 0, len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		if len(o.Vertices) < 3 {
			return nil, fmt.Errorf("stage %s: obstacle %d needs at least 3 vertices", cfg.ID, i)
		}
		vs := make([]collision.Vertex, len(o.Vertices))
		for j, v := range o.Vertices {
			vs[j] = collision.Vertex{X: v.X, Y: v.Y}
		}
		obstacles = append(obstacles, entity.NewObstacle(ids.Next(), vs, clr))
	}
	return obstacles, nil
}

// LoadDecorations creates the stage's static images and animated sprites.
// Every sprite a decoration names must be in sheets.
func LoadDecorations(cfg *config.StageConfig, sheets map[string]*config.SpriteSheet, images assets.ImageStore, ids *entity.IDs) ([]entity.Object, error) {
	objects := make([]entity.Object, 0, len(cfg.Decorations))
	for i, d := range cfg.Decorations {
		x, y := float64(d.X), float64(d.Y)
		switch {
		case d.Sprite != "":
			sheet, ok := sheets[d.Sprite]
			if !ok || len(sheet.Frames) == 0 {
				return nil, fmt.Errorf("stage %s: decoration %d: unknown sprite %q", cfg.ID, i, d.Sprite)
			}
			name := sheet.Meta.Image
			if name == "" {
				name = d.Sprite
			}
			objects = append(objects, entity.NewAnimatedImage(ids.Next(), name, x, y, Frames(sheet.Frames)))
		case d.Image != "":
			img, err := images.Get(d.Image)
			if err != nil {
				return nil, fmt.Errorf("stage %s: decoration %d: %w", cfg.ID, i, err)
			}
			size := img.Bounds().Size()
			objects = append(objects, entity.NewStaticImage(ids.Next(), d.Image, x, y, float64(size.X), float64(size.Y)))
		default:
			return nil, fmt.Errorf("stage %s: decoration %d has neither image nor sprite", cfg.ID, i)
		}
	}
	return objects, nil
}

// Frames converts an Aseprite frame table into animation frames.
func Frames(list config.FrameList) []entity.Frame {
	frames := make([]entity.Frame, len(list))
	for i, f := range list {
		r := f.Frame
		frames[i] = entity.Frame{
			Src:      image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H),
			Duration: f.Duration,
		}
	}
	return frames
}

// Animation is one named frame sequence of a sprite sheet.
type Animation struct {
	Name   string
	Frames []entity.Frame
}

// Animations returns the frame tags of sheet in export order. A sheet
// without tags yields a single "default" animation over every frame.
func Animations(sheet *config.SpriteSheet) ([]Animation, error) {
	if len(sheet.Frames) == 0 {
		return nil, fmt.Errorf("sprite %s has no frames", sheet.Meta.Image)
	}
	if len(sheet.Meta.FrameTags) == 0 {
		return []Animation{{Name: "default", Frames: Frames(sheet.Frames)}}, nil
	}

	anims := make([]Animation, 0, len(sheet.Meta.FrameTags))
	for _, tag := range sheet.Meta.FrameTags {
		list, ok := sheet.Tag(tag.Name)
		if !ok {
			return nil, fmt.Errorf("sprite %s: tag %q is out of range", sheet.Meta.Image, tag.Name)
		}
		anims = append(anims, Animation{Name: tag.Name, Frames: Frames(list)})
	}
	return anims, nil
}

// NewSprite creates a sprite with every animation of sheet. The sprite
// draws sheet's image and has the collision size w, h.
func NewSprite(sheet *config.SpriteSheet, id entity.ObjectID, x, y, w, h float64) (*entity.Sprite, error) {
	anims, err := Animations(sheet)
	if err != nil {
		return nil, err
	}
	s := entity.NewSprite(id, sheet.Meta.Image, x, y, w, h, entity.South)
	for _, a := range anims {
		s.AddAnimation(a.Name, a.Frames)
	}
	return s, nil
}

// ParseColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	switch len(hex) {
	case 6:
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
	case 3:
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.RGBA{r * 17, g * 17, b * 17, 255}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
}
