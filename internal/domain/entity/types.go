// Package entity holds the objects a scene updates and draws, and the tile
// stage they live in.
package entity

import (
	"image/color"

	"github.com/younwookim/art/internal/domain/collision"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// ObjectID is a unique identifier for an object within a scene
type ObjectID uint32

// IDs hands out object IDs. The zero value starts at 1.
type IDs struct {
	last ObjectID
}

// Next returns a fresh ID.
func (g *IDs) Next() ObjectID {
	g.last++
	return g.last
}

// Object is anything a scene updates and draws.
type Object interface {
	ID() ObjectID
	Box() collision.Box
	// Update advances the object to the frame timestamp now (ms).
	Update(now float64)
	Draw(s render.Surface, images assets.ImageStore) error
}

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
	Color color.RGBA
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	tx := floorDiv(px, s.TileSize)
	ty := floorDiv(py, s.TileSize)
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// Blocks returns a Block for every solid tile, row by row.
func (s *Stage) Blocks(ids *IDs) []*Block {
	var blocks []*Block
	ts := float64(s.TileSize)
	for ty, row := range s.Tiles {
		for tx, tile := range row {
			if !tile.Solid {
				continue
			}
			blocks = append(blocks, NewBlock(ids.Next(), float64(tx)*ts, float64(ty)*ts, ts, ts, tile.Color))
		}
	}
	return blocks
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
