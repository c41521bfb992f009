package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wallColor = color.RGBA{95, 87, 79, 255}

func createTestStage() *Stage {
	// Create a 3x3 stage with some solid tiles
	wall := Tile{Type: TileWall, Solid: true, Color: wallColor}
	empty := Tile{Type: TileEmpty}
	tiles := [][]Tile{
		{wall, empty, wall},
		{empty, empty, empty},
		{wall, empty, wall},
	}

	return &Stage{
		Width:    3,
		Height:   3,
		TileSize: 16,
		Tiles:    tiles,
		SpawnX:   24,
		SpawnY:   24,
	}
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name      string
		tx, ty    int
		wantType  TileType
		wantSolid bool
	}{
		{"top-left wall", 0, 0, TileWall, true},
		{"top-center empty", 1, 0, TileEmpty, false},
		{"center empty", 1, 1, TileEmpty, false},
		{"bottom-right wall", 2, 2, TileWall, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, tt.wantType, tile.Type)
			assert.Equal(t, tt.wantSolid, tile.Solid)
		})
	}
}

func TestStage_GetTile_OutOfBounds(t *testing.T) {
	stage := createTestStage()

	outOfBoundsCases := []struct {
		name   string
		tx, ty int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 10, 0},
		{"y too large", 0, 10},
		{"both negative", -1, -1},
	}

	for _, tt := range outOfBoundsCases {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, TileWall, tile.Type, "out of bounds should return wall")
			assert.True(t, tile.Solid, "out of bounds should be solid")
		})
	}
}

func TestStage_IsSolidAt(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"solid wall", 0, 0, true},
		{"tile boundary", 16, 0, false},
		{"empty space", 24, 24, false},
		{"last pixel of wall", 47, 47, true},
		{"just left of the stage", -1, 20, true},
		{"out of bounds", -5, -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage.IsSolidAt(tt.px, tt.py))
		})
	}
}

func TestStage_Blocks(t *testing.T) {
	stage := createTestStage()
	var ids IDs

	blocks := stage.Blocks(&ids)

	require.Len(t, blocks, 4)
	assert.Equal(t, 32.0, blocks[1].X, "row by row, left to right")
	assert.Equal(t, 0.0, blocks[1].Y)
	assert.Equal(t, 32.0, blocks[2].Y)
	assert.Equal(t, 16.0, blocks[3].W)
	assert.Equal(t, wallColor, blocks[0].Color)

	seen := map[ObjectID]bool{}
	for _, b := range blocks {
		assert.False(t, seen[b.ID()], "ids are unique")
		seen[b.ID()] = true
	}
	assert.Equal(t, ObjectID(5), ids.Next())
}

func TestIDs_StartAtOne(t *testing.T) {
	var ids IDs
	assert.Equal(t, ObjectID(1), ids.Next())
	assert.Equal(t, ObjectID(2), ids.Next())
}
