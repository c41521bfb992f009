package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/art/configs"

func TestLoader_LoadArt(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadArt()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.Width)
	assert.Equal(t, 240, cfg.Display.Height)
	assert.Equal(t, 60, cfg.Display.FrameRate)
	assert.Equal(t, 16, cfg.Display.TileSize)
	assert.Equal(t, "#art-canvas", cfg.Display.Canvas)
	assert.Equal(t, "theme", cfg.Soundtrack)
	assert.Equal(t, "demo", cfg.Stage)
	assert.Equal(t, 2, cfg.Player.Speed)
}

func TestLoader_LoadArtDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"art.json": {Data: []byte(`{"display": {}}`)},
	}

	cfg, err := NewFSLoader(fsys, ".").LoadArt()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.Width)
	assert.Equal(t, 600, cfg.Display.Height)
	assert.Equal(t, 1, cfg.Display.Scale)
	assert.Equal(t, 16, cfg.Display.TileSize)
	assert.Equal(t, 60, cfg.Display.FrameRate)
	assert.Equal(t, "#art-canvas", cfg.Display.Canvas)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"art.json":          {Data: []byte(`{"display": `)},
		"images.json":       {Data: []byte(`{"player": ""}`)},
		"stages/flat.json":  {Data: []byte(`{"size": {"width": 32, "height": 32}}`)},
		"sprites/none.json": {Data: []byte(`{"frames": {}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadArt()
	assert.ErrorContains(t, err, "failed to parse art.json")

	_, err = loader.LoadImages()
	assert.ErrorContains(t, err, "has no file")

	_, err = loader.LoadStage("missing")
	assert.ErrorContains(t, err, "failed to read stages/missing.json")

	_, err = loader.LoadStage("flat")
	assert.ErrorContains(t, err, "tileSize")

	_, err = loader.LoadSprite("none")
	assert.ErrorContains(t, err, "no frames")
}

func TestLoader_LoadManifests(t *testing.T) {
	loader := NewLoader(configDir)

	images, err := loader.LoadImages()
	require.NoError(t, err)
	assert.Equal(t, "images/player.png", images["player"])
	assert.Contains(t, images, "coin")

	sounds, err := loader.LoadSounds()
	require.NoError(t, err)
	assert.Equal(t, "sounds/theme.wav", sounds["theme"])
}

func TestLoader_LoadSoundsMissing(t *testing.T) {
	sounds, err := NewFSLoader(fstest.MapFS{}, ".").LoadSounds()
	require.NoError(t, err)
	assert.Empty(t, sounds)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 320, cfg.Size.Width)
	assert.Equal(t, 240, cfg.Size.Height)
	assert.Equal(t, 16, cfg.Size.TileSize)
	assert.Equal(t, 40, cfg.PlayerSpawn.X)
	assert.Len(t, cfg.Layers.Collision, 15)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, "wall", wall.Type)

	require.Len(t, cfg.Obstacles, 1)
	assert.Len(t, cfg.Obstacles[0].Vertices, 4)
	assert.NotEmpty(t, cfg.Decorations)
}

func TestLoader_LoadSprite(t *testing.T) {
	loader := NewLoader(configDir)

	sheet, err := loader.LoadSprite("coin")
	require.NoError(t, err)

	require.Len(t, sheet.Frames, 4)
	assert.Equal(t, "coin 0.aseprite", sheet.Frames[0].Filename)
	assert.Equal(t, FrameRect{X: 24, Y: 0, W: 8, H: 8}, sheet.Frames[3].Frame)
	assert.Equal(t, 240.0, sheet.Frames[3].Duration)
	assert.Equal(t, "coin", sheet.Meta.Image)

	spin, ok := sheet.Tag("spin")
	require.True(t, ok)
	assert.Len(t, spin, 4)

	_, ok = sheet.Tag("idle")
	assert.False(t, ok)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Art)
	assert.NotEmpty(t, cfg.Images)
	assert.NotEmpty(t, cfg.Sounds)
}
