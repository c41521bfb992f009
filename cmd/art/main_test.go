package main

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/config"
)

func TestEmbeddedConfigs(t *testing.T) {
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)

	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	_, err = loader.LoadStage(cfg.Art.Stage)
	require.NoError(t, err)
	_, err = loader.LoadSprite(cfg.Art.Sprite)
	require.NoError(t, err)
	_, err = loader.LoadSprite(cfg.Art.Player.Sprite)
	require.NoError(t, err)

	images, err := assets.LoadImages(context.Background(), fsys, cfg.Images)
	require.NoError(t, err)
	assert.Equal(t, len(cfg.Images), images.Len())

	for name, path := range cfg.Sounds {
		_, err := fs.Stat(fsys, path)
		assert.NoError(t, err, name)
	}
}
