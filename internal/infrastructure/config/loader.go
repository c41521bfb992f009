package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Bundle holds everything loaded up front by LoadAll.
type Bundle struct {
	Art    *ArtConfig
	Images Manifest
	Sounds Manifest
}

// Loader loads configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from. Asset paths in the
// manifests are relative to it.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadArt loads art.json and fills in defaults for missing settings.
func (l *Loader) LoadArt() (*ArtConfig, error) {
	var cfg ArtConfig
	if err := l.readJSON("art.json", &cfg); err != nil {
		return nil, err
	}
	cfg.Display.applyDefaults()
	return &cfg, nil
}

// LoadImages loads the images.json manifest.
func (l *Loader) LoadImages() (Manifest, error) {
	return l.loadManifest("images.json")
}

// LoadSounds loads the sounds.json manifest. A missing file means no sounds.
func (l *Loader) LoadSounds() (Manifest, error) {
	if _, err := fs.Stat(l.fsys, "sounds.json"); err != nil {
		return Manifest{}, nil
	}
	return l.loadManifest("sounds.json")
}

func (l *Loader) loadManifest(path string) (Manifest, error) {
	var m Manifest
	if err := l.readJSON(path, &m); err != nil {
		return nil, err
	}
	for name, file := range m {
		if file == "" {
			return nil, fmt.Errorf("%s: %q has no file", path, name)
		}
	}
	return m, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.readJSON("stages/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: tileSize must be positive", name)
	}
	return &cfg, nil
}

// LoadSprite loads an Aseprite sprite sheet export from sprites/<name>.json.
func (l *Loader) LoadSprite(name string) (*SpriteSheet, error) {
	var sheet SpriteSheet
	if err := l.readJSON("sprites/"+name+".json", &sheet); err != nil {
		return nil, fmt.Errorf("sprite %s: %w", name, err)
	}
	if len(sheet.Frames) == 0 {
		return nil, fmt.Errorf("sprite %s: no frames", name)
	}
	return &sheet, nil
}

// LoadAll loads the base configuration (art, images, sounds) and applies
// environment overrides on top.
func (l *Loader) LoadAll() (*Bundle, error) {
	art, err := l.LoadArt()
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(&art.Display); err != nil {
		return nil, err
	}

	images, err := l.LoadImages()
	if err != nil {
		return nil, err
	}

	sounds, err := l.LoadSounds()
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Art:    art,
		Images: images,
		Sounds: sounds,
	}, nil
}
