package config

// ArtConfig is the root config for art.json
type ArtConfig struct {
	Display    DisplayConfig `json:"display"`
	Soundtrack string        `json:"soundtrack"`
	Stage      string        `json:"stage"`
	Sprite     string        `json:"sprite"`
	Player     PlayerConfig  `json:"player"`
	Debug      bool          `json:"debug"`
}

type DisplayConfig struct {
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"`
	TileSize    int    `json:"tileSize"`
	FrameRate   int    `json:"frameRate"`
	Canvas      string `json:"canvas"`
	DisplayGrid bool   `json:"displayGrid"`
}

func (d *DisplayConfig) applyDefaults() {
	if d.Width <= 0 {
		d.Width = 800
	}
	if d.Height <= 0 {
		d.Height = 600
	}
	if d.Scale <= 0 {
		d.Scale = 1
	}
	if d.TileSize <= 0 {
		d.TileSize = 16
	}
	if d.FrameRate <= 0 {
		d.FrameRate = 60
	}
	if d.Canvas == "" {
		d.Canvas = "#art-canvas"
	}
	if d.Title == "" {
		d.Title = "art"
	}
}

// PlayerConfig describes the player. Sprite names an animated sprite
// sheet with "idle" and "walk" tags and wins over Image.
type PlayerConfig struct {
	Image  string `json:"image"`
	Sprite string `json:"sprite"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Speed  int    `json:"speed"` // pixels per logical frame
}

// Manifest maps asset names to file paths relative to the config root.
type Manifest map[string]string
