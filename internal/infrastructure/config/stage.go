package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Background  string                       `json:"background"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Obstacles   []ObstacleConfig             `json:"obstacles"`
	Decorations []DecorationConfig           `json:"decorations"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
	Color string `json:"color,omitempty"`
}

// ObstacleConfig is a convex polygon in stage pixels, vertices in winding
// order.
type ObstacleConfig struct {
	Vertices []PointConfig `json:"vertices"`
}

type PointConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DecorationConfig places a static image or an animated sprite. The player
// collects pickups by touching them.
type DecorationConfig struct {
	Image  string `json:"image,omitempty"`
	Sprite string `json:"sprite,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Pickup bool   `json:"pickup,omitempty"`
}
