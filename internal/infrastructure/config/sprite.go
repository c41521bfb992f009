package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SpriteSheet is the JSON data Aseprite exports next to a sprite sheet PNG.
type SpriteSheet struct {
	Frames FrameList  `json:"frames"`
	Meta   SpriteMeta `json:"meta"`
}

type Frame struct {
	Filename         string    `json:"filename,omitempty"`
	Frame            FrameRect `json:"frame"`
	Rotated          bool      `json:"rotated"`
	Trimmed          bool      `json:"trimmed"`
	SpriteSourceSize FrameRect `json:"spriteSourceSize"`
	SourceSize       FrameSize `json:"sourceSize"`
	Duration         float64   `json:"duration"` // milliseconds
}

type FrameRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type FrameSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type SpriteMeta struct {
	App       string     `json:"app"`
	Version   string     `json:"version"`
	Image     string     `json:"image"`
	Format    string     `json:"format"`
	Size      FrameSize  `json:"size"`
	Scale     string     `json:"scale"`
	FrameTags []FrameTag `json:"frameTags"`
}

type FrameTag struct {
	Name      string `json:"name"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Direction string `json:"direction"`
}

// Tag returns the frames of the named animation tag.
func (s *SpriteSheet) Tag(name string) (FrameList, bool) {
	for _, t := range s.Meta.FrameTags {
		if t.Name != name {
			continue
		}
		if t.From < 0 || t.To >= len(s.Frames) || t.From > t.To {
			return nil, false
		}
		return s.Frames[t.From : t.To+1], true
	}
	return nil, false
}

// FrameList is the frame table of a sprite sheet. Aseprite exports it
// either as an array ("Array" mode) or as an object keyed by frame filename
// ("Hash" mode). In the object form the key order is the frame order.
type FrameList []Frame

func (f *FrameList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var frames []Frame
		if err := json.Unmarshal(data, &frames); err != nil {
			return err
		}
		*f = frames
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("frames: expected object or array, got %v", tok)
	}

	var frames []Frame
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var fr Frame
		if err := dec.Decode(&fr); err != nil {
			return fmt.Errorf("frame %q: %w", key, err)
		}
		if fr.Filename == "" {
			fr.Filename = key
		}
		frames = append(frames, fr)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = frames
	return nil
}
