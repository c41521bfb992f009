// Package replay records the keys seen by every logical frame and plays
// them back, so a session can be reproduced step for step.
package replay

import (
	"github.com/google/uuid"
	"github.com/younwookim/art/internal/domain/input"
)

// Version is the replay file format version.
const Version = "2.0"

// FrameInput records the key state of a single logical frame
type FrameInput struct {
	F int `json:"f"` // Frame number
	input.Keys
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	ID        uuid.UUID    `json:"id"`
	Stage     string       `json:"stage"`
	FrameRate int          `json:"frameRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
