package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/art/internal/domain/input"
)

// ErrEmpty is returned when saving a recording without frames.
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for a session on the given stage.
func NewRecorder(stage string, frameRate int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			ID:        uuid.New(),
			Stage:     stage,
			FrameRate: frameRate,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single logical frame's keys
func (r *Recorder) RecordFrame(keys input.Keys) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{F: len(r.data.Frames), Keys: keys})
}

// Encode writes the recording as indented JSON.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := r.Encode(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// ID returns the session ID stored with the recording.
func (r *Recorder) ID() uuid.UUID {
	return r.data.ID
}

// Data returns the replay data recorded so far.
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
