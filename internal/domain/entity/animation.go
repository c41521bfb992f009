package entity

import "image"

// Frame is one cell of a sprite sheet.
type Frame struct {
	Src      image.Rectangle
	Duration float64 // milliseconds
}

// Animation steps through a sequence of frames. A frame is shown for at
// least its duration; the sequence wraps around at the end.
type Animation struct {
	frames     []Frame
	current    int
	lastSwitch float64
}

// NewAnimation creates an animation. frames must not be empty.
func NewAnimation(frames []Frame) *Animation {
	if len(frames) == 0 {
		panic("entity: animation without frames")
	}
	return &Animation{frames: frames}
}

// Index returns the index of the frame currently shown.
func (a *Animation) Index() int {
	return a.current
}

// Current returns the frame currently shown.
func (a *Animation) Current() Frame {
	return a.frames[a.current]
}

// Update advances at most one frame per call.
func (a *Animation) Update(now float64) {
	if now-a.lastSwitch < a.frames[a.current].Duration {
		return
	}
	a.current = (a.current + 1) % len(a.frames)
	a.lastSwitch = now
}

// Restart shows the first frame from now on.
func (a *Animation) Restart(now float64) {
	a.current = 0
	a.lastSwitch = now
}
