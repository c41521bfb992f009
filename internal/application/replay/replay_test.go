package replay

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/art/internal/domain/input"
)

func TestFrameInput_CompactJSON(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, Keys: input.Keys{Left: true, Space: true}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f": 3, "l": true, "s": true}`, string(data))
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("demo", 60)

	r.RecordFrame(input.Keys{Right: true})
	r.RecordFrame(input.Keys{})
	r.RecordFrame(input.Keys{Up: true, Space: true})

	assert.Equal(t, 3, r.FrameCount())
	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "demo", data.Stage)
	assert.Equal(t, 60, data.FrameRate)
	assert.NotEqual(t, uuid.Nil, data.ID)
	assert.Equal(t, r.ID(), data.ID)
	assert.Equal(t, 2, data.Frames[2].F)
	assert.True(t, data.Frames[0].Right)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder("demo", 60)
	r.RecordFrame(input.Keys{})
	r.Stop()
	r.RecordFrame(input.Keys{})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewRecorder("a", 60).ID(), NewRecorder("a", 60).ID())
}

func TestRecorder_EmptyRecording(t *testing.T) {
	r := NewRecorder("demo", 60)

	assert.ErrorIs(t, r.Encode(&bytes.Buffer{}), ErrEmpty)
	assert.ErrorIs(t, r.Save(filepath.Join(t.TempDir(), "x.json")), ErrEmpty)
}

func TestRoundTrip_ReplaysSameKeys(t *testing.T) {
	session := []input.Keys{
		{Right: true},
		{Right: true, Down: true},
		{},
		{Space: true},
		{Left: true, Up: true},
	}

	r := NewRecorder("demo", 30)
	for _, k := range session {
		r.RecordFrame(k)
	}

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.ID(), data.ID)
	assert.Equal(t, 30, data.FrameRate)

	p := NewReplayer(*data)
	assert.Equal(t, len(session), p.TotalFrames())

	var got []input.Keys
	for {
		k, ok := p.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, session, got)
	assert.True(t, p.Done())
	assert.Equal(t, len(session), p.CurrentFrame())

	p.Reset()
	k, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, session[0], k)
}

func TestReplayer_Empty(t *testing.T) {
	p := NewReplayer(ReplayData{})

	k, ok := p.Next()
	assert.False(t, ok)
	assert.Equal(t, input.Keys{}, k)
	assert.True(t, p.Done())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"version": "1.0", "frames": []}`))
	assert.ErrorContains(t, err, "unsupported replay version")

	_, err = Decode(strings.NewReader(`{"version": `))
	assert.ErrorContains(t, err, "failed to decode replay")

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
