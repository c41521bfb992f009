package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/art/internal/application/art"
	"github.com/younwookim/art/internal/application/replay"
	"github.com/younwookim/art/internal/application/scene/paused"
	"github.com/younwookim/art/internal/application/scene/playing"
	"github.com/younwookim/art/internal/application/system"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/config"
	"github.com/younwookim/art/internal/infrastructure/host"
	"github.com/younwookim/art/internal/infrastructure/render"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back recorded input from file")
	fullscreenFlag := flag.Bool("fullscreen", false, "Start in fullscreen mode (F11 toggles)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	display := cfg.Art.Display

	ctx := context.Background()

	images, err := assets.LoadImages(ctx, fsys, cfg.Images)
	if err != nil {
		log.Fatalf("Failed to load images: %v", err)
	}
	sounds, err := assets.LoadSounds(audio.NewContext(assets.SampleRate), fsys, cfg.Sounds)
	if err != nil {
		log.Fatalf("Failed to load sounds: %v", err)
	}

	opts := playing.Options{
		Loader: loader,
		Stage:  cfg.Art.Stage,
		Player: cfg.Art.Player,
	}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.FrameRate != display.FrameRate {
			log.Printf("Replay was recorded at %d fps, running at %d", data.FrameRate, display.FrameRate)
		}
		opts.Replayer = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames, session %s)", *replayFlag, len(data.Frames), data.ID)
	}
	if *recordFlag != "" {
		opts.Recorder = replay.NewRecorder(cfg.Art.Stage, display.FrameRate)
		log.Printf("Recording enabled: %s (session %s)", *recordFlag, opts.Recorder.ID())
	}

	// The canvas the runtime draws on, presented by the ebiten host.
	canvas := render.NewEbitenCanvas(display.Width, display.Height)
	surfaces := render.NewRegistry()
	surfaces.RegisterSurface(display.Canvas, canvas)
	h := host.NewEbiten(canvas)

	rt := art.New(art.Config{
		Width:       display.Width,
		Height:      display.Height,
		TileSize:    display.TileSize,
		FrameRate:   display.FrameRate,
		Canvas:      display.Canvas,
		DisplayGrid: display.DisplayGrid || cfg.Art.Debug,
	}, playing.New(opts), paused.New(),
		art.WithHost(h),
		art.WithSurfaces(surfaces),
		art.WithImages(images),
		art.WithAudio(sounds),
		art.WithSoundtrack(cfg.Art.Soundtrack),
	)

	input := system.NewInputSystem(0)
	h.PollKeys = input.Poll
	h.OnKeys = rt.SetKeys
	h.Err = rt.Err
	h.Fullscreen = *fullscreenFlag

	// Minus and equals step the soundtrack volume.
	volume := system.NewVolumeControl(0.1)
	h.OnFrame = func() { rt.AdjustVolume(volume.Poll()) }

	if err := rt.Start(ctx); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer rt.Close()

	err = h.Run(display.Title, display.Scale)
	if opts.Recorder != nil {
		saveRecording(opts.Recorder, *recordFlag)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// saveRecording saves the recording to file
func saveRecording(rec *replay.Recorder, filename string) {
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := rec.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, rec.FrameCount())
}
