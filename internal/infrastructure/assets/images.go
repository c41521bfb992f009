package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Images is an in-memory ImageStore.
type Images struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImages creates an empty store.
func NewImages() *Images {
	return &Images{images: make(map[string]image.Image)}
}

// LoadImages decodes every file of a manifest (name -> path in fsys)
// concurrently and returns the filled store. The first failure cancels the
// remaining decodes.
func LoadImages(ctx context.Context, fsys fs.FS, manifest map[string]string) (*Images, error) {
	store := NewImages()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for name, path := range manifest {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeImage(fsys, path)
			if err != nil {
				return fmt.Errorf("failed to load image %s: %w", name, err)
			}
			store.Add(name, img)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return store, nil
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Add stores img under name, replacing any previous image.
func (s *Images) Add(name string, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[name] = img
}

// Get implements ImageStore.
func (s *Images) Get(name string) (image.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: image %q", ErrUnknownAsset, name)
	}
	return img, nil
}

// Len returns the number of stored images.
func (s *Images) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
