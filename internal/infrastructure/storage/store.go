package storage

import (
	"context"
	"image"
	"io"
)

// AssetStore saves and removes public binary assets addressed by relative path.
type AssetStore interface {
	Decode(r io.Reader) (image.Image, error)
	ResizeAndSave(ctx context.Context, img image.Image, width, height int, path string) error
	Delete(ctx context.Context, path string) error
}
