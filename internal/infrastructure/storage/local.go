package storage

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// LocalStore keeps public assets on the local filesystem below a root directory.
// Paths handed to it are slash separated and relative to that root.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Abs resolves path below the root; ".." segments cannot escape it.
func (s *LocalStore) Abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(filepath.Clean("/"+path)))
}

// Decode reads an uploaded image, applying EXIF orientation.
func (s *LocalStore) Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ResizeAndSave scales img to exactly width x height and writes it to path,
// creating missing directories. The encoding follows the path extension.
func (s *LocalStore) ResizeAndSave(ctx context.Context, img image.Image, width, height int, path string) error {
	_, span := otel.Tracer("asset-store").Start(ctx, "ResizeAndSave")
	defer span.End()
	span.SetAttributes(attribute.String("path", path), attribute.Int("width", width), attribute.Int("height", height))

	full := s.Abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		slog.Error("failed to create directory", "path", filepath.Dir(full), "error", err)
		return fmt.Errorf("failed to create directory: %w", err)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	if err := imaging.Save(resized, full); err != nil {
		slog.Error("failed to save image", "path", path, "error", err)
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}

	slog.Info("image saved", "path", path, "width", width, "height", height)
	return nil
}

// Delete removes path. A file that is already gone is not an error.
func (s *LocalStore) Delete(ctx context.Context, path string) error {
	_, span := otel.Tracer("asset-store").Start(ctx, "DeleteFile")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	if err := os.Remove(s.Abs(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		span.RecordError(err)
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

func (s *LocalStore) Exists(path string) bool {
	_, err := os.Stat(s.Abs(path))
	return err == nil
}
