package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
)

// ImagesURLPrefix is the route under which stored images are served.
const ImagesURLPrefix = "/uploads/images/"

// allowedImageExts are the file extensions accepted by [ImageStorage.Save].
var allowedImageExts = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// imageFileStorage keeps uploaded images as flat files named by UUID in a
// single directory on the local filesystem.
type imageFileStorage struct {
	dir     string
	maxSize int64
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewImageFileStorage constructs an [ImageStorage] writing to cfg.ImagesDir,
// creating the directory if needed. A non-positive cfg.MaxImageSize
// disables the size limit.
func NewImageFileStorage(cfg config.Files, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewImageFileStorage").Str("dir", cfg.ImagesDir).Msg("failed to create images directory")
		return nil, fmt.Errorf("error creating images directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.ImagesDir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:     cfg.ImagesDir,
		maxSize: cfg.MaxImageSize,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

// Save copies content into a new file. A partially written file is removed
// when the copy fails or the size limit is exceeded.
func (s *imageFileStorage) Save(ctx context.Context, ext string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported extension %q", ErrSavingImage, ext)
	}

	name := s.ids.Generate() + "." + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.Save").Str("path", path).Msg("failed to create image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	reader := content
	if s.maxSize > 0 {
		reader = io.LimitReader(content, s.maxSize+1)
	}

	n, copyErr := io.Copy(f, reader)
	closeErr := f.Close()

	switch {
	case copyErr != nil || closeErr != nil:
		_ = os.Remove(path)
		err = errors.Join(copyErr, closeErr)
		log.Err(err).Str("func", "*imageFileStorage.Save").Str("path", path).Msg("failed to write image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	case s.maxSize > 0 && n > s.maxSize:
		_ = os.Remove(path)
		return "", ErrImageTooLarge
	}

	log.Debug().Str("func", "*imageFileStorage.Save").Str("path", path).Int64("size", n).Msg("image saved")
	return ImagesURLPrefix + name, nil
}

// Delete removes the file behind ref. References outside [ImagesURLPrefix]
// are placeholders or remote images and are left alone; a missing file is
// not an error.
func (s *imageFileStorage) Delete(ctx context.Context, ref string) error {
	name, managed := strings.CutPrefix(ref, ImagesURLPrefix)
	if !managed {
		return nil
	}

	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidImageReference, ref)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*imageFileStorage.Delete").Str("path", path).Msg("failed to delete image file")
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}

func (s *imageFileStorage) Dir() string {
	return s.dir
}

func (s *imageFileStorage) URLPrefix() string {
	return ImagesURLPrefix
}
