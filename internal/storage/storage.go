package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ImageStore persists uploaded product images and resolves the public
// URL they are served under.
type ImageStore interface {
	// Save writes the image and returns its public URL.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)

	// Remove deletes a previously stored image given its public URL.
	// Unknown URLs are ignored.
	Remove(ctx context.Context, imageURL string) error
}

// localStore implements ImageStore on the local filesystem.
type localStore struct {
	dir        string
	publicPath string
	logger     zerolog.Logger
}

// NewLocalStore creates a filesystem-backed image store rooted at dir.
func NewLocalStore(dir, publicPath string, logger zerolog.Logger) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &localStore{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		logger:     logger.With().Str("component", "local-image-store").Logger(),
	}, nil
}

// Save writes the image under the upload directory.
func (s *localStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	url := s.publicPath + "/" + filepath.Base(filename)
	s.logger.Debug().Str("path", path).Str("url", url).Msg("image stored")
	return url, nil
}

// Remove deletes the file backing a public URL. URLs outside the public
// path are ignored so external image references survive untouched.
func (s *localStore) Remove(ctx context.Context, imageURL string) error {
	if !strings.HasPrefix(imageURL, s.publicPath+"/") {
		return nil
	}

	path := filepath.Join(s.dir, filepath.Base(imageURL))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove image file: %w", err)
	}

	s.logger.Debug().Str("path", path).Msg("image removed")
	return nil
}
