package local

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

const (
	publicPrefix = "/uploads/"
	maxPhotoSize = 5 << 20 // 5MB
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type photoStore struct {
	dir string
}

// NewPhotoStore stores candidate photos as files under dir, served at
// /uploads/. The directory is created if missing.
func NewPhotoStore(dir string) (ports.PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &photoStore{dir: dir}, nil
}

func (s *photoStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", domain.ErrInvalidPhoto
	}

	name := fmt.Sprintf("candidate-%s%s", uuid.New(), ext)
	fullPath := filepath.Join(s.dir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, maxPhotoSize+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}
	if written > maxPhotoSize {
		os.Remove(fullPath)
		return "", domain.ErrPhotoTooLarge
	}

	return publicPrefix + name, nil
}

func (s *photoStore) Remove(url string) error {
	// Never touch the placeholder or anything outside the upload dir.
	if url == domain.PlaceholderPhotoURL || !strings.HasPrefix(url, publicPrefix) {
		return nil
	}
	name := path.Base(url)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove photo file: %w", err)
	}
	return nil
}
