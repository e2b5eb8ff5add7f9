package storage

import (
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"dental-tracker-api/internal/apperror"
)

const maxImageWidth = 1600

// DiskImageStore persists note images on the local filesystem. Uploads are
// decoded (honoring EXIF orientation), downscaled when oversized and
// re-encoded as JPEG, so the stored file is always a well-formed image
// regardless of what the client sent.
type DiskImageStore struct {
	baseDir string
}

func NewDiskImageStore(baseDir string) *DiskImageStore {
	return &DiskImageStore{baseDir: baseDir}
}

func (s *DiskImageStore) Save(ownerID uuid.UUID, r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", apperror.Validation("unsupported image format")
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(s.baseDir, ownerID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperror.Internal("failed to create upload directory", err)
	}

	name := uuid.NewString() + ".jpg"
	if err := imaging.Save(img, filepath.Join(dir, name), imaging.JPEGQuality(85)); err != nil {
		return "", apperror.Internal("failed to save image", err)
	}

	// the note stores this relative path, not the filesystem location
	return path.Join(ownerID.String(), name), nil
}
