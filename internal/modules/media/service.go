package media

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"rakshakmorcha/internal/domain"
	"rakshakmorcha/internal/storage"
)

const MaxFileSize = 50 * 1024 * 1024 // 50 MB

// allowedExtensions maps every accepted upload extension to the media
// class recorded on the entity. The class is always derived here, never
// taken from the client.
var allowedExtensions = map[string]string{
	".jpeg": domain.MediaTypeImage,
	".jpg":  domain.MediaTypeImage,
	".png":  domain.MediaTypeImage,
	".gif":  domain.MediaTypeImage,
	".mp4":  domain.MediaTypeVideo,
	".mov":  domain.MediaTypeVideo,
	".avi":  domain.MediaTypeVideo,
	".webm": domain.MediaTypeVideo,
}

// Service stores uploaded files on local disk and their metadata in the
// persistence gateway.
type Service struct {
	store      storage.Store
	uploadDir  string
	staticBase string
}

func NewService(store storage.Store, uploadDir, staticBase string) *Service {
	return &Service{store: store, uploadDir: uploadDir, staticBase: staticBase}
}

// Upload validates, writes the file to disk under a collision-resistant
// name and records the Media entity. The file is removed again if the
// record cannot be written.
func (s *Service) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*domain.Media, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mediaType, ok := allowedExtensions[ext]
	if !ok {
		return nil, ErrInvalidFileType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	now := time.Now()
	storedName := fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.IntN(1_000_000_000), ext)
	absPath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	m := &domain.Media{
		Filename:  fileHeader.Filename,
		URL:       s.staticBase + "/" + storedName,
		Type:      mediaType,
		Size:      fileHeader.Size,
		CreatedAt: now,
	}

	if err := s.store.CreateMedia(ctx, m); err != nil {
		_ = os.Remove(absPath) // roll back the file on record failure
		return nil, fmt.Errorf("failed to save media record: %w", err)
	}

	return m, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Media, error) {
	return s.store.ListMedia(ctx)
}

// Delete removes the record and its backing file. A file already missing
// from disk is not an error, so deletes stay idempotent on the disk side.
func (s *Service) Delete(ctx context.Context, id string) error {
	m, err := s.store.GetMedia(ctx, id)
	if err != nil {
		return err
	}

	absPath := filepath.Join(s.uploadDir, path.Base(m.URL))
	_ = os.Remove(absPath)

	return s.store.DeleteMedia(ctx, id)
}
