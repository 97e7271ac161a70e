package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/appointment-service/internal/domain"
	"github.com/spec-kit/appointment-service/internal/repository"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

// FileService records uploaded avatar files.
type FileService struct {
	files repository.FileRepository
}

// NewFileService constructs the service.
func NewFileService(files repository.FileRepository) *FileService {
	return &FileService{files: files}
}

// StoragePath derives a collision-free on-disk name for an upload,
// preserving the original extension.
func (s *FileService) StoragePath(originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return "", apperrors.NewValidationError("unsupported file type", map[string]any{"extension": ext})
	}
	return uuid.NewString() + ext, nil
}

// Register persists the metadata of a stored upload.
func (s *FileService) Register(ctx context.Context, originalName, storagePath string) (*domain.File, error) {
	file := &domain.File{
		Name: originalName,
		Path: storagePath,
	}
	if err := s.files.Create(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}
