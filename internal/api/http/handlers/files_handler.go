package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/appointment-service/internal/auth"
	"github.com/spec-kit/appointment-service/internal/service"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

// FilesHandler manages avatar uploads.
type FilesHandler struct {
	service   *service.FileService
	uploadDir string
	baseURL   string
}

// NewFilesHandler constructs handler.
func NewFilesHandler(fileService *service.FileService, uploadDir, baseURL string) *FilesHandler {
	return &FilesHandler{service: fileService, uploadDir: uploadDir, baseURL: baseURL}
}

// Upload POST /files. Accepts a multipart form with a "file" field, stores
// it under the upload directory and records its metadata.
func (h *FilesHandler) Upload(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewUnauthorized("user required")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file field required", nil)
	}

	storagePath, err := h.service.StoragePath(header.Filename)
	if err != nil {
		return err
	}
	if err := c.SaveFile(header, filepath.Join(h.uploadDir, storagePath)); err != nil {
		return apperrors.NewInternalError(err)
	}

	file, err := h.service.Register(c.Context(), header.Filename, storagePath)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fileResponse(file, h.baseURL)})
}
