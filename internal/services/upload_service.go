package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	app_errors "siteforge/internal/errors"
	"siteforge/internal/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// allowedImageExtensions maps accepted upload extensions to their
// canonical form on disk.
var allowedImageExtensions = map[string]string{
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".png":  ".png",
	".gif":  ".gif",
	".webp": ".webp",
	".svg":  ".svg",
}

// UploadService stores section and logo images on local disk and hands
// back the public URL path to embed in config content.
type UploadService struct {
	config types.UploadConfig
}

// NewUploadService constructs an UploadService and ensures the upload
// directory exists.
func NewUploadService(configManager types.ConfigManager) (*UploadService, error) {
	cfg := configManager.GetUploadConfig()
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.Dir, err)
	}
	return &UploadService{config: cfg}, nil
}

// Dir returns the on-disk directory served at the public path.
func (s *UploadService) Dir() string { return s.config.Dir }

// PublicPath returns the URL prefix under which uploads are served.
func (s *UploadService) PublicPath() string { return s.config.PublicPath }

// SaveImage validates and persists an uploaded image, returning its
// public URL path. File names are replaced with a random UUID so
// uploads can never collide or traverse directories.
func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, error) {
	if file.Size > s.config.MaxSizeBytes {
		return "", app_errors.NewValidationError(fmt.Sprintf(
			"file exceeds the %d MB size limit", s.config.MaxSizeBytes/(1024*1024)))
	}

	ext, ok := allowedImageExtensions[strings.ToLower(filepath.Ext(file.Filename))]
	if !ok {
		return "", app_errors.NewValidationError("unsupported file type, expected jpg, png, gif, webp or svg")
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.config.Dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"file": name,
		"size": file.Size,
	}).Debug("Stored uploaded image")

	return s.config.PublicPath + "/" + name, nil
}
