package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"siteforge/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadConfigStub struct {
	types.ConfigManager
	upload types.UploadConfig
}

func (s *uploadConfigStub) GetUploadConfig() types.UploadConfig { return s.upload }

func setupUploadService(t *testing.T, maxSizeBytes int64) *UploadService {
	svc, err := NewUploadService(&uploadConfigStub{
		upload: types.UploadConfig{
			Dir:          t.TempDir(),
			PublicPath:   "/uploads",
			MaxSizeBytes: maxSizeBytes,
		},
	})
	require.NoError(t, err)
	return svc
}

// makeFileHeader builds a multipart.FileHeader the way gin receives one
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

// TestSaveImage tests a valid upload round-trip
func TestSaveImage(t *testing.T) {
	t.Parallel()
	svc := setupUploadService(t, 1<<20)

	url, err := svc.SaveImage(makeFileHeader(t, "photo.jpg", []byte("jpeg-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
	assert.NotContains(t, url, "photo")

	stored, err := os.ReadFile(filepath.Join(svc.Dir(), strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), stored)
}

// TestSaveImage_NormalizesExtension tests jpeg canonicalization
func TestSaveImage_NormalizesExtension(t *testing.T) {
	t.Parallel()
	svc := setupUploadService(t, 1<<20)

	url, err := svc.SaveImage(makeFileHeader(t, "photo.JPEG", []byte("jpeg-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

// TestSaveImage_RejectsUnsupportedType tests extension filtering
func TestSaveImage_RejectsUnsupportedType(t *testing.T) {
	t.Parallel()
	svc := setupUploadService(t, 1<<20)

	_, err := svc.SaveImage(makeFileHeader(t, "script.exe", []byte("nope")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

// TestSaveImage_RejectsOversizedFile tests the size cap
func TestSaveImage_RejectsOversizedFile(t *testing.T) {
	t.Parallel()
	svc := setupUploadService(t, 8)

	_, err := svc.SaveImage(makeFileHeader(t, "big.png", bytes.Repeat([]byte("x"), 64)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")
}
