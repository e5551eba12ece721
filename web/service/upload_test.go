package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"lostfound/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader the way gin would
// hand it to the controller.
func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func setupUploads(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LF_UPLOAD_FOLDER", dir)
	t.Setenv("LF_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)
	return dir
}

func TestSaveImagePersistsAllowedFile(t *testing.T) {
	dir := setupUploads(t)
	s := UploadService{}

	content := []byte("\x89PNG fake image bytes")
	name := s.SaveImage(makeFileHeader(t, "receipt.png", content))
	assert.Equal(t, "receipt.png", name)

	saved, err := os.ReadFile(filepath.Join(dir, "receipt.png"))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestSaveImageRejectsDisallowedExtension(t *testing.T) {
	dir := setupUploads(t)
	s := UploadService{}

	tests := []string{"malware.exe", "notes.txt", "image.svg", "noext"}
	for _, filename := range tests {
		name := s.SaveImage(makeFileHeader(t, filename, []byte("data")))
		assert.Empty(t, name, "expected %q to be rejected", filename)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveImageRejectsOversizedFile(t *testing.T) {
	setupUploads(t)
	s := UploadService{}

	// Size check happens before the file is opened, so a header with a
	// fabricated size is enough.
	fh := &multipart.FileHeader{Filename: "huge.png", Size: MaxUploadSize + 1}
	assert.Empty(t, s.SaveImage(fh))
}

func TestSaveImageSanitizesTraversalName(t *testing.T) {
	dir := setupUploads(t)
	s := UploadService{}

	name := s.SaveImage(makeFileHeader(t, "../../escape.png", []byte("img")))
	assert.Equal(t, "escape.png", name)

	_, err := os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
}

func TestSaveImageNilFile(t *testing.T) {
	setupUploads(t)
	s := UploadService{}
	assert.Empty(t, s.SaveImage(nil))
}
