package utils_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/eatupnow/eatupnow-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a *multipart.FileHeader the way gin would hand
// one to a handler.
func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int
		wantCode string
	}{
		{"jpg ok", "photo.jpg", 100, ""},
		{"png ok", "photo.png", 100, ""},
		{"uppercase extension ok", "PHOTO.JPEG", 100, ""},
		{"executable rejected", "malware.exe", 100, "INVALID_FILE_FORMAT"},
		{"no extension rejected", "photo", 100, "INVALID_FILE_FORMAT"},
		{"oversized rejected", "big.jpg", utils.MaxFileSize + 1, "FILE_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := multipartFile(t, tt.filename, bytes.Repeat([]byte("a"), tt.size))
			err := utils.ValidateImageFile(fh)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var ferr *utils.FileUploadError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.wantCode, ferr.Code)
		})
	}
}

func TestSaveUploadedFile(t *testing.T) {
	dir := t.TempDir()
	fh := multipartFile(t, "photo.jpg", []byte("image-bytes"))

	filename, err := utils.SaveUploadedFile(fh, dir)
	require.NoError(t, err)
	assert.NotEqual(t, "photo.jpg", filename, "stored name must be generated")
	assert.Equal(t, ".jpg", filepath.Ext(filename))

	content, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), content)

	// A second save of the same upload gets a distinct name.
	other, err := utils.SaveUploadedFile(fh, dir)
	require.NoError(t, err)
	assert.NotEqual(t, filename, other)
}

func TestSaveUploadedFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	fh := multipartFile(t, "photo.png", []byte("x"))

	filename, err := utils.SaveUploadedFile(fh, dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, filename))
	assert.NoError(t, err)
}

func TestDeleteUploadedFile(t *testing.T) {
	dir := t.TempDir()
	fh := multipartFile(t, "photo.jpg", []byte("x"))
	filename, err := utils.SaveUploadedFile(fh, dir)
	require.NoError(t, err)

	require.NoError(t, utils.DeleteUploadedFile(dir, filename))
	_, err = os.Stat(filepath.Join(dir, filename))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteUploadedFileMissing(t *testing.T) {
	err := utils.DeleteUploadedFile(t.TempDir(), "nope.jpg")
	var ferr *utils.FileUploadError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "FILE_NOT_FOUND", ferr.Code)
}

func TestDeleteUploadedFileRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	secret := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("keep"), 0o600))

	err := utils.DeleteUploadedFile(filepath.Join(dir, "uploads"), "../secret.txt")
	var ferr *utils.FileUploadError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "INVALID_FILENAME", ferr.Code)

	_, statErr := os.Stat(secret)
	assert.NoError(t, statErr, "target file must be untouched")
}
