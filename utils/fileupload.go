package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is 5MB in bytes
const MaxFileSize = 5 * 1024 * 1024

// AllowedImageExtensions lists the accepted image file extensions.
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateImageFile validates the uploaded file extension and size.
func ValidateImageFile(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxFileSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !AllowedImageExtensions[ext] {
		return &FileUploadError{
			Code:    "INVALID_FILE_FORMAT",
			Message: "Invalid file type. Allowed: .jpg, .jpeg, .png, .gif, .webp",
		}
	}
	return nil
}

// SaveUploadedFile stores the uploaded file under uploadDir with a
// generated unique name and returns that name.
func SaveUploadedFile(fileHeader *multipart.FileHeader, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := uuid.NewString() + ext
	fullPath := filepath.Join(uploadDir, filename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filename, nil
}

// DeleteUploadedFile removes a previously stored file. The filename is
// rejected if it escapes the upload directory.
func DeleteUploadedFile(uploadDir, filename string) error {
	if filename != filepath.Base(filename) {
		return &FileUploadError{Code: "INVALID_FILENAME", Message: "Invalid filename"}
	}
	fullPath := filepath.Join(uploadDir, filename)
	if _, err := os.Stat(fullPath); err != nil {
		return &FileUploadError{Code: "FILE_NOT_FOUND", Message: "File not found"}
	}
	return os.Remove(fullPath)
}
