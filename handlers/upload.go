package handlers

import (
	"net/http"
	"path"
	"path/filepath"

	"github.com/eatupnow/eatupnow-api/utils"

	"github.com/gin-gonic/gin"
)

// UploadHandler stores images under type-specific folders below the
// configured upload directory and serves back their public URLs.
type UploadHandler struct {
	UploadDir string
}

// Folders an image may be filed under.
var allowedUploadTypes = map[string]bool{
	"restaurants": true,
	"menu":        true,
	"users":       true,
}

// UploadImage accepts a multipart image and returns its URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	uploadType := c.DefaultQuery("type", "restaurants")
	if !allowedUploadTypes[uploadType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload type. Allowed: restaurants, menu, users"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename, err := utils.SaveUploadedFile(fileHeader, filepath.Join(h.UploadDir, uploadType))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"filename": filename,
		"url":      path.Join("/uploads", uploadType, filename),
	})
}

// DeleteImage removes a previously uploaded file.
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	uploadType := c.Param("type")
	if !allowedUploadTypes[uploadType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload type"})
		return
	}
	filename := c.Param("filename")

	if err := utils.DeleteUploadedFile(filepath.Join(h.UploadDir, uploadType), filename); err != nil {
		var status int
		if ferr, ok := err.(*utils.FileUploadError); ok && ferr.Code == "FILE_NOT_FOUND" {
			status = http.StatusNotFound
		} else {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully", "filename": filename})
}
