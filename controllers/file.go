package controllers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MB

var allowedUploadTypes = regexp.MustCompile(`^(image/jpg|image/jpeg|image/png|text/plain)$`)

// FileController stores uploaded files under a local directory with
// generated names.
type FileController struct {
	dir string
}

func NewFileController(dir string) *FileController {
	return &FileController{dir: dir}
}

// Upload accepts a single multipart file in the "fileUpload" field,
// restricted by declared content type and size.
func (ctrl FileController) Upload(c *gin.Context) {
	file, err := c.FormFile("fileUpload")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "fileUpload is required"})
		return
	}

	if file.Size > maxUploadBytes {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "File is too large"})
		return
	}

	if !allowedUploadTypes.MatchString(file.Header.Get("Content-Type")) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "File type is not supported"})
		return
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(ctrl.dir, name)); err != nil {
		slog.Error("failed to store uploaded file", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fileName": name})
}
