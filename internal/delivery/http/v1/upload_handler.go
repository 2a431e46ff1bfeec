package v1

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go-candidate-intake/config"
	"go-candidate-intake/internal/delivery/http/response"
	"go-candidate-intake/pkg/logger"
	"go-candidate-intake/pkg/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadDir string
	maxBytes  int64
}

func NewUploadHandler(r *gin.RouterGroup, cfg *config.Config) {
	handler := &UploadHandler{
		uploadDir: cfg.UploadDir,
		maxBytes:  int64(cfg.MaxUploadSizeMB) << 20,
	}
	r.POST("/upload", handler.Upload)
}

// Upload godoc
// @Summary      Upload a résumé file
// @Description  Accepts a PDF or DOCX file and returns the stored path and type for the intake payload
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Résumé file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Response
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid file", "no file uploaded")
		return
	}
	if file.Size > h.maxBytes {
		response.Error(c, http.StatusBadRequest, "Invalid file", "file exceeds the maximum allowed size")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid file", err.Error())
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid file", err.Error())
		return
	}

	result := upload.ValidateFile(file.Filename, data)
	if !result.Valid {
		response.Error(c, http.StatusBadRequest, "Invalid file type, only PDF and DOCX are allowed", result.Error)
		return
	}

	// Stored under a random name; the original filename is untrusted input.
	dst := filepath.Join(h.uploadDir, uuid.NewString()+result.Extension)
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		logger.Log.Error("Failed to create upload dir", "error", err)
		response.Error(c, http.StatusInternalServerError, "Error uploading file", "could not store the file")
		return
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		logger.Log.Error("Failed to store upload", "error", err)
		response.Error(c, http.StatusInternalServerError, "Error uploading file", "could not store the file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filePath": dst,
		"fileType": file.Header.Get("Content-Type"),
	})
}
