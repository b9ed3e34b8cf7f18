package handlers

import (
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog-api/internal/models"
)

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

type UploadHandler struct {
	images    ImageRepository
	content   ContentWriter
	urlPrefix string
	maxBytes  int64
	logger    *zap.Logger
	newID     func() string
	now       func() time.Time
}

func NewUploadHandler(images ImageRepository, content ContentWriter, urlPrefix string, maxBytes int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		images:    images,
		content:   content,
		urlPrefix: urlPrefix,
		maxBytes:  maxBytes,
		logger:    logger,
		newID:     uuid.NewString,
		now:       models.Now,
	}
}

// POST /api/upload
// El archivo se copia sin inspeccionar su contenido; solo se valida el Content-Type declarado.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "File too large"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "file is required"})
		return
	}

	if !isImage(fileHeader.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "File must be an image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.String("original_name", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error uploading image"})
		return
	}
	defer file.Close()

	filename := h.newID() + fileExtension(fileHeader.Filename)
	if _, err := h.content.Save(filename, file); err != nil {
		h.logger.Error("failed to write uploaded file", zap.String("filename", filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error uploading image"})
		return
	}

	image := &models.Image{
		Document:     models.Document{ID: h.newID()},
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		URL:          path.Join(h.urlPrefix, filename),
		UploadedAt:   h.now(),
	}

	created, err := h.images.Create(c.Request.Context(), image)
	if err != nil {
		// el archivo ya escrito queda huérfano; no hay rollback
		h.logger.Error("failed to record uploaded image, file left in content root",
			zap.String("image_id", image.ID),
			zap.String("filename", filename),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error uploading image"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// GET /api/images
func (h *UploadHandler) ListImages(c *gin.Context) {
	images, err := h.images.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list images", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error fetching images"})
		return
	}

	c.JSON(http.StatusOK, images)
}

func isImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// fileExtension conserva la extensión original si es alfanumérica
func fileExtension(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if !extensionPattern.MatchString(ext) {
		return ""
	}
	return ext
}
