package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog-api/internal/models"
)

type CategoryHandler struct {
	repo   CategoryRepository
	logger *zap.Logger
	newID  func() string
	now    func() time.Time
}

func NewCategoryHandler(repo CategoryRepository, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		repo:   repo,
		logger: logger,
		newID:  uuid.NewString,
		now:    models.Now,
	}
}

// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error fetching categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if !bindJSON(c, &input) {
		return
	}

	category := input.NewCategory(h.newID(), h.now())

	created, err := h.repo.Create(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("failed to create category",
			zap.String("category_id", category.ID),
			zap.String("slug", category.Slug),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error creating category"})
		return
	}

	c.JSON(http.StatusOK, created)
}
