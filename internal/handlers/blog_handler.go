package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog-api/internal/models"
)

type BlogHandler struct {
	repo   BlogRepository
	logger *zap.Logger
	newID  func() string
	now    func() time.Time
}

func NewBlogHandler(repo BlogRepository, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		repo:   repo,
		logger: logger,
		newID:  uuid.NewString,
		now:    models.Now,
	}
}

// GET /api/blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		badQuery(c, err.Error())
		return
	}

	blogs, err := h.repo.FindAll(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list blogs", zap.Int64("limit", limit), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error fetching blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// POST /api/blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var input models.BlogInput
	if !bindJSON(c, &input) {
		return
	}

	blog := input.NewBlog(h.newID(), h.now())

	created, err := h.repo.Create(c.Request.Context(), blog)
	if err != nil {
		h.logger.Error("failed to create blog", zap.String("blog_id", blog.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error creating blog"})
		return
	}

	c.JSON(http.StatusOK, created)
}
