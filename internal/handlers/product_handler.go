package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog-api/internal/models"
	"catalog-api/internal/repository"
)

type ProductHandler struct {
	repo   ProductRepository
	logger *zap.Logger
	newID  func() string
	now    func() time.Time
}

func NewProductHandler(repo ProductRepository, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		logger: logger,
		newID:  uuid.NewString,
		now:    models.Now,
	}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := models.ProductFilter{Category: c.Query("category")}

	if raw := c.Query("featured"); raw != "" {
		featured, err := parseBool(raw)
		if err != nil {
			badQuery(c, "featured must be a boolean")
			return
		}
		filter.Featured = &featured
	}

	limit, err := parseLimit(c)
	if err != nil {
		badQuery(c, err.Error())
		return
	}
	filter.Limit = limit

	products, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list products", zap.String("category", filter.Category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error fetching products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.repo.FindByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Product not found"})
			return
		}
		h.logger.Error("failed to get product", zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error fetching product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if !bindJSON(c, &input) {
		return
	}

	product := input.NewProduct(h.newID(), h.now())

	created, err := h.repo.Create(c.Request.Context(), product)
	if err != nil {
		h.logger.Error("failed to create product", zap.String("product_id", product.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error creating product"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// PUT /api/products/:id
// El cuerpo reemplaza todos los campos editables; created_at no cambia.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var input models.ProductInput
	if !bindJSON(c, &input) {
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), productID, input.Patch())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Product not found"})
		case errors.Is(err, repository.ErrStaleRead):
			// registro heredado sin campo id: la actualización se aplicó pero no se puede releer
			h.logger.Warn("product updated but not found by id; run migrate-ids", zap.String("product_id", productID))
			c.JSON(http.StatusOK, nil)
		default:
			h.logger.Error("failed to update product", zap.String("product_id", productID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error updating product"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Product not found"})
			return
		}
		h.logger.Error("failed to delete product", zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Error deleting product"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Product deleted"})
}
