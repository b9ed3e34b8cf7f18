package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"catalog-api/internal/handlers/mocks"
	"catalog-api/internal/models"
)

func newCategoryRouter(t *testing.T) (*gin.Engine, *mocks.MockCategoryRepository) {
	t.Helper()
	repo := mocks.NewMockCategoryRepository(gomock.NewController(t))

	h := NewCategoryHandler(repo, zap.NewNop())
	h.now = func() time.Time { return fixedNow }
	h.newID = func() string { return "cat-1" }

	router := gin.New()
	router.GET("/api/categories", h.ListCategories)
	router.POST("/api/categories", h.CreateCategory)
	return router, repo
}

func TestCreateCategory(t *testing.T) {
	router, repo := newCategoryRouter(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Category) (*models.Category, error) {
			return c, nil
		})

	w := doJSON(router, http.MethodPost, "/api/categories", `{"name":"Sofas","slug":"sofas"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "cat-1", got["id"])
	assert.Equal(t, "sofas", got["slug"])
	assert.Equal(t, "2024-05-01T10:00:00Z", got["created_at"])
	assert.Equal(t, []any{}, got["keywords"])
	assert.Nil(t, got["description"])
	assert.NotContains(t, got, "updated_at")
}

func TestCreateCategoryRequiresSlug(t *testing.T) {
	router, _ := newCategoryRouter(t)

	w := doJSON(router, http.MethodPost, "/api/categories", `{"name":"Sofas"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "slug is required", decodeDetail(t, w))
}

func TestListCategories(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, repo := newCategoryRouter(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]*models.Category{
			{Document: models.Document{ID: "a"}, Name: "Sofas", Slug: "sofas", Keywords: []string{}},
		}, nil)

		w := doJSON(router, http.MethodGet, "/api/categories", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"sofas"`)
	})

	t.Run("storage failure", func(t *testing.T) {
		router, repo := newCategoryRouter(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("boom"))

		w := doJSON(router, http.MethodGet, "/api/categories", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error fetching categories", decodeDetail(t, w))
	})
}
