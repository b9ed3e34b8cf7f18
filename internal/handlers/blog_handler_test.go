package handlers

import (
	"context"
	"encoding/json"
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

func newBlogRouter(t *testing.T) (*gin.Engine, *mocks.MockBlogRepository) {
	t.Helper()
	repo := mocks.NewMockBlogRepository(gomock.NewController(t))

	h := NewBlogHandler(repo, zap.NewNop())
	h.now = func() time.Time { return fixedNow }

	router := gin.New()
	router.GET("/api/blogs", h.ListBlogs)
	router.POST("/api/blogs", h.CreateBlog)
	return router, repo
}

func TestCreateBlogDefaults(t *testing.T) {
	router, repo := newBlogRouter(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Blog) (*models.Blog, error) {
			return b, nil
		})

	w := doJSON(router, http.MethodPost, "/api/blogs",
		`{"title":"Caring for oak","content":"Oil it twice a year","meta_tags":{"title":"Oak"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, models.BlogStatusPublished, got.Status)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	require.NotNil(t, got.MetaTags)
	assert.Equal(t, []string{}, got.MetaTags.Keywords)
}

func TestCreateBlogRejectsUnknownStatus(t *testing.T) {
	router, _ := newBlogRouter(t)

	w := doJSON(router, http.MethodPost, "/api/blogs", `{"title":"t","content":"c","status":"scheduled"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "status must be one of: published, draft")
}

func TestListBlogsLimit(t *testing.T) {
	t.Run("passes limit", func(t *testing.T) {
		router, repo := newBlogRouter(t)
		repo.EXPECT().FindAll(gomock.Any(), int64(3)).Return([]*models.Blog{}, nil)

		w := doJSON(router, http.MethodGet, "/api/blogs?limit=3", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no limit", func(t *testing.T) {
		router, repo := newBlogRouter(t)
		repo.EXPECT().FindAll(gomock.Any(), int64(0)).Return([]*models.Blog{}, nil)

		w := doJSON(router, http.MethodGet, "/api/blogs", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		router, _ := newBlogRouter(t)

		w := doJSON(router, http.MethodGet, "/api/blogs?limit=ten", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
