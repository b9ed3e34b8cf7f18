package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"catalog-api/internal/config"
	"catalog-api/internal/handlers"
	"catalog-api/internal/middleware"
	"catalog-api/internal/storage"
)

// Dependencies agrupa todo lo que el router necesita; se construye una vez en main
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	Registry   *prometheus.Registry
	Products   handlers.ProductRepository
	Categories handlers.CategoryRepository
	Blogs      handlers.BlogRepository
	Images     handlers.ImageRepository
	Content    *storage.ContentStore
}

func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
		deps.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestLogger(deps.Logger),
		middleware.NewMetrics(deps.Registry).Handler(),
		middleware.CORS(deps.Config.CORS),
	)

	RegisterRoutes(router, deps)
	return router
}

func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	products := handlers.NewProductHandler(deps.Products, deps.Logger)
	categories := handlers.NewCategoryHandler(deps.Categories, deps.Logger)
	blogs := handlers.NewBlogHandler(deps.Blogs, deps.Logger)
	uploads := handlers.NewUploadHandler(deps.Images, deps.Content, cfg.Upload.URLPrefix, cfg.Upload.MaxBytes, deps.Logger)

	requireToken := middleware.RequireToken(middleware.NewStaticToken(cfg.Auth.Secret))

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	router.StaticFS(cfg.Upload.URLPrefix, deps.Content.HTTPFileSystem())

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health(cfg.ServiceName))

		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProduct)
		api.GET("/categories", categories.ListCategories)
		api.GET("/blogs", blogs.ListBlogs)
	}

	admin := api.Group("", requireToken)
	{
		admin.POST("/products", products.CreateProduct)
		admin.PUT("/products/:id", products.UpdateProduct)
		admin.DELETE("/products/:id", products.DeleteProduct)
		admin.POST("/categories", categories.CreateCategory)
		admin.POST("/blogs", blogs.CreateBlog)
		admin.POST("/upload", uploads.UploadImage)
		admin.GET("/images", uploads.ListImages)
	}
}
