package handlers

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson"

	"catalog-api/internal/models"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	Update(ctx context.Context, id string, patch bson.M) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	FindAll(ctx context.Context) ([]*models.Category, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	FindAll(ctx context.Context, limit int64) ([]*models.Blog, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) (*models.Image, error)
	FindAll(ctx context.Context) ([]*models.Image, error)
}

// ContentWriter persiste los bytes de un archivo subido
type ContentWriter interface {
	Save(name string, r io.Reader) (int64, error)
}
