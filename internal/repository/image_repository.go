package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog-api/internal/models"
)

type ImageRepository struct {
	docs *Collection[models.Image]
}

func NewImageRepository(collection *mongo.Collection, opts ...Option) *ImageRepository {
	return &ImageRepository{
		docs: NewCollection[models.Image](collection, opts...),
	}
}

func (r *ImageRepository) Create(ctx context.Context, image *models.Image) (*models.Image, error) {
	return r.docs.Insert(ctx, image)
}

// FindAll devuelve las imágenes más recientes primero
func (r *ImageRepository) FindAll(ctx context.Context) ([]*models.Image, error) {
	return r.docs.FindMany(ctx, nil, FindOptions{
		SortField: "uploaded_at",
		SortDesc:  true,
	})
}

func (r *ImageRepository) Documents() *Collection[models.Image] {
	return r.docs
}
