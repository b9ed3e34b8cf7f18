package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog-api/internal/models"
)

type CategoryRepository struct {
	docs *Collection[models.Category]
}

func NewCategoryRepository(collection *mongo.Collection, opts ...Option) *CategoryRepository {
	return &CategoryRepository{
		docs: NewCollection[models.Category](collection, opts...),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	return r.docs.Insert(ctx, category)
}

// FindAll devuelve todas las categorías en orden de inserción
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*models.Category, error) {
	return r.docs.FindMany(ctx, nil, FindOptions{})
}

func (r *CategoryRepository) Documents() *Collection[models.Category] {
	return r.docs
}
