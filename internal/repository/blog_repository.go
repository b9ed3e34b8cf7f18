package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog-api/internal/models"
)

type BlogRepository struct {
	docs *Collection[models.Blog]
}

func NewBlogRepository(collection *mongo.Collection, opts ...Option) *BlogRepository {
	return &BlogRepository{
		docs: NewCollection[models.Blog](collection, opts...),
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	return r.docs.Insert(ctx, blog)
}

// FindAll devuelve los posts más recientes primero; limit 0 significa sin límite
func (r *BlogRepository) FindAll(ctx context.Context, limit int64) ([]*models.Blog, error) {
	return r.docs.FindMany(ctx, nil, FindOptions{
		Limit:     limit,
		SortField: "created_at",
		SortDesc:  true,
	})
}

func (r *BlogRepository) Documents() *Collection[models.Blog] {
	return r.docs
}
