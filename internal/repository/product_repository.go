package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog-api/internal/models"
)

type ProductRepository struct {
	docs *Collection[models.Product]
}

func NewProductRepository(collection *mongo.Collection, opts ...Option) *ProductRepository {
	return &ProductRepository{
		docs: NewCollection[models.Product](collection, opts...),
	}
}

// Create inserta un producto ya construido por el handler
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	return r.docs.Insert(ctx, product)
}

// FindByID obtiene un producto por id público o por _id heredado
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return r.docs.FindByID(ctx, id)
}

// FindAll lista productos filtrando por categoría y destacado
func (r *ProductRepository) FindAll(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	return r.docs.FindMany(ctx, query, FindOptions{Limit: filter.Limit})
}

// Update reemplaza los campos editables y relee el producto por su campo id.
// Un registro heredado que solo tiene _id se actualiza pero la relectura devuelve ErrStaleRead.
func (r *ProductRepository) Update(ctx context.Context, id string, patch bson.M) (*models.Product, error) {
	if err := r.docs.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}

	product, err := r.docs.FindByIDWith(ctx, PublicKeyOnly{}, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrStaleRead
	}
	return product, err
}

// Delete elimina el documento; no hay borrado lógico
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.docs.DeleteByID(ctx, id)
}

func (r *ProductRepository) Documents() *Collection[models.Product] {
	return r.docs
}
