package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto en el catálogo
type Product struct {
	Document    `bson:",inline"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Images      []string  `json:"images" bson:"images"`
	Features    []string  `json:"features" bson:"features"`
	MetaTags    *MetaTags `json:"meta_tags" bson:"meta_tags"`
	Featured    bool      `json:"featured" bson:"featured"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ProductInput es el cuerpo aceptado por POST y PUT /api/products
type ProductInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Images      []string  `json:"images"`
	Features    []string  `json:"features"`
	MetaTags    *MetaTags `json:"meta_tags"`
	Featured    bool      `json:"featured"`
	Status      string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ApplyDefaults completa los campos opcionales que el cliente omitió.
func (in *ProductInput) ApplyDefaults() {
	in.Images = emptyIfNil(in.Images)
	in.Features = emptyIfNil(in.Features)
	in.MetaTags.applyDefaults()
	if in.Status == "" {
		in.Status = ProductStatusActive
	}
}

// NewProduct construye el documento a insertar; created_at y updated_at coinciden.
func (in ProductInput) NewProduct(id string, now time.Time) *Product {
	in.ApplyDefaults()
	return &Product{
		Document:    Document{ID: id},
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Images:      in.Images,
		Features:    in.Features,
		MetaTags:    in.MetaTags,
		Featured:    in.Featured,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Patch devuelve todos los campos editables; el PUT reemplaza el cuerpo completo.
func (in ProductInput) Patch() bson.M {
	in.ApplyDefaults()
	return bson.M{
		"name":        in.Name,
		"description": in.Description,
		"category":    in.Category,
		"images":      in.Images,
		"features":    in.Features,
		"meta_tags":   in.MetaTags,
		"featured":    in.Featured,
		"status":      in.Status,
	}
}

// ProductFilter son los filtros exactos de GET /api/products
type ProductFilter struct {
	Category string
	Featured *bool
	Limit    int64
}
