package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KeyStrategy traduce el identificador público a un filtro de Mongo.
type KeyStrategy interface {
	Filter(id string) bson.M
}

// LegacyKeyFallback busca por el campo id y, si el valor es un ObjectID válido,
// también por _id. Los registros creados antes de asignar ids explícitos solo tienen _id.
type LegacyKeyFallback struct{}

func (LegacyKeyFallback) Filter(id string) bson.M {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"id": id}
	}
	return bson.M{"$or": []bson.M{
		{"id": id},
		{"_id": objID},
	}}
}

// PublicKeyOnly busca únicamente por el campo id.
type PublicKeyOnly struct{}

func (PublicKeyOnly) Filter(id string) bson.M {
	return bson.M{"id": id}
}
