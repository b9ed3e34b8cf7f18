package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLegacyKeyFallback(t *testing.T) {
	t.Run("uuid matches id only", func(t *testing.T) {
		id := "3f1c2a7e-7d43-4b8e-9c55-0b8f0a6f9d21"

		assert.Equal(t, bson.M{"id": id}, LegacyKeyFallback{}.Filter(id))
	})

	t.Run("object id hex also matches _id", func(t *testing.T) {
		hex := "65f000000000000000000001"
		objID, err := primitive.ObjectIDFromHex(hex)
		assert.NoError(t, err)

		want := bson.M{"$or": []bson.M{
			{"id": hex},
			{"_id": objID},
		}}
		assert.Equal(t, want, LegacyKeyFallback{}.Filter(hex))
	})

	t.Run("24 chars but not hex", func(t *testing.T) {
		id := "zzzzzzzzzzzzzzzzzzzzzzzz"

		assert.Equal(t, bson.M{"id": id}, LegacyKeyFallback{}.Filter(id))
	})
}

func TestPublicKeyOnly(t *testing.T) {
	hex := "65f000000000000000000001"

	assert.Equal(t, bson.M{"id": hex}, PublicKeyOnly{}.Filter(hex))
}
