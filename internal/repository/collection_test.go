package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdatePipeline(t *testing.T) {
	now := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)

	pipeline := updatePipeline(bson.M{
		"description": "$5 off this week",
		"updated_at":  time.Time{},
	}, now)

	require.Len(t, pipeline, 1)
	stage := pipeline[0]
	require.Equal(t, "$set", stage[0].Key)
	set := stage[0].Value.(bson.D).Map()

	assert.Equal(t, bson.D{{Key: "$literal", Value: "$5 off this week"}}, set["description"])
	assert.Equal(t, bson.D{{Key: "$max", Value: bson.A{
		now,
		bson.D{{Key: "$add", Value: bson.A{"$updated_at", 1}}},
	}}}, set["updated_at"])
	assert.NotContains(t, set, "created_at")
	assert.Len(t, set, 2)
}
