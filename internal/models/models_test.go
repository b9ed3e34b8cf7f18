package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestNormalizeID(t *testing.T) {
	objID := primitive.NewObjectID()

	legacy := Document{ObjectID: objID}
	legacy.NormalizeID()
	assert.Equal(t, objID.Hex(), legacy.ID)

	current := Document{ObjectID: objID, ID: "uuid-1"}
	current.NormalizeID()
	assert.Equal(t, "uuid-1", current.ID)

	empty := Document{}
	empty.NormalizeID()
	assert.Empty(t, empty.ID)
}

func TestNewProductDefaults(t *testing.T) {
	p := ProductInput{Name: "Sofa", Description: "d", Category: "Sofas"}.NewProduct("p-1", now)

	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, ProductStatusActive, p.Status)
	assert.False(t, p.Featured)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, []string{}, p.Features)
	assert.Nil(t, p.MetaTags)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestProductPatchCoversEditableFields(t *testing.T) {
	title := "Oak"
	patch := ProductInput{
		Name:        "Sofa",
		Description: "d",
		Category:    "Sofas",
		MetaTags:    &MetaTags{Title: &title},
		Status:      ProductStatusInactive,
	}.Patch()

	assert.ElementsMatch(t,
		[]string{"name", "description", "category", "images", "features", "meta_tags", "featured", "status"},
		keys(patch))
	assert.Equal(t, ProductStatusInactive, patch["status"])
	assert.Equal(t, []string{}, patch["meta_tags"].(*MetaTags).Keywords)
}

func TestNewBlogDefaults(t *testing.T) {
	b := BlogInput{Title: "Care tips", Content: "Oil the wood"}.NewBlog("b-1", now)

	assert.Equal(t, BlogStatusPublished, b.Status)
	assert.Nil(t, b.Excerpt)
	assert.Equal(t, now, b.UpdatedAt)

	draft := BlogInput{Title: "t", Content: "c", Status: BlogStatusDraft}.NewBlog("b-2", now)
	assert.Equal(t, BlogStatusDraft, draft.Status)
}

func TestNewCategoryDefaults(t *testing.T) {
	c := CategoryInput{Name: "Sofas", Slug: "sofas"}.NewCategory("c-1", now)

	assert.Equal(t, []string{}, c.Keywords)
	assert.Nil(t, c.Description)
	assert.Equal(t, now, c.CreatedAt)
}

func TestNowTruncatesToMilliseconds(t *testing.T) {
	got := Now()

	assert.Equal(t, time.UTC, got.Location())
	assert.Zero(t, got.Nanosecond()%int(time.Millisecond))
}

func keys[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
