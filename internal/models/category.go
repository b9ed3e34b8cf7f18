package models

import "time"

type Category struct {
	Document    `bson:",inline"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description *string   `json:"description" bson:"description"`
	Keywords    []string  `json:"keywords" bson:"keywords"`
	MetaTags    *MetaTags `json:"meta_tags" bson:"meta_tags"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CategoryInput no valida unicidad del slug.
type CategoryInput struct {
	Name        string    `json:"name" binding:"required"`
	Slug        string    `json:"slug" binding:"required"`
	Description *string   `json:"description"`
	Keywords    []string  `json:"keywords"`
	MetaTags    *MetaTags `json:"meta_tags"`
}

func (in CategoryInput) NewCategory(id string, now time.Time) *Category {
	in.MetaTags.applyDefaults()
	return &Category{
		Document:    Document{ID: id},
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Keywords:    emptyIfNil(in.Keywords),
		MetaTags:    in.MetaTags,
		CreatedAt:   now,
	}
}
