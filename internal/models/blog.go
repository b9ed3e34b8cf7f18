package models

import "time"

const (
	BlogStatusPublished = "published"
	BlogStatusDraft     = "draft"
)

type Blog struct {
	Document      `bson:",inline"`
	Title         string    `json:"title" bson:"title"`
	Content       string    `json:"content" bson:"content"`
	Excerpt       *string   `json:"excerpt" bson:"excerpt"`
	Category      *string   `json:"category" bson:"category"`
	MetaTags      *MetaTags `json:"meta_tags" bson:"meta_tags"`
	FeaturedImage *string   `json:"featured_image" bson:"featured_image"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type BlogInput struct {
	Title         string    `json:"title" binding:"required"`
	Content       string    `json:"content" binding:"required"`
	Excerpt       *string   `json:"excerpt"`
	Category      *string   `json:"category"`
	MetaTags      *MetaTags `json:"meta_tags"`
	FeaturedImage *string   `json:"featured_image"`
	Status        string    `json:"status" binding:"omitempty,oneof=published draft"`
}

func (in BlogInput) NewBlog(id string, now time.Time) *Blog {
	in.MetaTags.applyDefaults()
	status := in.Status
	if status == "" {
		status = BlogStatusPublished
	}
	return &Blog{
		Document:      Document{ID: id},
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Category:      in.Category,
		MetaTags:      in.MetaTags,
		FeaturedImage: in.FeaturedImage,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
