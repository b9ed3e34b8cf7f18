package models

import "time"

// Image es la metadata de un archivo subido a /api/upload.
// ProductID existe en el esquema pero ningún endpoint lo completa.
type Image struct {
	Document     `bson:",inline"`
	Filename     string    `json:"filename" bson:"filename"`
	OriginalName string    `json:"original_name" bson:"original_name"`
	URL          string    `json:"url" bson:"url"`
	ProductID    *string   `json:"product_id,omitempty" bson:"product_id,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at" bson:"uploaded_at"`
}
