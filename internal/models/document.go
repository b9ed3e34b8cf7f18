package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document contiene la identidad común de todos los documentos almacenados.
// ObjectID es la clave nativa de Mongo y nunca se expone; ID es el identificador público.
type Document struct {
	ObjectID primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ID       string             `json:"id" bson:"id,omitempty"`
}

// NormalizeID completa ID con el hex de _id para registros antiguos sin campo id.
func (d *Document) NormalizeID() {
	if d.ID == "" && !d.ObjectID.IsZero() {
		d.ID = d.ObjectID.Hex()
	}
}

// MetaTags se embebe en productos, categorías y blogs.
type MetaTags struct {
	Title       *string  `json:"title" bson:"title"`
	Description *string  `json:"description" bson:"description"`
	Keywords    []string `json:"keywords" bson:"keywords"`
	OGImage     *string  `json:"og_image" bson:"og_image"`
}

func (m *MetaTags) applyDefaults() {
	if m != nil && m.Keywords == nil {
		m.Keywords = []string{}
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// Now devuelve la hora UTC truncada a milisegundos, la precisión con la que Mongo guarda fechas.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
