package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-api/internal/models"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 3 * time.Second
	queryTimeout = 10 * time.Second
)

// FindOptions controla límite y orden de FindMany. Sin SortField se usa orden de inserción.
type FindOptions struct {
	Limit     int64
	SortField string
	SortDesc  bool
}

type normalizer interface {
	NormalizeID()
}

// Collection es el acceso genérico a una colección de documentos.
type Collection[T any] struct {
	coll *mongo.Collection
	keys KeyStrategy
	now  func() time.Time
}

type Option func(*collectionConfig)

type collectionConfig struct {
	keys KeyStrategy
	now  func() time.Time
}

// WithKeyStrategy reemplaza la estrategia de búsqueda por id.
func WithKeyStrategy(keys KeyStrategy) Option {
	return func(c *collectionConfig) { c.keys = keys }
}

// WithClock reemplaza el reloj usado para updated_at.
func WithClock(now func() time.Time) Option {
	return func(c *collectionConfig) { c.now = now }
}

func NewCollection[T any](coll *mongo.Collection, opts ...Option) *Collection[T] {
	cfg := collectionConfig{
		keys: LegacyKeyFallback{},
		now:  models.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Collection[T]{
		coll: coll,
		keys: cfg.keys,
		now:  cfg.now,
	}
}

func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

// Insert guarda el documento tal cual; el id público ya viene asignado.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, c.storageError("insert", err)
	}
	normalize(doc)
	return doc, nil
}

// FindByID resuelve el id con la estrategia configurada.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.findOne(ctx, c.keys.Filter(id))
}

// FindByIDWith resuelve el id con una estrategia distinta a la configurada.
func (c *Collection[T]) FindByIDWith(ctx context.Context, keys KeyStrategy, id string) (*T, error) {
	return c.findOne(ctx, keys.Filter(id))
}

func (c *Collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, c.storageError("find", err)
	}
	normalize(&doc)
	return &doc, nil
}

// FindMany lista documentos que coinciden exactamente con el filtro.
func (c *Collection[T]) FindMany(ctx context.Context, filter bson.M, opts FindOptions) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}

	findOptions := options.Find()
	if opts.Limit > 0 {
		findOptions.SetLimit(opts.Limit)
	}
	if opts.SortField != "" {
		order := 1
		if opts.SortDesc {
			order = -1
		}
		findOptions.SetSort(bson.D{{Key: opts.SortField, Value: order}})
	} else {
		findOptions.SetSort(bson.D{{Key: "_id", Value: 1}})
	}

	cursor, err := c.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, c.storageError("find", err)
	}
	defer cursor.Close(ctx)

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, c.storageError("decode", err)
	}
	for _, doc := range docs {
		normalize(doc)
	}
	return docs, nil
}

// UpdateByID aplica los campos del patch y avanza updated_at.
// updated_at queda en el mayor entre el reloj y el valor guardado más 1ms, así cada
// actualización es estrictamente posterior aunque caiga en el mismo milisegundo.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, patch bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := c.coll.UpdateOne(ctx, c.keys.Filter(id), updatePipeline(patch, c.now()))
	if err != nil {
		return c.storageError("update", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func updatePipeline(patch bson.M, now time.Time) mongo.Pipeline {
	set := make(bson.D, 0, len(patch)+1)
	for field, value := range patch {
		if field == "updated_at" {
			continue
		}
		// $literal evita que un string como "$5" se lea como ruta de campo
		set = append(set, bson.E{Key: field, Value: bson.D{{Key: "$literal", Value: value}}})
	}
	set = append(set, bson.E{Key: "updated_at", Value: bson.D{{Key: "$max", Value: bson.A{
		now,
		bson.D{{Key: "$add", Value: bson.A{"$updated_at", 1}}},
	}}}})
	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := c.coll.DeleteOne(ctx, c.keys.Filter(id))
	if err != nil {
		return c.storageError("delete", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// BackfillIDs copia el hex de _id al campo id en los documentos que no lo tienen,
// así las URLs que ya usaban el _id siguen resolviendo.
func (c *Collection[T]) BackfillIDs(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": bson.M{"$exists": false}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "id", Value: bson.D{{Key: "$toString", Value: "$_id"}}}}}},
	}

	result, err := c.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, c.storageError("backfill", err)
	}
	return result.ModifiedCount, nil
}

// EnsureIDIndex crea un índice único y sparse sobre id.
func (c *Collection[T]) EnsureIDIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetName("id_unique").SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return c.storageError("create index", err)
	}
	return nil
}

func (c *Collection[T]) storageError(op string, err error) error {
	return &StorageError{Op: op, Collection: c.coll.Name(), Err: err}
}

func normalize[T any](doc *T) {
	if n, ok := any(doc).(normalizer); ok {
		n.NormalizeID()
	}
}
