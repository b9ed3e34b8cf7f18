package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/logger"
	"catalog-api/internal/repository"
)

// app son las piezas compartidas por todos los comandos
type app struct {
	cfg        *config.Config
	log        *zap.Logger
	client     *mongo.Client
	products   *repository.ProductRepository
	categories *repository.CategoryRepository
	blogs      *repository.BlogRepository
	images     *repository.ImageRepository
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}
	if cfg.EnvFileLoaded {
		appLogger.Info(".env file loaded")
	}

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		appLogger.Error("could not connect to mongo", zap.Error(err))
		return nil, err
	}
	appLogger.Info("connected to mongo", zap.String("db_name", cfg.MongoDB))

	var keys repository.KeyStrategy = repository.LegacyKeyFallback{}
	if !cfg.LegacyIDLookup {
		keys = repository.PublicKeyOnly{}
	}
	withKeys := repository.WithKeyStrategy(keys)

	db := client.Database(cfg.MongoDB)
	return &app{
		cfg:        cfg,
		log:        appLogger,
		client:     client,
		products:   repository.NewProductRepository(db.Collection(database.ProductsCollection), withKeys),
		categories: repository.NewCategoryRepository(db.Collection(database.CategoriesCollection), withKeys),
		blogs:      repository.NewBlogRepository(db.Collection(database.BlogsCollection), withKeys),
		images:     repository.NewImageRepository(db.Collection(database.ImagesCollection), withKeys),
	}, nil
}

func (a *app) close() {
	if err := database.Disconnect(context.Background(), a.client); err != nil {
		a.log.Warn("mongo disconnect failed", zap.Error(err))
	}
	_ = a.log.Sync()
}
