package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"catalog-api/internal/repository"
)

func migrateIDs(ctx context.Context, _ *cli.Command) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	results, err := repository.MigrateIDs(ctx,
		a.products.Documents(),
		a.categories.Documents(),
		a.blogs.Documents(),
		a.images.Documents(),
	)
	for _, result := range results {
		a.log.Info("collection migrated",
			zap.String("collection", result.Collection),
			zap.Int64("backfilled", result.Backfilled),
		)
	}
	if err != nil {
		a.log.Error("id migration failed", zap.Error(err))
		return err
	}
	return nil
}
