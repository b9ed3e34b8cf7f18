package repository

import "context"

type idMigrator interface {
	Name() string
	BackfillIDs(ctx context.Context) (int64, error)
	EnsureIDIndex(ctx context.Context) error
}

type MigrationResult struct {
	Collection string
	Backfilled int64
}

// MigrateIDs deja todas las colecciones con el campo id poblado e indexado.
// Se detiene en el primer error; lo ya migrado queda aplicado.
func MigrateIDs(ctx context.Context, collections ...idMigrator) ([]MigrationResult, error) {
	results := make([]MigrationResult, 0, len(collections))
	for _, coll := range collections {
		count, err := coll.BackfillIDs(ctx)
		if err != nil {
			return results, err
		}
		if err := coll.EnsureIDIndex(ctx); err != nil {
			return results, err
		}
		results = append(results, MigrationResult{Collection: coll.Name(), Backfilled: count})
	}
	return results, nil
}
