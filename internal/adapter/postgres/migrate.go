package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/reuse-backend/migrations"
)

// OpenMigrator opens a database/sql connection (goose requires *sql.DB) and
// returns a goose provider over the embedded SQL migrations. The caller must
// close the returned *sql.DB.
//
// goose.NewProvider correctly handles multi-statement migrations, unlike the
// legacy goose.Up which splits on semicolons.
func OpenMigrator(ctx context.Context, dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, db, nil
}

// MigrateUp applies all pending migrations.
func MigrateUp(ctx context.Context, dsn string) ([]*goose.MigrationResult, error) {
	provider, db, err := OpenMigrator(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}
