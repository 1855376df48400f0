package portfolio

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/uptrace/bun"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files for this package so
// hosts can register them with their own migration runner.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}

// RunMigrations executes the embedded migration files in lexical order.
// Statements inside a file are separated by "--bun:split" markers. Every
// statement is written to be idempotent, so re-running on an existing
// database is safe.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	entries, err := fs.ReadDir(migrationsFS, "data/sql/migrations")
	if err != nil {
		return fmt.Errorf("portfolio: read migrations: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		raw, err := migrationsFS.ReadFile("data/sql/migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("portfolio: read migration %s: %w", entry.Name(), err)
		}
		for _, statement := range strings.Split(string(raw), "--bun:split") {
			statement = strings.TrimSpace(statement)
			if statement == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("portfolio: migration %s: %w", entry.Name(), err)
			}
		}
	}
	return nil
}
