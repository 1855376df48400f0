package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/internal/commands/markdowncmd"
)

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("markdown import: %v", err)
	}
}

func runImport(args []string) error {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("markdown-import", flag.ExitOnError)
	dir := fs.String("dir", "content/projects", "Markdown content root with per-locale subdirectories")
	storageProvider := fs.String("storage", envOr("PORTFOLIO_STORAGE", "bun"), "Content storage provider (bun or memory)")
	dsn := fs.String("dsn", envOr("PORTFOLIO_DB_DSN", "file:portfolio.db?cache=shared&_fk=1"), "Database DSN")
	actor := fs.String("actor", "", "Actor ID recorded on imported projects")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := portfolio.DefaultConfig()
	cfg.Storage.Provider = *storageProvider
	cfg.Database.DSN = *dsn
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = *dir
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "console"

	ctx := context.Background()

	opts := []portfolio.Option{}
	if cfg.Storage.Provider == "bun" {
		sqldb, err := sql.Open("sqlite3", cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		db := bun.NewDB(sqldb, sqlitedialect.New())
		defer db.Close()
		opts = append(opts, portfolio.WithDB(db))
	}

	module, err := portfolio.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if db := module.DB(); db != nil {
		if err := portfolio.RunMigrations(ctx, db); err != nil {
			return err
		}
	}

	msg := markdowncmd.ImportProjectsCommand{Dir: cfg.Markdown.ContentDir}
	if *actor != "" {
		id, err := uuid.Parse(*actor)
		if err != nil {
			return fmt.Errorf("parse actor: %w", err)
		}
		msg.RunBy = &id
	}

	handler := markdowncmd.NewImportProjectsHandler(module.Content(), module.Logger("import"))
	if err := handler.Execute(ctx, msg); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "markdown import completed")
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
