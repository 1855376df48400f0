package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"

	_ "github.com/mattn/go-sqlite3"

	portfolio "github.com/goliatone/go-portfolio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("portfolio server: %v", err)
	}
}

func run(args []string) error {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("portfolio-server", flag.ExitOnError)
	addr := fs.String("addr", envOr("PORTFOLIO_ADDR", ":8080"), "HTTP listen address")
	driver := fs.String("driver", envOr("PORTFOLIO_DB_DRIVER", "sqlite"), "Database driver (sqlite or postgres)")
	dsn := fs.String("dsn", envOr("PORTFOLIO_DB_DSN", "file:portfolio.db?cache=shared&_fk=1"), "Database DSN")
	storageProvider := fs.String("storage", envOr("PORTFOLIO_STORAGE", "bun"), "Content storage provider (bun or memory)")
	assetsRoot := fs.String("assets-root", envOr("PORTFOLIO_ASSETS_ROOT", "data/uploads"), "Filesystem root for uploaded assets")
	assetsBaseURL := fs.String("assets-base-url", envOr("PORTFOLIO_ASSETS_BASE_URL", "/uploads"), "Public base URL for uploaded assets")
	baseURL := fs.String("base-url", os.Getenv("PORTFOLIO_BASE_URL"), "Public base URL for redirects (empty for relative)")
	fixturePath := fs.String("seed-fixture", os.Getenv("PORTFOLIO_SEED_FIXTURE"), "Optional JSON seed fixture path")
	logLevel := fs.String("log-level", envOr("PORTFOLIO_LOG_LEVEL", "info"), "Log level")
	logFormat := fs.String("log-format", envOr("PORTFOLIO_LOG_FORMAT", "console"), "Log format (json, console, pretty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := portfolio.DefaultConfig()
	cfg.BaseURL = *baseURL
	cfg.HTTP.Addr = *addr
	cfg.Storage.Provider = *storageProvider
	cfg.Database.Driver = *driver
	cfg.Database.DSN = *dsn
	cfg.Assets.Root = *assetsRoot
	cfg.Assets.PublicBaseURL = *assetsBaseURL
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []portfolio.Option{}
	var db *bun.DB
	if cfg.Storage.Provider == "bun" {
		var err error
		db, err = openDatabase(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		opts = append(opts, portfolio.WithDB(db))
	}

	module, err := portfolio.New(cfg, opts...)
	if err != nil {
		return err
	}

	if db != nil {
		if err := portfolio.RunMigrations(ctx, db); err != nil {
			return err
		}
	}

	var fixture []byte
	if *fixturePath != "" {
		fixture, err = os.ReadFile(*fixturePath)
		if err != nil {
			return fmt.Errorf("read seed fixture: %w", err)
		}
	}
	if err := module.Seed(ctx, fixture); err != nil {
		return err
	}

	handler, err := module.Handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		module.Logger("server").Info("listening", "addr", cfg.HTTP.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func openDatabase(driver, dsn string) (*bun.DB, error) {
	switch driver {
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
