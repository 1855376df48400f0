package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/i18n"
)

var ErrDefaultLocaleUnsupported = errors.New("portfolio config: default locale is not in the supported set")
var ErrStorageProviderUnknown = errors.New("portfolio config: storage provider is invalid")
var ErrDatabaseDSNRequired = errors.New("portfolio config: database dsn is required for bun storage")
var ErrDatabaseDriverUnknown = errors.New("portfolio config: database driver is invalid")
var ErrCacheTTLInvalid = errors.New("portfolio config: cache ttl must be zero or positive")
var ErrAssetsProviderUnknown = errors.New("portfolio config: assets provider is invalid")
var ErrAssetsRootRequired = errors.New("portfolio config: assets root directory is required for filesystem provider")
var ErrSessionTTLInvalid = errors.New("portfolio config: session ttl must be positive")
var ErrMarkdownContentDirRequired = errors.New("portfolio config: markdown content directory is required when markdown is enabled")
var ErrLoggingProviderRequired = errors.New("portfolio config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("portfolio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("portfolio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portfolio config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the portfolio
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	BaseURL       string
	Storage       StorageConfig
	Database      DatabaseConfig
	Cache         CacheConfig
	Assets        AssetsConfig
	Auth          AuthConfig
	HTTP          HTTPConfig
	Markdown      MarkdownConfig
	Seed          SeedConfig
	Features      Features
	Logging       LoggingConfig
}

// StorageConfig selects the content repository backend.
type StorageConfig struct {
	Provider string
}

// DatabaseConfig captures the bun connection settings.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// AssetsConfig selects the object store backing uploads.
type AssetsConfig struct {
	Provider      string
	Root          string
	PublicBaseURL string
}

// AuthConfig captures session behaviour for the in-process provider.
type AuthConfig struct {
	SessionTTL time.Duration
}

// HTTPConfig captures the server surface layout.
type HTTPConfig struct {
	Addr          string
	PublicBase    string
	AdminBase     string
	GateEnabled   bool
	TrustedOrigin string
}

// MarkdownConfig captures the project import behaviour.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
}

// SeedConfig captures bootstrap seeding behaviour.
type SeedConfig struct {
	Enabled     bool
	FixturePath string
}

// Features toggles module functionality.
type Features struct {
	Logger   bool
	Markdown bool
	Activity bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults: sqlite-backed storage, cached
// repositories, filesystem assets, gated admin surface.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: i18n.DefaultLocale,
		Storage: StorageConfig{
			Provider: "bun",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "file:portfolio.db?cache=shared&_fk=1",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Assets: AssetsConfig{
			Provider:      "filesystem",
			Root:          "data/uploads",
			PublicBaseURL: "/uploads",
		},
		Auth: AuthConfig{
			SessionTTL: time.Hour,
		},
		HTTP: HTTPConfig{
			Addr:        ":8080",
			PublicBase:  "/api",
			AdminBase:   "/api/admin",
			GateEnabled: true,
		},
		Markdown: MarkdownConfig{
			ContentDir: "content/projects",
		},
		Seed: SeedConfig{
			Enabled: true,
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if !i18n.IsSupported(cfg.DefaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, cfg.DefaultLocale)
	}
	switch normalize(cfg.Storage.Provider) {
	case "bun":
		switch normalize(cfg.Database.Driver) {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("%w: %s", ErrDatabaseDriverUnknown, cfg.Database.Driver)
		}
		if strings.TrimSpace(cfg.Database.DSN) == "" {
			return ErrDatabaseDSNRequired
		}
	case "memory":
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	switch normalize(cfg.Assets.Provider) {
	case "filesystem":
		if strings.TrimSpace(cfg.Assets.Root) == "" {
			return ErrAssetsRootRequired
		}
	case "memory":
	default:
		return fmt.Errorf("%w: %s", ErrAssetsProviderUnknown, cfg.Assets.Provider)
	}
	if cfg.Auth.SessionTTL <= 0 {
		return ErrSessionTTLInvalid
	}
	if cfg.Markdown.Enabled && strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
		return ErrMarkdownContentDirRequired
	}
	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
