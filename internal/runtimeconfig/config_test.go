package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-portfolio/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsUnsupportedDefaultLocale(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = "fr"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDefaultLocaleUnsupported) {
		t.Fatalf("expected ErrDefaultLocaleUnsupported, got %v", err)
	}
}

func TestValidateRequiresDSNForBunStorage(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Database.DSN = "  "
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDatabaseDSNRequired) {
		t.Fatalf("expected ErrDatabaseDSNRequired, got %v", err)
	}
}

func TestValidateRejectsUnknownProviders(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "redis"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}

	cfg = runtimeconfig.DefaultConfig()
	cfg.Assets.Provider = "s3"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrAssetsProviderUnknown) {
		t.Fatalf("expected ErrAssetsProviderUnknown, got %v", err)
	}
}

func TestValidateRequiresFilesystemRoot(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Assets.Root = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrAssetsRootRequired) {
		t.Fatalf("expected ErrAssetsRootRequired, got %v", err)
	}
}

func TestValidateLoggingFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg = runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestValidateMarkdownRequiresContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrMarkdownContentDirRequired) {
		t.Fatalf("expected ErrMarkdownContentDirRequired, got %v", err)
	}
}
