package portfolio

import "github.com/goliatone/go-portfolio/internal/runtimeconfig"

var (
	ErrDefaultLocaleUnsupported   = runtimeconfig.ErrDefaultLocaleUnsupported
	ErrStorageProviderUnknown     = runtimeconfig.ErrStorageProviderUnknown
	ErrDatabaseDriverUnknown      = runtimeconfig.ErrDatabaseDriverUnknown
	ErrDatabaseDSNRequired        = runtimeconfig.ErrDatabaseDSNRequired
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid
	ErrAssetsProviderUnknown      = runtimeconfig.ErrAssetsProviderUnknown
	ErrAssetsRootRequired         = runtimeconfig.ErrAssetsRootRequired
	ErrSessionTTLInvalid          = runtimeconfig.ErrSessionTTLInvalid
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	DatabaseConfig = runtimeconfig.DatabaseConfig
	CacheConfig    = runtimeconfig.CacheConfig
	AssetsConfig   = runtimeconfig.AssetsConfig
	AuthConfig     = runtimeconfig.AuthConfig
	HTTPConfig     = runtimeconfig.HTTPConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	SeedConfig     = runtimeconfig.SeedConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
