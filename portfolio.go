// Package portfolio wires the trilingual portfolio content backend: localized
// content services over bun or in-memory storage, publish-gated public reads,
// asset lifecycle management, and the authenticated admin HTTP surface.
package portfolio

import (
	"errors"
	"net/http"
	"strings"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-portfolio/internal/assets"
	"github.com/goliatone/go-portfolio/internal/auth"
	"github.com/goliatone/go-portfolio/internal/content"
	apihttp "github.com/goliatone/go-portfolio/internal/http"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/logging/gologger"
	"github.com/goliatone/go-portfolio/pkg/activity"
	"github.com/goliatone/go-portfolio/pkg/activity/usersink"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/goliatone/go-portfolio/pkg/storage"
)

// ErrDatabaseRequired indicates bun storage was selected without a database
// connection (use WithDB).
var ErrDatabaseRequired = errors.New("portfolio: bun storage requires a database connection")

// ContentService exports the content service contract for consumers of the
// portfolio package.
type ContentService = content.Service

// AssetService exports the asset lifecycle contract.
type AssetService = assets.Service

// SessionProvider exports the auth backend contract.
type SessionProvider = interfaces.SessionProvider

// Module is the top level portfolio runtime facade.
type Module struct {
	cfg Config

	db            *bun.DB
	logs          interfaces.LoggerProvider
	store         storage.ObjectStore
	sessions      interfaces.SessionProvider
	notifier      activity.Notifier
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	repos       content.Repositories
	reposWired  bool
	contentSvc  content.Service
	assetSvc    assets.Service
	adminRoutes *apihttp.AdminRoutes
}

// Option overrides a module dependency before wiring.
type Option func(*Module)

// WithDB provides the bun connection used when storage provider is "bun".
func WithDB(db *bun.DB) Option {
	return func(m *Module) { m.db = db }
}

// WithLoggerProvider overrides the logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) { m.logs = provider }
}

// WithObjectStore overrides the asset object store.
func WithObjectStore(store storage.ObjectStore) Option {
	return func(m *Module) { m.store = store }
}

// WithSessionProvider overrides the auth backend.
func WithSessionProvider(provider interfaces.SessionProvider) Option {
	return func(m *Module) { m.sessions = provider }
}

// WithActivityNotifier overrides the audit notifier.
func WithActivityNotifier(notifier activity.Notifier) Option {
	return func(m *Module) { m.notifier = notifier }
}

// WithActivitySink routes audit events into a go-users activity sink.
func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(m *Module) { m.notifier = usersink.Hook{Sink: sink} }
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(m *Module) {
		m.cacheService = service
		m.keySerializer = serializer
	}
}

// WithRepositories overrides the storage bundle entirely (tests, custom
// backends).
func WithRepositories(repos content.Repositories) Option {
	return func(m *Module) {
		m.repos = repos
		m.reposWired = true
	}
}

// New constructs a portfolio module from the configuration and optional
// dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if err := m.configureLogging(); err != nil {
		return nil, err
	}
	m.configureCacheDefaults()
	if err := m.configureRepositories(); err != nil {
		return nil, err
	}
	if err := m.configureAssets(); err != nil {
		return nil, err
	}
	m.configureSessions()
	m.configureContent()
	m.adminRoutes = apihttp.NewAdminRoutes(cfg.BaseURL)
	return m, nil
}

func (m *Module) configureLogging() error {
	if m.logs != nil || !m.cfg.Features.Logger {
		return nil
	}
	logCfg := gologger.Config{
		Level:     m.cfg.Logging.Level,
		Format:    m.cfg.Logging.Format,
		AddSource: m.cfg.Logging.AddSource,
		Focus:     m.cfg.Logging.Focus,
	}
	if strings.EqualFold(strings.TrimSpace(m.cfg.Logging.Provider), "console") && logCfg.Format == "" {
		logCfg.Format = "console"
	}
	provider, err := gologger.NewProvider(logCfg)
	if err != nil {
		return err
	}
	m.logs = provider
	return nil
}

func (m *Module) configureCacheDefaults() {
	if !m.cfg.Cache.Enabled {
		return
	}
	if m.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		if m.cfg.Cache.DefaultTTL > 0 {
			cacheCfg.TTL = m.cfg.Cache.DefaultTTL
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			m.cacheService = service
		}
	}
	if m.cacheService != nil && m.keySerializer == nil {
		m.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (m *Module) configureRepositories() error {
	if m.reposWired {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(m.cfg.Storage.Provider)) {
	case "memory":
		m.repos = content.MemoryRepositories()
	default:
		if m.db == nil {
			return ErrDatabaseRequired
		}
		m.repos = content.BunRepositoriesWithCache(m.db, m.cacheService, m.keySerializer)
	}
	return nil
}

func (m *Module) configureAssets() error {
	if m.store == nil {
		switch strings.ToLower(strings.TrimSpace(m.cfg.Assets.Provider)) {
		case "memory":
			m.store = storage.NewMemoryStore(m.cfg.Assets.PublicBaseURL)
		default:
			store, err := storage.NewFilesystemStore(m.cfg.Assets.Root, m.cfg.Assets.PublicBaseURL)
			if err != nil {
				return err
			}
			m.store = store
		}
	}
	m.assetSvc = assets.NewService(m.store,
		assets.WithLogger(logging.AssetsLogger(m.logs)),
	)
	return nil
}

func (m *Module) configureSessions() {
	if m.sessions == nil {
		m.sessions = auth.NewMemorySessionProvider(m.cfg.Auth.SessionTTL)
	}
}

func (m *Module) configureContent() {
	options := []content.ServiceOption{
		content.WithLogger(logging.ContentLogger(m.logs)),
		content.WithAssetRemover(assets.NewRemover(m.assetSvc, logging.AssetsLogger(m.logs))),
	}
	if m.notifier != nil {
		options = append(options, content.WithActivityNotifier(m.notifier))
	}
	m.contentSvc = content.NewService(m.repos, options...)
}

// Content returns the configured content service.
func (m *Module) Content() ContentService {
	return m.contentSvc
}

// Assets returns the configured asset service.
func (m *Module) Assets() AssetService {
	return m.assetSvc
}

// Sessions returns the configured session provider.
func (m *Module) Sessions() SessionProvider {
	return m.sessions
}

// DB returns the bun connection, if one was provided.
func (m *Module) DB() *bun.DB {
	return m.db
}

// Config returns the validated runtime configuration.
func (m *Module) Config() Config {
	return m.cfg
}

// Logger returns a module-scoped logger.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.logs, name)
}

// Handler assembles the HTTP surface: public API, admin API, and the access
// gate in front of both.
func (m *Module) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	public := apihttp.NewPublicAPI(
		apihttp.WithPublicBasePath(m.cfg.HTTP.PublicBase),
		apihttp.WithPublicContentService(m.contentSvc),
		apihttp.WithPublicSessionProvider(m.sessions),
	)
	if err := public.Register(mux); err != nil {
		return nil, err
	}

	admin := apihttp.NewAdminAPI(
		apihttp.WithAdminBasePath(m.cfg.HTTP.AdminBase),
		apihttp.WithAdminContentService(m.contentSvc),
		apihttp.WithAdminAssetService(m.assetSvc),
	)
	if err := admin.Register(mux); err != nil {
		return nil, err
	}

	if !m.cfg.HTTP.GateEnabled {
		return mux, nil
	}
	gate := apihttp.NewAccessGate(m.sessions, m.adminRoutes,
		apihttp.WithGateLogger(logging.HTTPLogger(m.logs)),
	)
	return gate.Wrap(mux), nil
}
