package assets

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/goliatone/go-portfolio/pkg/storage"
	"github.com/google/uuid"
)

// Asset categories. Each category maps to its own bucket with its own type
// and size constraints.
const (
	CategoryProjects = "projects"
	CategoryAbout    = "about"
	CategoryResumes  = "resumes"
)

// CategoryRule describes the constraints enforced for one asset category.
type CategoryRule struct {
	Bucket       string
	MaxSize      int64
	ContentTypes map[string]string
}

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var documentContentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

func defaultRules() map[string]CategoryRule {
	return map[string]CategoryRule{
		CategoryProjects: {
			Bucket:       "project-images",
			MaxSize:      5 << 20,
			ContentTypes: imageContentTypes,
		},
		CategoryAbout: {
			Bucket:       "about-images",
			MaxSize:      2 << 20,
			ContentTypes: imageContentTypes,
		},
		CategoryResumes: {
			Bucket:       "resumes",
			MaxSize:      10 << 20,
			ContentTypes: documentContentTypes,
		},
	}
}

// UploadRequest carries an inbound file for storage.
type UploadRequest struct {
	Category    string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ReplaceRequest uploads a new file and then removes the previous one. The
// removal is best effort: a stale previous object never blocks the new upload
// from succeeding.
type ReplaceRequest struct {
	Upload      UploadRequest
	PreviousURL string
}

// Asset is a stored object addressable by its public URL.
type Asset struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// Service manages the lifecycle of uploaded binary assets.
type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*Asset, error)
	Remove(ctx context.Context, publicURL string) error
	Replace(ctx context.Context, req ReplaceRequest) (*Asset, error)
}

// ServiceOption configures the asset service.
type ServiceOption func(*service)

// WithClock overrides the clock used for object key prefixes.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the uniqueness suffix on object keys.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger for upload and cleanup outcomes.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRules replaces the category rule set.
func WithRules(rules map[string]CategoryRule) ServiceOption {
	return func(s *service) {
		if len(rules) > 0 {
			s.rules = rules
		}
	}
}

type service struct {
	store  storage.ObjectStore
	rules  map[string]CategoryRule
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs the asset service over an object store.
func NewService(store storage.ObjectStore, opts ...ServiceOption) Service {
	s := &service{
		store:  store,
		rules:  defaultRules(),
		now:    func() time.Time { return time.Now().UTC() },
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload validates the file against its category constraints and stores it
// under a collision-free generated key. Validation happens before any
// provider call.
func (s *service) Upload(ctx context.Context, req UploadRequest) (*Asset, error) {
	rule, err := s.rule(req.Category)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return nil, ErrFileRequired
	}

	contentType := normalizeContentType(req.ContentType)
	ext, ok := rule.ContentTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, contentType)
	}
	if req.Size <= 0 {
		return nil, ErrFileRequired
	}
	if req.Size > rule.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes over %d limit", ErrFileTooLarge, req.Size, rule.MaxSize)
	}

	key := s.objectKey(req.Category, req.Filename, ext)
	if err := s.store.Put(ctx, storage.PutInput{
		Bucket:      rule.Bucket,
		Key:         key,
		ContentType: contentType,
		Size:        req.Size,
		Body:        req.Body,
	}); err != nil {
		return nil, &UploadFailedError{Category: req.Category, Key: key, Err: err}
	}

	url, err := s.store.PublicURL(rule.Bucket, key)
	if err != nil {
		return nil, &UploadFailedError{Category: req.Category, Key: key, Err: err}
	}

	s.logger.Info("asset uploaded", "category", req.Category, "key", key, "size", req.Size)
	return &Asset{
		Category: req.Category,
		Key:      key,
		URL:      url,
		Size:     req.Size,
	}, nil
}

// Remove deletes the object addressed by its public URL. Unknown URLs are
// treated as already removed.
func (s *service) Remove(ctx context.Context, publicURL string) error {
	bucket, key, ok := s.locate(publicURL)
	if !ok {
		s.logger.Warn("asset url does not match any category, skipping removal", "url", publicURL)
		return nil
	}
	if err := s.store.Delete(ctx, bucket, key); err != nil {
		return fmt.Errorf("assets: remove %s/%s: %w", bucket, key, err)
	}
	s.logger.Info("asset removed", "bucket", bucket, "key", key)
	return nil
}

// Replace uploads the new file first, then removes the previous object. A
// failed upload leaves the previous object untouched; a failed removal is
// logged and swallowed so the replacement still succeeds.
func (s *service) Replace(ctx context.Context, req ReplaceRequest) (*Asset, error) {
	asset, err := s.Upload(ctx, req.Upload)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.PreviousURL) != "" {
		if err := s.Remove(ctx, req.PreviousURL); err != nil {
			s.logger.Warn("stale asset cleanup failed", "url", req.PreviousURL, "error", err)
		}
	}
	return asset, nil
}

func (s *service) rule(category string) (CategoryRule, error) {
	rule, ok := s.rules[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return CategoryRule{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return rule, nil
}

// objectKey builds a key that cannot collide across repeated uploads of the
// same filename: <category>/<utc timestamp>-<uuid><ext>.
func (s *service) objectKey(category, filename, fallbackExt string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = fallbackExt
	}
	stamp := s.now().Format("20060102T150405")
	return fmt.Sprintf("%s/%s-%s%s", strings.ToLower(strings.TrimSpace(category)), stamp, s.id().String(), ext)
}

// locate maps a public URL back to its bucket and key by matching the
// category prefix inside the URL path.
func (s *service) locate(publicURL string) (bucket, key string, ok bool) {
	trimmed := strings.TrimSpace(publicURL)
	if trimmed == "" {
		return "", "", false
	}
	for category, rule := range s.rules {
		marker := "/" + category + "/"
		idx := strings.LastIndex(trimmed, marker)
		if idx < 0 {
			continue
		}
		return rule.Bucket, category + "/" + trimmed[idx+len(marker):], true
	}
	return "", "", false
}

func normalizeContentType(value string) string {
	contentType := strings.ToLower(strings.TrimSpace(value))
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	return contentType
}

// Remover adapts the service into the best-effort cleanup contract used by
// content mutations: failures are logged, never returned.
type Remover struct {
	Service Service
	Logger  interfaces.Logger
}

// NewRemover wraps the service for best-effort cleanup.
func NewRemover(svc Service, logger interfaces.Logger) *Remover {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Remover{Service: svc, Logger: logger}
}

func (r *Remover) Remove(ctx context.Context, publicURL string) {
	if r == nil || r.Service == nil {
		return
	}
	if err := r.Service.Remove(ctx, publicURL); err != nil {
		r.Logger.Warn("asset cleanup failed", "url", publicURL, "error", err)
	}
}
