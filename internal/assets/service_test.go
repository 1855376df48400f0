package assets_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-portfolio/internal/assets"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/goliatone/go-portfolio/pkg/storage"
	"github.com/google/uuid"
)

func newTestService(t *testing.T, store *storage.MemoryStore) assets.Service {
	t.Helper()
	var seq byte
	return assets.NewService(store,
		assets.WithClock(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
		assets.WithIDGenerator(func() uuid.UUID {
			seq++
			id := uuid.MustParse("3b9d4b40-9c5a-4f64-9d92-0f39c1b7a000")
			id[15] = seq
			return id
		}),
	)
}

func TestUploadStoresObjectUnderCategoryPrefix(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := newTestService(t, store)

	asset, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryProjects,
		Filename:    "screenshot.png",
		ContentType: "image/png",
		Size:        1024,
		Body:        strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(asset.Key, "projects/") {
		t.Fatalf("expected category prefix, got %q", asset.Key)
	}
	if !strings.HasSuffix(asset.Key, ".png") {
		t.Fatalf("expected extension preserved, got %q", asset.Key)
	}
	if !store.Has("project-images", asset.Key) {
		t.Fatalf("expected object %q in store", asset.Key)
	}
	if asset.URL != "https://cdn.example.com/project-images/"+asset.Key {
		t.Fatalf("unexpected public url %q", asset.URL)
	}
}

func TestUploadRejectsDisallowedContentType(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := newTestService(t, store)

	_, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryProjects,
		Filename:    "malware.exe",
		ContentType: "application/octet-stream",
		Size:        1024,
		Body:        strings.NewReader("bytes"),
	})
	if !errors.Is(err, assets.ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("rejected upload must not reach the store")
	}
}

func TestUploadRejectsOversizedFileBeforeProvider(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	store.FailPut = errors.New("provider must not be called")
	svc := newTestService(t, store)

	_, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryAbout,
		Filename:    "portrait.jpg",
		ContentType: "image/jpeg",
		Size:        3 << 20,
		Body:        strings.NewReader("bytes"),
	})
	if !errors.Is(err, assets.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadResumeAllowsDocumentTypes(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := newTestService(t, store)

	asset, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryResumes,
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        9 << 20,
		Body:        strings.NewReader("pdf-bytes"),
	})
	if err != nil {
		t.Fatalf("upload resume: %v", err)
	}
	if !store.Has("resumes", asset.Key) {
		t.Fatalf("expected resume %q stored", asset.Key)
	}
}

func TestUploadWrapsProviderFailure(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	store.FailPut = errors.New("bucket unavailable")
	svc := newTestService(t, store)

	_, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryProjects,
		Filename:    "shot.webp",
		ContentType: "image/webp",
		Size:        512,
		Body:        strings.NewReader("bytes"),
	})
	if !assets.IsUploadFailed(err) {
		t.Fatalf("expected UploadFailedError, got %v", err)
	}
}

func TestReplaceFailedUploadKeepsPreviousObject(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := newTestService(t, store)

	previous, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryProjects,
		Filename:    "old.png",
		ContentType: "image/png",
		Size:        100,
		Body:        strings.NewReader("old"),
	})
	if err != nil {
		t.Fatalf("seed upload: %v", err)
	}

	store.FailPut = errors.New("bucket unavailable")
	_, err = svc.Replace(context.Background(), assets.ReplaceRequest{
		Upload: assets.UploadRequest{
			Category:    assets.CategoryProjects,
			Filename:    "new.png",
			ContentType: "image/png",
			Size:        100,
			Body:        strings.NewReader("new"),
		},
		PreviousURL: previous.URL,
	})
	if !assets.IsUploadFailed(err) {
		t.Fatalf("expected UploadFailedError, got %v", err)
	}
	if !store.Has("project-images", previous.Key) {
		t.Fatal("previous object must survive a failed replacement upload")
	}
}

func TestReplaceSucceedsWhenStaleRemovalFails(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := newTestService(t, store)

	previous, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryProjects,
		Filename:    "old.png",
		ContentType: "image/png",
		Size:        100,
		Body:        strings.NewReader("old"),
	})
	if err != nil {
		t.Fatalf("seed upload: %v", err)
	}

	store.FailDelete = errors.New("object locked")
	asset, err := svc.Replace(context.Background(), assets.ReplaceRequest{
		Upload: assets.UploadRequest{
			Category:    assets.CategoryProjects,
			Filename:    "new.png",
			ContentType: "image/png",
			Size:        100,
			Body:        strings.NewReader("new"),
		},
		PreviousURL: previous.URL,
	})
	if err != nil {
		t.Fatalf("replace must tolerate stale cleanup failure, got %v", err)
	}
	if asset == nil || asset.URL == "" {
		t.Fatal("expected new asset from replacement")
	}
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Trace(msg string, args ...any) {}
func (l *recordingLogger) Debug(msg string, args ...any) {}
func (l *recordingLogger) Info(msg string, args ...any)  {}
func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, msg)
}
func (l *recordingLogger) Error(msg string, args ...any)                  {}
func (l *recordingLogger) Fatal(msg string, args ...any)                  {}
func (l *recordingLogger) WithContext(ctx context.Context) interfaces.Logger { return l }

func TestRemoveUnknownURLLogsAndNoOps(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	logger := &recordingLogger{}
	svc := assets.NewService(store, assets.WithLogger(logger))

	if err := svc.Remove(context.Background(), "https://elsewhere.example.com/unrelated/file.png"); err != nil {
		t.Fatalf("expected no-op for unknown url, got %v", err)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("expected one warning for unparseable url, got %d", len(logger.warnings))
	}
}

func TestRemoveDeletesStoredObject(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := newTestService(t, store)

	asset, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryAbout,
		Filename:    "portrait.webp",
		ContentType: "image/webp",
		Size:        100,
		Body:        strings.NewReader("img"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Remove(context.Background(), asset.URL); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.Has("about-images", asset.Key) {
		t.Fatal("expected object deleted")
	}
}
