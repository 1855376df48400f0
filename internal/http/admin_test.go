package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	apihttp "github.com/goliatone/go-portfolio/internal/http"

	"github.com/goliatone/go-portfolio/internal/assets"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/pkg/storage"
)

func newAdminServer(t *testing.T, service content.Service, assetSvc assets.Service) *http.ServeMux {
	t.Helper()
	api := apihttp.NewAdminAPI(
		apihttp.WithAdminContentService(service),
		apihttp.WithAdminAssetService(assetSvc),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register admin api: %v", err)
	}
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, target string, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAdminCreateSkillRejectsMissingIcon(t *testing.T) {
	service := content.NewService(content.MemoryRepositories())
	mux := newAdminServer(t, service, nil)

	rec := postJSON(t, mux, "/api/admin/skills", `{"name": "Go", "gradient_from": "#00ADD8"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "validation_failed" {
		t.Fatalf("expected validation_failed, got %q", body.Error)
	}
	if _, ok := body.Fields["icon"]; !ok {
		t.Fatalf("expected icon field error, got %v", body.Fields)
	}
}

func TestAdminCreateSkillRejectsBadGradient(t *testing.T) {
	service := content.NewService(content.MemoryRepositories())
	mux := newAdminServer(t, service, nil)

	rec := postJSON(t, mux, "/api/admin/skills", `{"name": "Go", "icon": "go", "gradient_from": "blue"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminPublishToggleRoundTrip(t *testing.T) {
	repos := content.MemoryRepositories()
	service := content.NewService(repos)
	mux := newAdminServer(t, service, nil)

	created, err := service.CreateProject(context.Background(), content.CreateProjectRequest{
		Translations: []content.TranslationInput{{Locale: "en", Title: "Taxi Booking App"}},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	rec := postJSON(t, mux, "/api/admin/projects/"+created.ID.String()+"/publish", `{"published": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated content.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !updated.IsPublished {
		t.Fatal("expected project published")
	}

	// Missing published flag is a validation error, not a default-to-false.
	rec = postJSON(t, mux, "/api/admin/projects/"+created.ID.String()+"/publish", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing flag, got %d", rec.Code)
	}
}

func multipartUpload(t *testing.T, field, filename, contentType string, data []byte, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	for key, value := range extra {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestAdminUploadReplacesPreviousAsset(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	assetSvc := assets.NewService(store)
	service := content.NewService(content.MemoryRepositories())
	mux := newAdminServer(t, service, assetSvc)

	previous, err := assetSvc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryProjects,
		Filename:    "old.png",
		ContentType: "image/png",
		Size:        4,
		Body:        bytes.NewReader([]byte{1, 2, 3, 4}),
	})
	if err != nil {
		t.Fatalf("seed previous asset: %v", err)
	}

	body, contentType := multipartUpload(t, "image", "new.png", "image/png", []byte{5, 6, 7, 8}, map[string]string{
		"oldImageUrl": previous.URL,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads/projects", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var uploaded assets.Asset
	if err := json.Unmarshal(rec.Body.Bytes(), &uploaded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if uploaded.URL == "" || uploaded.URL == previous.URL {
		t.Fatalf("expected a fresh public URL, got %q", uploaded.URL)
	}
	if store.Has("project-images", previous.Key) {
		t.Fatal("expected previous object removed after replace")
	}
	if !store.Has("project-images", uploaded.Key) {
		t.Fatal("expected new object stored")
	}
}

func TestAdminUploadRejectsWrongContentType(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	assetSvc := assets.NewService(store)
	service := content.NewService(content.MemoryRepositories())
	mux := newAdminServer(t, service, assetSvc)

	body, contentType := multipartUpload(t, "file", "cv.exe", "application/octet-stream", []byte{1}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads/resumes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.Len() != 0 {
		t.Fatal("expected nothing stored for rejected upload")
	}
}
