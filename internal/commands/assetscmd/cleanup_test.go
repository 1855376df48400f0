package assetscmd_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-portfolio/internal/assets"
	"github.com/goliatone/go-portfolio/internal/commands/assetscmd"
	"github.com/goliatone/go-portfolio/pkg/storage"
)

func TestRemoveAssetDeletesStoredObject(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := assets.NewService(store)

	asset, err := svc.Upload(context.Background(), assets.UploadRequest{
		Category:    assets.CategoryProjects,
		Filename:    "screenshot.png",
		ContentType: "image/png",
		Size:        512,
		Body:        strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	handler := assetscmd.NewRemoveAssetHandler(svc, nil)
	if err := handler.Execute(context.Background(), assetscmd.RemoveAssetCommand{URL: asset.URL}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if store.Has("project-images", asset.Key) {
		t.Fatalf("expected %q to be removed from store", asset.Key)
	}
}

func TestRemoveAssetRequiresURL(t *testing.T) {
	store := storage.NewMemoryStore("https://cdn.example.com")
	handler := assetscmd.NewRemoveAssetHandler(assets.NewService(store), nil)

	if err := handler.Execute(context.Background(), assetscmd.RemoveAssetCommand{}); err == nil {
		t.Fatal("expected validation error for missing url")
	}
}
