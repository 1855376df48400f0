package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStore persists objects under a root directory, one subdirectory
// per bucket. Public URLs are rooted at baseURL.
type FilesystemStore struct {
	root    string
	baseURL string
}

// NewFilesystemStore creates a filesystem-backed object store.
func NewFilesystemStore(root, baseURL string) (*FilesystemStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("filesystem store: root directory required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("filesystem store: create root: %w", err)
	}
	return &FilesystemStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *FilesystemStore) Put(ctx context.Context, input PutInput) error {
	target, err := s.objectPath(input.Bucket, input.Key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("filesystem store: create bucket dir: %w", err)
	}

	file, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return fmt.Errorf("filesystem store: create temp file: %w", err)
	}
	tmp := file.Name()
	if _, err := io.Copy(file, input.Body); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("filesystem store: write object: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("filesystem store: close object: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("filesystem store: finalize object: %w", err)
	}
	return nil
}

func (s *FilesystemStore) Delete(ctx context.Context, bucket, key string) error {
	target, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("filesystem store: delete object: %w", err)
	}
	return nil
}

func (s *FilesystemStore) PublicURL(bucket, key string) (string, error) {
	return s.baseURL + "/" + bucket + "/" + key, nil
}

// objectPath resolves the on-disk location and rejects keys escaping the
// bucket directory.
func (s *FilesystemStore) objectPath(bucket, key string) (string, error) {
	if strings.TrimSpace(bucket) == "" || strings.TrimSpace(key) == "" {
		return "", errors.New("filesystem store: bucket and key required")
	}
	bucketDir := filepath.Join(s.root, filepath.Clean(bucket))
	target := filepath.Join(bucketDir, filepath.Clean("/"+key))
	if !strings.HasPrefix(target, bucketDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("filesystem store: invalid key %q", key)
	}
	return target, nil
}
