package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MemoryStore is an in-process ObjectStore used for tests and local
// development.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string][]byte

	// FailPut and FailDelete force errors for failure-path tests.
	FailPut    error
	FailDelete error
}

// NewMemoryStore creates an empty in-memory object store. Public URLs are
// rooted at baseURL.
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: map[string][]byte{},
	}
}

func (s *MemoryStore) Put(ctx context.Context, input PutInput) error {
	if s.FailPut != nil {
		return s.FailPut
	}
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return fmt.Errorf("memory store: read body: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectRef(input.Bucket, input.Key)] = data
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, bucket, key string) error {
	if s.FailDelete != nil {
		return s.FailDelete
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectRef(bucket, key))
	return nil
}

func (s *MemoryStore) PublicURL(bucket, key string) (string, error) {
	return s.baseURL + "/" + bucket + "/" + key, nil
}

// Has reports whether an object exists, for test assertions.
func (s *MemoryStore) Has(bucket, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[objectRef(bucket, key)]
	return ok
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func objectRef(bucket, key string) string {
	return bucket + "/" + key
}
