// Package storage defines the object storage contract the asset lifecycle
// builds on. Providers map buckets to containers in the backing service
// (filesystem directories, S3-style buckets, a managed storage API).
package storage

import (
	"context"
	"io"
)

// PutInput carries the binary payload and addressing for a stored object.
type PutInput struct {
	Bucket      string
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStore is the minimal provider surface required by the asset
// lifecycle: store a binary, delete it, and derive its public URL.
type ObjectStore interface {
	Put(ctx context.Context, in PutInput) error
	Delete(ctx context.Context, bucket, key string) error
	// PublicURL returns the stable public URL for an object. Providers that
	// cannot produce one return an empty string and an error; callers treat
	// that as an upload failure, never as silent success.
	PublicURL(bucket, key string) (string, error)
}
