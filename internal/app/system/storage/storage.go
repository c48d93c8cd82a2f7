// internal/app/system/storage/storage.go

// Package storage abstracts where uploaded files live. Handlers depend on
// Store; the backend (local disk for development, S3 in production) is
// selected by configuration at startup.
package storage

import (
	"context"
	"io"
)

// PutOptions carries optional metadata for an upload.
type PutOptions struct {
	// ContentType is stored with the object and served back on download.
	ContentType string
}

// Store is an object store holding uploaded resumes and logos.
type Store interface {
	// Put streams the object to path, overwriting any existing object.
	Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error

	// Delete removes the object at path. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, path string) error

	// URL returns the stable public URL for the object at path.
	URL(path string) string
}
