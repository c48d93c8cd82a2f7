// internal/app/system/storage/local.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores objects on the filesystem under a base directory and serves
// them under a URL prefix. Used for development and tests.
type Local struct {
	basePath string
	baseURL  string
}

// NewLocal returns a Local store rooted at basePath. baseURL is the URL
// prefix the files are served under (e.g. "/files").
func NewLocal(basePath, baseURL string) *Local {
	return &Local{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

func (l *Local) fullPath(path string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(path))
}

// Put writes the object to disk, creating parent directories as needed.
func (l *Local) Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error {
	dst := l.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create object file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("write object: %w", err)
	}
	return f.Close()
}

// Delete removes the object file if it exists.
func (l *Local) Delete(ctx context.Context, path string) error {
	err := os.Remove(l.fullPath(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// URL returns the serving URL for the object.
func (l *Local) URL(path string) string {
	return l.baseURL + "/" + strings.TrimPrefix(path, "/")
}
