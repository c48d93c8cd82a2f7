// internal/app/features/spa/handler.go

// Package spa serves the built single-page front end: real files when they
// exist, index.html for everything else so client-side routing works after
// a hard reload.
package spa

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Handler serves the front-end build at dir. With an empty dir it responds
// 404 for everything, which keeps API-only deployments working.
func Handler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(r.URL.Path, "/")))
		if info, err := os.Stat(name); err == nil && !info.IsDir() &&
			strings.HasPrefix(name, filepath.Clean(dir)+string(os.PathSeparator)) {
			http.ServeFile(w, r, name)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}
