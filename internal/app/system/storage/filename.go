// internal/app/system/storage/filename.go
package storage

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces an uploaded filename to a safe object-key
// component: base name only, lowercased, with anything outside
// [a-z0-9._-] replaced by '-'.
func SanitizeFilename(name string) string {
	base := strings.ToLower(filepath.Base(name))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-.")
	if out == "" {
		return "file"
	}
	return out
}
