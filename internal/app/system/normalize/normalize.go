// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email trims whitespace and lowercases an email address so lookups and the
// unique index see one canonical form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}
