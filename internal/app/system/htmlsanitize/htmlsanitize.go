// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from rich-text fields before
// they are persisted. Job descriptions arrive as editor-generated HTML and
// are rendered verbatim by the front end, so everything a browser would
// execute has to go here.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Editors emit class attributes on structural elements; keep them so
	// styled descriptions survive the round trip.
	p.AllowAttrs("class").OnElements(
		"p", "span", "div", "ul", "ol", "li",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	return p
}

// Sanitize returns s with scripts, event handlers, and unsafe URLs removed.
// Safe formatting, links, lists, and tables pass through unchanged.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
