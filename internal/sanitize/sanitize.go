// Package sanitize neutralizes untrusted markup in user-supplied text.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// UGC policy: harmless formatting markup survives, anything script-bearing
// is stripped. A policy instance is safe for concurrent use.
var policy = bluemonday.UGCPolicy()

// Clean strips script-bearing markup from s. Cleaning already-clean text
// never reintroduces executable markup.
func Clean(s string) string {
	return policy.Sanitize(s)
}
