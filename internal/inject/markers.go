// Package inject implements the marker-based substitution engine: ordered
// text replacement passes over one document buffer, locating injection
// regions between HTML-comment markers and stripping conditional blocks.
//
// Regions are matched by textual proximity only. The engine pairs each
// opening marker with the nearest following closer via non-greedy matching
// and relies on pass ordering when different inject kinds share the same
// endinject token. There is no nesting model and no well-formedness
// validation.
package inject

import (
	"fmt"
	"regexp"
)

// Marker literals. Matching is literal string matching; there are no
// escaping rules.
const (
	MarkerInjectJS        = "<!-- inject:js -->"
	MarkerInjectCSS       = "<!-- inject:css -->"
	MarkerInjectAppHashes = "<!-- inject:apphashes -->"
	MarkerInjectGitHash   = "<!-- inject:git-hash -->"
	MarkerEndInject       = "<!-- endinject -->"
	MarkerEndRemove       = "<!-- endremove -->"
)

// RemoveMarker renders the opening marker for a removal block with the
// given condition key.
func RemoveMarker(key string) string {
	return fmt.Sprintf("<!-- remove:%s -->", key)
}

// regionPattern matches every non-overlapping region between open and close,
// capturing the inner content. (?s) lets regions span lines; non-greedy
// matching stops at the nearest closer.
func regionPattern(open, close string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(open) + `(.*?)` + regexp.QuoteMeta(close))
}
