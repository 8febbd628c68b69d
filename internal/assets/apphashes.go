package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// hashPattern matches filenames of the shape name.version.js embedded
// anywhere in a rendered tag line. First match wins; filenames with extra
// dots keep the narrowest leftmost interpretation.
var hashPattern = regexp.MustCompile(`(\w+)\.([a-zA-Z0-9]+)\.js`)

// HashEntry is a (logical name, version token) pair extracted from a
// rendered script tag.
type HashEntry struct {
	Name    string
	Version string
}

// ExtractHashes derives the name->version entries from rendered script tag
// lines, in input order. Lines without a matching filename are dropped.
func ExtractHashes(tags []string) []HashEntry {
	var entries []HashEntry
	for _, tag := range tags {
		m := hashPattern.FindStringSubmatch(tag)
		if m == nil {
			continue
		}
		entries = append(entries, HashEntry{Name: m[1], Version: m[2]})
	}
	return entries
}

// RenderAppHashes wraps the extracted entries in the inline script exposing
// the client-visible apphashes table, so a served page can map logical asset
// names to their current cache-busted version without a network round trip.
func RenderAppHashes(tags []string) string {
	entries := ExtractHashes(tags)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("\"%s\":\"%s\"", e.Name, e.Version))
	}
	return "<script>\n    var apphashes = {\n    " + strings.Join(lines, ",\n") + "\n    }\n</script>"
}
