package assets

import (
	"fmt"
	"strings"
)

// RenderTag wraps a (possibly cache-busted) path in the HTML element for its
// kind.
func RenderTag(kind Kind, path string) string {
	if kind == KindStylesheet {
		return fmt.Sprintf("<link rel=\"stylesheet\" href=\"%s\">", path)
	}
	return fmt.Sprintf("<script src=\"%s\"></script>", path)
}

// RenderBlock joins rendered tags into the replacement text for an injection
// region: each tag on its own tab-indented line, with a final newline+tab so
// the closing marker lands on a fresh indented line.
func RenderBlock(tags []string) string {
	var b strings.Builder
	for _, tag := range tags {
		b.WriteString("\n\t")
		b.WriteString(tag)
	}
	b.WriteString("\n\t")
	return b.String()
}

// RenderTags resolves, tags, and renders a full asset specification into the
// list of tag lines for one kind. The returned slice preserves resolver
// order end-to-end.
func RenderTags(resolver *Resolver, tagger *Tagger, spec string, kind Kind) ([]string, error) {
	paths, err := resolver.Resolve(spec, kind)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(paths))
	for _, path := range paths {
		tagged, err := tagger.Tag(path)
		if err != nil {
			return nil, err
		}
		tags = append(tags, RenderTag(kind, tagged))
	}
	return tags, nil
}
