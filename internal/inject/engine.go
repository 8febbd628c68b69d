package inject

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/htmlinject/internal/logfields"
)

// Sources carries the replacement content for each injection kind. A nil
// source leaves its regions' content byte-identical (pass-through law).
// RemoveKey is always applied; the zero value strips only blocks literally
// tagged "remove:".
type Sources struct {
	JS        *string
	CSS       *string
	AppHashes *string
	GitHash   *string
	RemoveKey string
}

// stage is a discrete substitution pass over the document.
type stage struct {
	name  string
	apply func(doc string) string
}

// Engine applies the substitution passes in their fixed order: js, css,
// apphashes, git-hash, then removal. Removal runs last so removal blocks may
// straddle injection regions without interfering with earlier passes.
type Engine struct {
	stages []stage
}

// NewEngine builds the pass sequence for the given sources.
func NewEngine(src Sources) *Engine {
	return &Engine{stages: []stage{
		{name: "inject:js", apply: replaceRegions(MarkerInjectJS, MarkerEndInject, src.JS)},
		{name: "inject:css", apply: replaceRegions(MarkerInjectCSS, MarkerEndInject, src.CSS)},
		{name: "inject:apphashes", apply: replaceRegions(MarkerInjectAppHashes, MarkerEndInject, src.AppHashes)},
		{name: "inject:git-hash", apply: replaceMarker(MarkerInjectGitHash, src.GitHash)},
		{name: "remove", apply: removeBlocks(src.RemoveKey)},
	}}
}

// Run executes every pass over the document and returns the result.
func (e *Engine) Run(doc string) string {
	for _, st := range e.stages {
		before := len(doc)
		doc = st.apply(doc)
		slog.Debug("Applied substitution pass",
			logfields.Stage(st.name), slog.Int("delta", len(doc)-before))
	}
	return doc
}

// replaceRegions substitutes the inner content of every region between open
// and close, preserving the markers verbatim. A nil replacement is the
// pass-through: the region content survives unchanged.
func replaceRegions(open, close string, replacement *string) func(string) string {
	if replacement == nil {
		return func(doc string) string { return doc }
	}
	pattern := regionPattern(open, close)
	substituted := open + *replacement + close
	return func(doc string) string {
		return pattern.ReplaceAllStringFunc(doc, func(string) string { return substituted })
	}
}

// replaceMarker substitutes a single unpaired marker entirely.
func replaceMarker(marker string, replacement *string) func(string) string {
	if replacement == nil {
		return func(doc string) string { return doc }
	}
	value := *replacement
	return func(doc string) string {
		return strings.ReplaceAll(doc, marker, value)
	}
}

// removeBlocks deletes every block whose opening marker carries the
// configured key, markers included.
func removeBlocks(key string) func(string) string {
	pattern := regionPattern(RemoveMarker(key), MarkerEndRemove)
	return func(doc string) string {
		return pattern.ReplaceAllString(doc, "")
	}
}
