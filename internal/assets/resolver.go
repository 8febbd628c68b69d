// Package assets resolves asset specifications into ordered path lists and
// renders them as HTML include tags, optionally cache-busted with a content
// digest.
package assets

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
	"git.home.luguber.info/inful/htmlinject/internal/logfields"
)

// Kind identifies the asset flavor an include tag is rendered for.
type Kind string

const (
	KindScript     Kind = "script"
	KindStylesheet Kind = "stylesheet"
)

// Extension returns the file extension used when filtering directory entries.
func (k Kind) Extension() string {
	if k == KindStylesheet {
		return ".css"
	}
	return ".js"
}

// Resolver turns an asset specification (glob, directory, or file) into an
// ordered sequence of paths with the configured prefix stripped.
type Resolver struct {
	ignorePrefix string
}

// NewResolver creates a resolver. ignorePrefix, when non-empty, is removed
// from the start of every resolved path before any further processing.
func NewResolver(ignorePrefix string) *Resolver {
	return &Resolver{ignorePrefix: ignorePrefix}
}

// Resolve expands spec into paths. Glob syntax is expanded in pattern order,
// a directory yields its immediate entries with the kind's extension in
// lexical order, and a regular file yields itself. Anything else is a typed
// not-found error that terminates the run.
func (r *Resolver) Resolve(spec string, kind Kind) ([]string, error) {
	paths, err := r.enumerate(spec, kind)
	if err != nil {
		return nil, err
	}

	if r.ignorePrefix != "" {
		for i, p := range paths {
			paths[i] = strings.TrimPrefix(p, r.ignorePrefix)
		}
	}

	slog.Debug("Resolved asset specification",
		logfields.Pattern(spec), logfields.Kind(string(kind)), logfields.Count(len(paths)))
	return paths, nil
}

func (r *Resolver) enumerate(spec string, kind Kind) ([]string, error) {
	if strings.ContainsAny(spec, "*?[") {
		matches, err := filepath.Glob(spec)
		if err == nil && len(matches) > 0 {
			return matches, nil
		}
		// A bad or empty pattern falls through to the stat checks below.
	}

	info, err := os.Stat(spec)
	if err != nil {
		return nil, ierrors.AssetPathNotFound(spec, string(kind))
	}

	if info.IsDir() {
		entries, err := os.ReadDir(spec)
		if err != nil {
			return nil, ierrors.AssetReadFailed(spec, err)
		}
		var paths []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), kind.Extension()) {
				continue
			}
			paths = append(paths, filepath.Join(spec, entry.Name()))
		}
		return paths, nil
	}

	return []string{spec}, nil
}
