package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
)

// Tagger appends a content-derived cache-busting token to asset paths.
// Content is read from disk at render time, so rerunning after a file
// changed yields a different tag.
type Tagger struct {
	enabled bool
}

// NewTagger creates a tagger. When disabled, Tag returns paths unchanged.
func NewTagger(enabled bool) *Tagger {
	return &Tagger{enabled: enabled}
}

// Tag returns the path with "?etag=<hex digest>" appended, where the digest
// is the sha256 of the file's full content. Read failures terminate the run.
func (t *Tagger) Tag(path string) (string, error) {
	if !t.enabled {
		return path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ierrors.AssetReadFailed(path, err)
	}

	sum := sha256.Sum256(data)
	return path + "?etag=" + hex.EncodeToString(sum[:]), nil
}
