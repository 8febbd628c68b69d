// Package revision resolves the current source-control commit identifier
// for build traceability stamps.
package revision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
)

// Resolve returns the HEAD commit hash of the repository enclosing path.
// The repository is detected by walking up from the path's directory. Any
// failure is terminal for the run; there is no fallback value and no retry.
func Resolve(path string) (string, error) {
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "", ierrors.RevisionLookupFailed(err)
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		head, herr := repo.Head()
		if herr != nil {
			return "", ierrors.RevisionLookupFailed(herr)
		}
		return head.Hash().String(), nil
	}

	// go-git cannot open every worktree layout; fall back to reading
	// .git/HEAD directly.
	if hash, rerr := readRepoHead(dir); rerr == nil {
		return hash, nil
	}

	return "", ierrors.RevisionLookupFailed(err)
}

// Stamp renders a resolved commit hash as the replacement comment.
func Stamp(hash string) string {
	return fmt.Sprintf("<!-- %s -->", strings.TrimSpace(hash))
}

// readRepoHead reads .git/HEAD for the repository enclosing dir and resolves
// symbolic references if needed.
func readRepoHead(dir string) (string, error) {
	root, err := findRepoRoot(dir)
	if err != nil {
		return "", err
	}

	headPath := filepath.Join(root, ".git", "HEAD")
	data, err := os.ReadFile(headPath)
	if err != nil {
		return "", err
	}

	line := strings.TrimSpace(string(data))

	// If HEAD is a symbolic ref (e.g., "ref: refs/heads/main"), resolve it
	if strings.HasPrefix(line, "ref:") {
		ref := strings.TrimSpace(strings.TrimPrefix(line, "ref:"))
		refPath := filepath.Join(root, ".git", filepath.FromSlash(ref))
		refData, refErr := os.ReadFile(refPath)
		if refErr != nil {
			return "", refErr
		}
		return strings.TrimSpace(string(refData)), nil
	}

	// Otherwise, HEAD contains the commit hash directly
	return line, nil
}

// findRepoRoot walks up from dir until a .git directory is found.
func findRepoRoot(dir string) (string, error) {
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no git repository found above %s", dir)
		}
		dir = parent
	}
}
