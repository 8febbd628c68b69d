package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("// "+name), 0o644))
	}
}

func TestResolve_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "b.js", "a.js", "style.css", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "nested.js"), 0o755))

	resolver := NewResolver("")

	scripts, err := resolver.Resolve(tmpDir, KindScript)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.js"),
		filepath.Join(tmpDir, "b.js"),
	}, scripts, "immediate .js entries in lexical order, directories skipped")

	styles, err := resolver.Resolve(tmpDir, KindStylesheet)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "style.css")}, styles)
}

func TestResolve_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "app.js", "vendor.js", "style.css")

	resolver := NewResolver("")
	paths, err := resolver.Resolve(filepath.Join(tmpDir, "*.js"), KindScript)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "app.js"),
		filepath.Join(tmpDir, "vendor.js"),
	}, paths)
}

func TestResolve_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "app.js")

	resolver := NewResolver("")
	paths, err := resolver.Resolve(filepath.Join(tmpDir, "app.js"), KindScript)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "app.js")}, paths)
}

func TestResolve_NotFound(t *testing.T) {
	resolver := NewResolver("")

	for _, spec := range []string{
		filepath.Join(t.TempDir(), "missing"),
		filepath.Join(t.TempDir(), "missing", "*.js"),
	} {
		_, err := resolver.Resolve(spec, KindScript)
		require.Error(t, err)
		var ie *ierrors.InjectError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, ierrors.CategoryAsset, ie.Category)
	}
}

func TestResolve_PrefixStrip(t *testing.T) {
	tmpDir := t.TempDir()
	assetDir := filepath.Join(tmpDir, "assets")
	require.NoError(t, os.Mkdir(assetDir, 0o755))
	writeFiles(t, assetDir, "app.js")

	resolver := NewResolver(tmpDir + string(filepath.Separator))
	paths, err := resolver.Resolve(assetDir, KindScript)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("assets", "app.js")}, paths,
		"configured prefix never reaches the emitted path")
}
