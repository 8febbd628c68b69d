package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
)

func TestParseRemoveCondition(t *testing.T) {
	tests := []struct {
		name  string
		arg   string
		scope string
		key   string
	}{
		{"empty", "", "", ""},
		{"key only", "production", "", "production"},
		{"scope and key", "section:foo", "section", "foo"},
		{"multiple colons keep last segment as key", "a:b:c", "a:b", "c"},
		{"trailing colon yields empty key", "section:", "section", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cond := ParseRemoveCondition(test.arg)
			assert.Equal(t, test.scope, cond.Scope)
			assert.Equal(t, test.key, cond.Key)
		})
	}
}

func TestLoadAndOverride(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "htmlinject.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"input: src/index.html\njs: src/js\ncss: src/css\netag: true\n"), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "src/index.html", cfg.Input)
	assert.Equal(t, "src/js", cfg.JS)
	assert.True(t, cfg.Etag)
	assert.False(t, cfg.Hash)

	merged := cfg.Override(Config{Input: "other.html"})
	assert.Equal(t, "other.html", merged.Input)
	assert.Equal(t, "src/js", merged.JS, "file values survive when flag unset")
	assert.True(t, merged.Etag, "bool file values survive Override untouched")
}

func TestOverrideBool(t *testing.T) {
	on, off := true, false

	assert.True(t, OverrideBool(true, nil), "unset flag keeps file value")
	assert.False(t, OverrideBool(false, nil))
	assert.True(t, OverrideBool(false, &on), "explicit flag turns option on")
	assert.False(t, OverrideBool(true, &off), "explicit flag turns option off")
}

func TestLoadIfPresent_MissingFile(t *testing.T) {
	cfg, err := LoadIfPresent(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_BadYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: [unclosed"), 0o644))

	_, err := Load(cfgPath)
	require.Error(t, err)
	var ie *ierrors.InjectError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ierrors.CategoryConfig, ie.Category)
}

func TestNormalized_OutputDefaultsToInput(t *testing.T) {
	cfg := Config{Input: "index.html"}.Normalized()
	assert.Equal(t, "index.html", cfg.Output)

	explicit := Config{Input: "index.html", Output: "dist/index.html"}.Normalized()
	assert.Equal(t, "dist/index.html", explicit.Output)
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "index.html")
	require.NoError(t, os.WriteFile(input, []byte("<html></html>"), 0o644))

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Config{Input: input}.Validate())
	})

	t.Run("missing input flag", func(t *testing.T) {
		err := Config{}.Validate()
		var ie *ierrors.InjectError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, ierrors.CategoryInput, ie.Category)
	})

	t.Run("input not found", func(t *testing.T) {
		err := Config{Input: filepath.Join(tmpDir, "missing.html")}.Validate()
		var ie *ierrors.InjectError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "input file not found", ie.Message)
	})

	t.Run("input is directory", func(t *testing.T) {
		err := Config{Input: tmpDir}.Validate()
		var ie *ierrors.InjectError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "input path is a directory, expected a file", ie.Message)
	})
}
