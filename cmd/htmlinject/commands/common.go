package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/htmlinject/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"htmlinject.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Inject InjectCmd `cmd:"" default:"withargs" help:"Inject asset tags, revision stamp, and removals into an HTML template"`
	Watch  WatchCmd  `cmd:"" help:"Rerun injection whenever the template or assets change"`
	Init   InitCmd   `cmd:"" help:"Write a starter configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := parseLogLevel(c.Verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the log level from the verbose flag and the
// HTMLINJECT_LOG_LEVEL environment variable. The env var wins.
func parseLogLevel(verbose bool) slog.Level {
	switch strings.ToLower(os.Getenv("HTMLINJECT_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// injectFlags are the run options shared by the inject and watch commands.
type injectFlags struct {
	Input  string `short:"i" help:"Input HTML template"`
	Output string `short:"o" help:"Output path (defaults to the input)"`
	CSS    string `help:"Stylesheet file, directory, or glob pattern"`
	JS     string `help:"Script file, directory, or glob pattern"`
	Remove string `help:"Strip blocks marked remove:<key>; accepts <key> or <scope:key>"`
	Ignore string `help:"Strip this literal prefix from injected paths"`
	Hash   *bool  `help:"Stamp the current source-control revision; --hash=false overrides the config file"`
	Etag   *bool  `help:"Append a content-digest cache-busting token to each asset; --etag=false overrides the config file"`
}

// resolveConfig merges the optional config file with the command flags
// (flags win), applies defaults, and validates the result.
func resolveConfig(root *CLI, flags injectFlags) (config.Config, error) {
	fileCfg, err := config.LoadIfPresent(root.Config)
	if err != nil {
		return config.Config{}, err
	}

	cfg := fileCfg.Override(config.Config{
		Input:        flags.Input,
		Output:       flags.Output,
		CSS:          flags.CSS,
		JS:           flags.JS,
		Remove:       flags.Remove,
		IgnorePrefix: flags.Ignore,
	})
	cfg.Hash = config.OverrideBool(cfg.Hash, flags.Hash)
	cfg.Etag = config.OverrideBool(cfg.Etag, flags.Etag)
	cfg = cfg.Normalized()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
