package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/htmlinject/internal/build"
	"git.home.luguber.info/inful/htmlinject/internal/watch"
)

// WatchCmd implements the 'watch' command: continuous injection driven by
// filesystem events.
type WatchCmd struct {
	injectFlags
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := resolveConfig(root, w.injectFlags)
	if err != nil {
		return err
	}

	watcher, err := watch.New(cfg, build.Run, slog.Default())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Watching for changes, Ctrl-C to stop")
	return watcher.Run(ctx)
}
