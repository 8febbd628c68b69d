// Package build orchestrates a single injection run: resolve assets, render
// tags, resolve the revision, apply the substitution engine, and write the
// output.
package build

import (
	"bytes"
	"errors"
	"log/slog"
	"os"

	"github.com/natefinch/atomic"

	"git.home.luguber.info/inful/htmlinject/internal/assets"
	"git.home.luguber.info/inful/htmlinject/internal/config"
	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
	"git.home.luguber.info/inful/htmlinject/internal/inject"
	"git.home.luguber.info/inful/htmlinject/internal/logfields"
	"git.home.luguber.info/inful/htmlinject/internal/revision"
)

// Sources assembles the engine sources for one run. Unconfigured options
// stay nil so their regions pass through unchanged.
func Sources(cfg config.Config) (inject.Sources, error) {
	resolver := assets.NewResolver(cfg.IgnorePrefix)
	tagger := assets.NewTagger(cfg.Etag)

	src := inject.Sources{RemoveKey: cfg.RemoveCondition().Key}

	if cfg.JS != "" {
		tags, err := assets.RenderTags(resolver, tagger, cfg.JS, assets.KindScript)
		if err != nil {
			return inject.Sources{}, err
		}
		block := assets.RenderBlock(tags)
		hashes := assets.RenderAppHashes(tags)
		src.JS = &block
		src.AppHashes = &hashes
		slog.Debug("Rendered script tags", logfields.Count(len(tags)))
	}

	if cfg.CSS != "" {
		tags, err := assets.RenderTags(resolver, tagger, cfg.CSS, assets.KindStylesheet)
		if err != nil {
			return inject.Sources{}, err
		}
		block := assets.RenderBlock(tags)
		src.CSS = &block
		slog.Debug("Rendered stylesheet tags", logfields.Count(len(tags)))
	}

	if cfg.Hash {
		hash, err := revision.Resolve(cfg.Input)
		if err != nil {
			return inject.Sources{}, err
		}
		stamp := revision.Stamp(hash)
		src.GitHash = &stamp
	}

	return src, nil
}

// Run performs a whole-buffer run: the input is read once, all five passes
// apply in memory, and the output is written once, atomically, at the very
// end. Reruns with unchanged inputs are byte-identical.
func Run(cfg config.Config) error {
	slog.Info("Starting injection", logfields.Input(cfg.Input), logfields.Output(cfg.Output))

	src, err := Sources(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return ierrors.InternalError("read input file", err)
	}

	result := inject.NewEngine(src).Run(string(data))

	if err := atomic.WriteFile(cfg.Output, bytes.NewReader([]byte(result))); err != nil {
		return ierrors.WriteFailed(cfg.Output, err)
	}

	slog.Info("Injection complete", logfields.Output(cfg.Output))
	return nil
}

// RunStreaming performs an incremental run through the chained stream
// stages. Only the js/css/remove subset is supported; a mid-stream failure
// may leave a partially-written output file.
func RunStreaming(cfg config.Config) error {
	if cfg.Hash {
		return ierrors.New(ierrors.CategoryConfig, ierrors.SeverityFatal,
			"revision stamping is not supported in streaming mode")
	}

	slog.Info("Starting streaming injection", logfields.Input(cfg.Input), logfields.Output(cfg.Output))

	src, err := Sources(cfg)
	if err != nil {
		return err
	}

	// In-place rewrite needs the input buffered before the output truncates it.
	if cfg.Output == cfg.Input {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return ierrors.InternalError("read input file", err)
		}
		out, err := os.Create(cfg.Output)
		if err != nil {
			return ierrors.WriteFailed(cfg.Output, err)
		}
		defer out.Close()
		if err := inject.Stream(bytes.NewReader(data), out, src); err != nil {
			return streamError(cfg.Output, err)
		}
		return nil
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return ierrors.InternalError("open input file", err)
	}
	defer in.Close()

	out, err := os.Create(cfg.Output)
	if err != nil {
		return ierrors.WriteFailed(cfg.Output, err)
	}
	defer out.Close()

	if err := inject.Stream(in, out, src); err != nil {
		return streamError(cfg.Output, err)
	}

	slog.Info("Streaming injection complete", logfields.Output(cfg.Output))
	return nil
}

// streamError maps a classified stream failure onto the error taxonomy:
// read-side failures are not output write failures.
func streamError(output string, err error) error {
	if errors.Is(err, inject.ErrStreamRead) {
		return ierrors.InternalError("read input file", err)
	}
	return ierrors.WriteFailed(output, err)
}
