package commands

import (
	"git.home.luguber.info/inful/htmlinject/internal/build"
)

// InjectCmd implements the 'inject' command, the default.
type InjectCmd struct {
	injectFlags
	Stream bool `help:"Stream the input through chained stages instead of buffering (js/css/remove only)"`
}

func (i *InjectCmd) Run(_ *Global, root *CLI) error {
	cfg, err := resolveConfig(root, i.injectFlags)
	if err != nil {
		return err
	}

	if i.Stream {
		return build.RunStreaming(cfg)
	}
	return build.Run(cfg)
}
