package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/htmlinject/cmd/htmlinject/commands"
	ierrors "git.home.luguber.info/inful/htmlinject/internal/errors"
	"git.home.luguber.info/inful/htmlinject/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("htmlinject"),
		kong.Description("Injects generated stylesheet/script tags, cache-busting tokens, a build revision stamp, and conditional block removal into an HTML template."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{}, cli); err != nil {
		adapter := ierrors.NewCLIErrorAdapter(cli.Verbose, nil)
		fmt.Fprintln(os.Stderr, adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}
