package commands

import (
	"fmt"
	"os"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

const starterConfig = `# htmlinject configuration. Flags override these values.
input: src/index.html
# output: dist/index.html
js: src/js
css: src/css
# remove: section:dev
# ignore: src/
etag: true
hash: false
`

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if !i.Force {
		if _, err := os.Stat(root.Config); err == nil {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", root.Config)
		}
	}

	if err := os.WriteFile(root.Config, []byte(starterConfig), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote configuration to %s\n", root.Config)
	return nil
}
