package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"miren.dev/thriftgen/cli/commands"
	"miren.dev/thriftgen/version"
)

func Run(args []string) int {
	c := cli.NewCLI("thriftgen", version.Version)
	c.Commands = commands.AllCommands()
	c.Args = args[1:]

	exitStatus, err := c.Run()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return 1
		}
	}

	return exitStatus
}
