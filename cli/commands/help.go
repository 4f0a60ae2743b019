package commands

import (
	"strings"

	"github.com/mitchellh/cli"
)

// section is a help-only topic listed alongside the commands.
type section struct {
	name string
	desc string
}

var _ cli.Command = &section{}

func Section(name, desc string) cli.Command {
	return &section{name: name, desc: desc}
}

func (s *section) Help() string {
	return s.desc
}

// Synopsis is the first sentence of the description.
func (s *section) Synopsis() string {
	first, _, _ := strings.Cut(s.desc, ".")
	return first
}

func (s *section) Run(args []string) int {
	return cli.RunResultHelp
}
