package commands

import (
	"github.com/mitchellh/cli"
)

func AllCommands() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return Infer("version", "Print the version", Version), nil
		},

		"generate": func() (cli.Command, error) {
			return Infer("generate", "Generate Go code from schema documents", Generate), nil
		},

		"check": func() (cli.Command, error) {
			return Infer("check", "Check schema documents without generating code", Check), nil
		},

		"dump": func() (cli.Command, error) {
			return Infer("dump", "Show the identifiers a schema document resolves", Dump), nil
		},

		"schema": func() (cli.Command, error) {
			return Section("schema", "Schema documents are YAML, JSON or CBOR renderings of a thrift IDL file.\n\n"+
				"Includes are resolved relative to the including document, and included\n"+
				"documents need a Go import path, either from an [imports] entry in\n"+
				"thriftgen.toml, --import doc=path, or --module-prefix."), nil
		},
	}
}
