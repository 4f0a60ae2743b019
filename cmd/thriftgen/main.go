package main

import (
	"os"

	"miren.dev/thriftgen/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
