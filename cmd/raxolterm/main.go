// Command raxolterm is a PTY-backed demo harness for the vtcore emulator.
package main

import (
	"os"

	"github.com/raxolterm/vtcore/cmd/raxolterm/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
