// Command linesift prints the lines of a file that contain a literal
// pattern, ignoring case.
package main

import (
	"os"

	"github.com/custodia-labs/linesift/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/linesift/internal/adapters/driving/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetFileSystem(filesystem.NewOS())
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
