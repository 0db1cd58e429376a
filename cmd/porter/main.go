// Command porter issues and manages wallet passes from the command line.
package main

import (
	"os"

	"thde.io/porter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
