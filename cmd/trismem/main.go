// Command trismem is a small developer-facing exerciser for the trismem
// triple store: it loads a fixed sample of triples and runs pattern
// queries against them from the command line. It is not a wire protocol
// or a query language front end.
package main

import (
	"os"

	"github.com/arborgraph/trismem/cmd/trismem/command"
)

func main() {
	if err := command.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
