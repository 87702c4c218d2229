// Command partyplanner lists upcoming parties and shows their details in a
// terminal UI, as an HTML page, or as plain text and JSON.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/partyplanner/internal/cli"
	"github.com/rshade/partyplanner/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(context.Background())
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
