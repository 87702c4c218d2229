package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/partyplanner/internal/render"
)

// NewRenderCmd creates the render command, which writes the HTML page once.
func NewRenderCmd() *cobra.Command {
	var (
		selectID int
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the party page as HTML",
		Long: `Fetches the party list, optionally selects one listed party, and writes
the full HTML page. Fetch failures and ids missing from the list are logged
and the page renders whatever state was loaded.`,
		Example: `  partyplanner render > parties.html
  partyplanner render --select 42 --out parties.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a := newApp(configFromCommand(cmd))

			_ = a.Load(ctx)
			if cmd.Flags().Changed("select") {
				_ = a.SelectListed(ctx, selectID)
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := render.Document(a.Snapshot()).Render(ctx, out); err != nil {
				return fmt.Errorf("rendering page: %w", err)
			}
			if outPath != "" {
				cmd.PrintErrf("Page written to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&selectID, "select", 0, "party id to show details for")
	cmd.Flags().StringVar(&outPath, "out", "", "write the page to this file instead of stdout")

	return cmd
}
