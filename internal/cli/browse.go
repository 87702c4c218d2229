package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/partyplanner/internal/app"
	"github.com/rshade/partyplanner/internal/render"
	"github.com/rshade/partyplanner/internal/tui"
)

// NewBrowseCmd creates the browse command. On a terminal it runs the
// interactive party list; otherwise it prints the list once.
func NewBrowseCmd() *cobra.Command {
	var (
		plain    bool
		noColor  bool
		selectID int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse upcoming parties and their details",
		Long: `Shows the upcoming parties with a details pane.

On an interactive terminal, move with the arrow keys (or j/k), press enter or
click a row to show that party's details, and press q to quit. Logs are
written to the log file so they never draw over the screen.

When stdout is not a terminal, or with --plain, the list is printed once.`,
		Example: `  # Interactive browser
  partyplanner browse

  # Print the list and party 42's details once
  partyplanner browse --plain --select 42`,
		Annotations: map[string]string{annotationLogToFile: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := newApp(configFromCommand(cmd))
			mode := tui.DetectOutputMode(plain, noColor)
			logger.Debug().Ctx(cmd.Context()).Str("mode", mode.String()).Msg("browse output mode")

			if mode == tui.OutputModeInteractive {
				return runInteractiveTUI(cmd, a)
			}
			return renderOnce(cmd, a, mode, selectID)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print plain text once instead of the interactive UI")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	cmd.Flags().IntVar(&selectID, "select", 0, "party id to show details for (non-interactive output only)")

	return cmd
}

func runInteractiveTUI(cmd *cobra.Command, a *app.App) error {
	ctx := cmd.Context()
	model := tui.NewPartyPlannerModel(ctx, a)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running party browser: %w", err)
	}
	return nil
}

// renderOnce fetches the list, optionally selects a party, and prints the
// page. Fetch failures are logged by the app and leave the page empty.
func renderOnce(cmd *cobra.Command, a *app.App, mode tui.OutputMode, selectID int) error {
	ctx := cmd.Context()
	_ = a.Load(ctx)
	if cmd.Flags().Changed("select") {
		_ = a.SelectListed(ctx, selectID)
	}

	snap := a.Snapshot()
	if mode == tui.OutputModeStyled {
		_, err := io.WriteString(cmd.OutOrStdout(), tui.RenderStatic(snap, tui.TerminalWidth()))
		return err
	}
	return render.Text(cmd.OutOrStdout(), snap)
}
