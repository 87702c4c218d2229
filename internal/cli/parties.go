package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/partyplanner/internal/config"
	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/internal/render"
)

const tabPadding = 2

// NewPartiesListCmd creates the parties list command.
func NewPartiesListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming parties",
		Example: `  # Table output
  partyplanner parties list

  # JSON output
  partyplanner parties list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromCommand(cmd)
			format, err := resolveOutputFormat(cmd, cfg, output)
			if err != nil {
				return err
			}

			a := newApp(cfg)
			if err := a.Load(cmd.Context()); err != nil {
				return err
			}
			parties := a.Snapshot().Parties

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), parties)
			}
			return writePartyTable(cmd.OutOrStdout(), parties)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")
	return cmd
}

// NewPartiesShowCmd creates the parties show command.
func NewPartiesShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one party's details",
		Example: `  partyplanner parties show 42
  partyplanner parties show 42 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid party id %q: must be an integer", args[0])
			}

			cfg := configFromCommand(cmd)
			format, err := resolveOutputFormat(cmd, cfg, output)
			if err != nil {
				return err
			}

			selected, err := newApp(cfg).FetchDetail(cmd.Context(), id)
			if err != nil {
				return err
			}

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), selected)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), render.CardText(selected))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")
	return cmd
}

// resolveOutputFormat returns the --output flag when set, else the configured
// default.
func resolveOutputFormat(cmd *cobra.Command, cfg *config.Config, flag string) (string, error) {
	format := cfg.Output.DefaultFormat
	if cmd.Flags().Changed("output") {
		format = flag
	}
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func writePartyTable(out io.Writer, parties []party.Party) error {
	if len(parties) == 0 {
		_, err := fmt.Fprintln(out, render.EmptyListMessage)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDATE\tLOCATION")
	fmt.Fprintln(w, "--\t----\t----\t--------")
	for _, p := range parties {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Date, p.Location)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%s\n", render.PartyCount(len(parties)))
	return err
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
