package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/partyplanner/internal/logging"
)

// logger is the package-level logger for CLI operations; baseLogger is the
// same sink without the component tag, for the packages the CLI wires up.
//
//nolint:gochecknoglobals // Required for zerolog context integration
var (
	logger     zerolog.Logger
	baseLogger zerolog.Logger
)

// Command annotations read by the root command's hooks.
const (
	// annotationLogToFile sends logs to the log file even when none is
	// configured, so they never draw over a full-screen UI.
	annotationLogToFile = "partyplanner/log-to-file"
	// annotationDefaultConfig skips reading the config file and environment.
	annotationDefaultConfig = "partyplanner/default-config"
	// annotationSkipValidation loads configuration without rejecting invalid
	// settings, for commands that report on them.
	annotationSkipValidation = "partyplanner/skip-validation"
)

// NewRootCmd creates the root Cobra command for the partyplanner CLI.
// It loads configuration, wires up logging and tracing, and adds the
// browse, parties, render, serve and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "partyplanner",
		Short:         "Browse upcoming parties",
		Long:          "Party Planner: list upcoming parties and view their details from the parties API",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(contextWithConfig(cmd.Context(), cfg))

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.partyplanner/config.yaml)")
	cmd.PersistentFlags().String("base-url", "", "parties API base URL (overrides config file and env var)")
	cmd.PersistentFlags().String("cohort", "", "cohort path segment (overrides config file and env var)")

	cmd.AddCommand(
		NewBrowseCmd(),
		newPartiesCmd(),
		NewRenderCmd(),
		NewServeCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Browse parties interactively
  partyplanner browse

  # Print the party list once, without the interactive UI
  partyplanner browse --plain

  # List parties as JSON
  partyplanner parties list --output json

  # Show one party's details
  partyplanner parties show 42

  # Write the HTML page with party 42 selected
  partyplanner render --select 42 --out parties.html

  # Serve the live page
  partyplanner serve --addr :8080

  # Initialize configuration
  partyplanner config init`

// newPartiesCmd creates the parties command group with list and show subcommands.
func newPartiesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "parties", Short: "Query the parties API"}
	cmd.AddCommand(NewPartiesListCmd(), NewPartiesShowCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
