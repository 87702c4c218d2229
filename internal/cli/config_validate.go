package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/partyplanner/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the config file at
~/.partyplanner/config.yaml (or --config) with environment and flag overrides.

This checks:
- The API base URL is an http or https URL
- The cohort is set
- The request timeout is not negative
- The default output format is table or json`,
		Example: `  # Validate current configuration
  partyplanner config validate

  # Validate and show detailed information
  partyplanner config validate --verbose`,
		Annotations: map[string]string{annotationSkipValidation: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, configFromCommand(cmd), verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, cfg *config.Config, verbose bool) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  API base URL: %s\n", cfg.API.BaseURL)
	cmd.Printf("  Cohort: %s\n", cfg.API.Cohort)
	if cfg.API.Timeout > 0 {
		cmd.Printf("  Request timeout: %s\n", cfg.API.Timeout)
	} else {
		cmd.Println("  Request timeout: none")
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	} else {
		cmd.Println("  Log file: none (stderr)")
	}
	cmd.Printf("  Server address: %s\n", cfg.Server.Addr)
}
