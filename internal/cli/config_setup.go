package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/partyplanner/internal/api"
	"github.com/rshade/partyplanner/internal/app"
	"github.com/rshade/partyplanner/internal/config"
	"github.com/rshade/partyplanner/internal/logging"
)

type configKey struct{}

func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromCommand returns the configuration loaded by the root command,
// or the defaults when the command ran without it.
func configFromCommand(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.New()
}

// loadConfig resolves configuration in order: defaults, config file,
// environment, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Annotations[annotationDefaultConfig] != "" {
		return config.New(), nil
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if cmd.Flags().Changed("base-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("base-url")
	}
	if cmd.Flags().Changed("cohort") {
		cfg.API.Cohort, _ = cmd.Flags().GetString("cohort")
	}

	if cmd.Annotations[annotationSkipValidation] != "" {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newApp builds the API client and app for cfg.
func newApp(cfg *config.Config, opts ...api.Option) *app.App {
	clientOpts := append([]api.Option{
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logging.ComponentLogger(baseLogger, "api")),
	}, opts...)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Cohort, clientOpts...)
	return app.New(client, app.WithLogger(baseLogger))
}
