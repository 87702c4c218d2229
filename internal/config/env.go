package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv overlays PARTYPLANNER_* environment variables onto target.
// Unset variables leave the existing values untouched.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
