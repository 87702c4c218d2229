package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyAPI     = "api"
	keyOutput  = "output"
	keyLogging = "logging"
	keyServer  = "server"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyAPI:     true,
	keyOutput:  true,
	keyLogging: true,
	keyServer:  true,
}

// MergeYAML loads a YAML file and merges it onto target section by section.
// Within a present section only the fields given in the file change; absent
// sections and fields keep their current values.
func MergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so it can be decoded onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling config section %q: %w", key, marshalErr)
		}

		if err = mergeSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}

	return nil
}

// mergeSection decodes data onto the field of target named by key.
func mergeSection(target *Config, key string, data []byte) error {
	switch key {
	case keyAPI:
		return yaml.Unmarshal(data, &target.API)
	case keyOutput:
		return yaml.Unmarshal(data, &target.Output)
	case keyLogging:
		return yaml.Unmarshal(data, &target.Logging)
	case keyServer:
		return yaml.Unmarshal(data, &target.Server)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
