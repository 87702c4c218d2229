package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/partyplanner/internal/config"
	"github.com/rshade/partyplanner/internal/logging"
)

// clearEnv blanks every variable ParseEnv reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PARTYPLANNER_BASE_URL", "PARTYPLANNER_COHORT", "PARTYPLANNER_API_TIMEOUT",
		"PARTYPLANNER_OUTPUT_FORMAT", "PARTYPLANNER_LOG_LEVEL", "PARTYPLANNER_LOG_FORMAT",
		"PARTYPLANNER_LOG_FILE", "PARTYPLANNER_LOG_CALLER", "PARTYPLANNER_SERVER_ADDR",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// writeConfig is a test helper that writes YAML content to a temp file
// and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, config.DefaultCohort, cfg.API.Cohort)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api:
  cohort: 2401-TEST
  timeout: 5s
logging:
  level: debug
unknown_section:
  ignored: true
`)
	t.Setenv("PARTYPLANNER_COHORT", "from-env")
	t.Setenv("PARTYPLANNER_SERVER_ADDR", ":9999")
	t.Setenv("PARTYPLANNER_LOG_CALLER", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	// Field-level merge: base_url keeps its default.
	assert.Equal(t, config.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Env beats file.
	assert.Equal(t, "from-env", cfg.API.Cohort)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.True(t, cfg.Logging.Caller)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api: [unterminated")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
}

func TestLoad_InvalidEnvDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("PARTYPLANNER_API_TIMEOUT", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestMergeYAML_EmptyFile(t *testing.T) {
	cfg := config.New()
	require.NoError(t, config.MergeYAML(cfg, writeConfig(t, "# nothing here\n")))
	assert.Equal(t, config.New(), cfg)
}

func TestMergeYAML_NilTarget(t *testing.T) {
	require.Error(t, config.MergeYAML(nil, "whatever"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "empty base url", mutate: func(c *config.Config) { c.API.BaseURL = "" }, wantErr: "base_url must be set"},
		{name: "non-http base url", mutate: func(c *config.Config) { c.API.BaseURL = "ftp://x" }, wantErr: "http or https"},
		{name: "empty cohort", mutate: func(c *config.Config) { c.API.Cohort = "" }, wantErr: "cohort must be set"},
		{name: "negative timeout", mutate: func(c *config.Config) { c.API.Timeout = -time.Second }, wantErr: "timeout"},
		{name: "bad format", mutate: func(c *config.Config) { c.Output.DefaultFormat = "xml" }, wantErr: "default_format"},
		{name: "json format", mutate: func(c *config.Config) { c.Output.DefaultFormat = config.FormatJSON }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.API.Timeout = 3 * time.Second
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester/.partyplanner/config.yaml", config.DefaultPath())
	assert.Equal(t, "/home/tester/.partyplanner/logs/partyplanner.log", config.DefaultLogPath())
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "console"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "warn", got.Level)

	lc.File = "/tmp/p.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/p.log", got.File)
	assert.False(t, got.Caller)

	lc.Caller = true
	assert.True(t, lc.ToLoggingConfig().Caller)
}
