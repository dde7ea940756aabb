package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.MinMPH)
	assert.Equal(t, 100.0, cfg.MaxMPH)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
	assert.Empty(t, cfg.DBPath)
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRIPREPORT_MAX_MPH", "80")
	t.Setenv("TRIPREPORT_LOG_LEVEL", "debug")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.MaxMPH)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tripreport.yaml"), []byte("min_mph: 10\nmetrics_file: out.prom\n"), 0644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.MinMPH)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	v := New()
	v.Set(KeyConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestBindFlagsOverrideEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRIPREPORT_MIN_MPH", "7")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64("min-mph", 0, "")
	flags.String("db-path", "", "")
	require.NoError(t, flags.Parse([]string{"--min-mph=12", "--db-path=trips.db"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.MinMPH)
	assert.Equal(t, "trips.db", cfg.DBPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default range", cfg: Config{MinMPH: 5, MaxMPH: 100}},
		{name: "single point", cfg: Config{MinMPH: 50, MaxMPH: 50}},
		{name: "inverted", cfg: Config{MinMPH: 100, MaxMPH: 5}, wantErr: true},
		{name: "negative", cfg: Config{MinMPH: -1, MaxMPH: 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
