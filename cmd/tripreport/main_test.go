package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	happy := writeInput(t, dir, "happy.txt", strings.Join([]string{
		"Driver Dan",
		"Driver Alex",
		"Driver Bob",
		"Trip Dan 07:15 07:45 17.3",
		"Trip Dan 06:12 06:32 21.8",
		"Trip Alex 12:01 13:16 42.0",
	}, "\n"))
	second := writeInput(t, dir, "second.txt", "Driver Cy\nTrip Cy 07:00 08:00 120\n")
	garbage := writeInput(t, dir, "garbage.txt", "Driver Alex\nTrip Alex 12:00 12:15 HELLO\n")
	empty := writeInput(t, dir, "empty.txt", "")

	t.Run("prints report", func(t *testing.T) {
		stdout, _, err := execute(t, happy)
		require.NoError(t, err)
		assert.Equal(t, "Alex: 42 miles @ 34 mph\nDan: 39 miles @ 47 mph\nBob: 0 miles\n", stdout)
	})

	t.Run("processes files independently", func(t *testing.T) {
		stdout, _, err := execute(t, second, happy)
		require.NoError(t, err)
		assert.Equal(t, "Cy: 0 miles\nAlex: 42 miles @ 34 mph\nDan: 39 miles @ 47 mph\nBob: 0 miles\n", stdout)
	})

	t.Run("speed bounds from flags", func(t *testing.T) {
		stdout, _, err := execute(t, "--max-mph=150", second)
		require.NoError(t, err)
		assert.Equal(t, "Cy: 120 miles @ 120 mph\n", stdout)
	})

	t.Run("malformed input fails without report", func(t *testing.T) {
		stdout, stderr, err := execute(t, garbage)
		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "line 2")
	})

	t.Run("empty file fails", func(t *testing.T) {
		_, _, err := execute(t, empty)
		assert.ErrorContains(t, err, "file is empty")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, _, err := execute(t, filepath.Join(dir, "nope.txt"))
		assert.ErrorContains(t, err, "file not found")
	})

	t.Run("no input fails", func(t *testing.T) {
		_, _, err := execute(t)
		assert.Error(t, err)
	})

	t.Run("writes metrics file", func(t *testing.T) {
		metricsPath := filepath.Join(dir, "run.prom")
		_, _, err := execute(t, "--metrics-file", metricsPath, happy)
		require.NoError(t, err)

		data, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), `tripreport_reports_total{result="ok"} 1`)
		assert.Contains(t, string(data), `tripreport_trips_total{outcome="admitted"} 3`)
	})
}
