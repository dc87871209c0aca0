// Package testutil provides shared test helpers for creating input files and
// config fixtures.
package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteInputCSV writes a CSV file with the given header and rows and returns
// its path.
func WriteInputCSV(t *testing.T, dir string, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, "expenses.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	writer := csv.NewWriter(f)
	require.NoError(t, writer.Write(header))
	for _, row := range rows {
		require.NoError(t, writer.Write(row))
	}
	writer.Flush()
	require.NoError(t, writer.Error())
	return path
}

// SetupTestConfig creates a config file pointing every lookup service at the
// given URLs. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, geocodingURL, weatherURL, fxURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`services:
  geocoding_url: %s
  weather_url: %s
  fx_url: %s
  timeout_seconds: 5
`, geocodingURL, weatherURL, fxURL)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
