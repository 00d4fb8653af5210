//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type calcOutput struct {
	AveragePerWeek      *float64 `json:"average_per_week"`
	EndOfYearProjection *int     `json:"end_of_year_projection"`
	Locale              string   `json:"locale"`
	Milestones          []struct {
		Threshold int     `json:"threshold"`
		Date      *string `json:"date"`
		Status    string  `json:"status"`
	} `json:"milestones"`
}

func TestCalcJSON(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, err := runMilestones(t, dir, nil,
		"calc", "10", "--start", "2024-01-01", "--today", "2024-01-10", "--output", "json")
	require.NoError(t, err, stderr)

	var out calcOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.NotNil(t, out.AveragePerWeek)
	assert.InDelta(t, 7.0, *out.AveragePerWeek, 1e-12)
	assert.Equal(t, 366, *out.EndOfYearProjection)
	require.Len(t, out.Milestones, 5)
	assert.Equal(t, "2024-02-19", *out.Milestones[0].Date)
}

func TestCalcTextTable(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, err := runMilestones(t, dir, nil,
		"calc", "--count", "120", "--today", "2024-04-29", "--width", "120", "--color", "no", "--emoji", "no")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Milestones for 2024 (leap, 366 days)")
	assert.Contains(t, stdout, "February 19, 2024")
	assert.Contains(t, stdout, "Average per week: 7.0")
	assert.Contains(t, stdout, "Next milestone: 150 on May 29, 2024 (in 30 days)")
}

func TestCalcEnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := "thresholds: [5, 20]\ntoday: 2024-01-10\nprecision: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".milestones.yaml"), []byte(config), 0o600))

	env := []string{"MILESTONES_OUTPUT=json", "MILESTONES_LOCALE=de"}
	stdout, stderr, err := runMilestones(t, dir, env, "calc", "10", "--start", "2024-01-01")
	require.NoError(t, err, stderr)

	var out calcOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "de", out.Locale)
	require.Len(t, out.Milestones, 2)
	assert.Equal(t, "reached", out.Milestones[0].Status)
	assert.Equal(t, "projected", out.Milestones[1].Status)
}

func TestCalcParquetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "milestones.parquet")
	_, stderr, err := runMilestones(t, dir, nil,
		"calc", "10", "--today", "2024-01-10", "--output", "parquet", "--output-file", path)
	require.NoError(t, err, stderr)
	assert.Contains(t, stderr, "Wrote Parquet")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PAR1", string(data[:4]))
}

func TestCalcValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"parquet without file", []string{"calc", "1", "--output", "parquet"}, "parquet output requires --output-file"},
		{"start after today", []string{"calc", "1", "--start", "2024-05-01", "--today", "2024-04-01"}, "cannot be after today"},
		{"count too large", []string{"calc", "400", "--today", "2023-06-01"}, "count must be between 0 and 365"},
		{"bad thresholds", []string{"calc", "1", "--thresholds", "50,abc"}, "is not an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runMilestones(t, t.TempDir(), nil, tt.args...)
			require.Error(t, err)
			assert.Contains(t, stderr, tt.contains)
		})
	}
}

func TestYearAndVersion(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, err := runMilestones(t, dir, nil, "year", "1900", "--output", "csv")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "1900,365,false,1900-01-01,1900-12-31")

	stdout, _, err = runMilestones(t, dir, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "milestones CLI")
}
