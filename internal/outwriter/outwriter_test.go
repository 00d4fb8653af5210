package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/snally-dev/camp-milestones/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutWriterWriteMilestonesToFile(t *testing.T) {
	cfg := testConfig(schema.JSONOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "milestones.json")

	require.NoError(t, NewOutWriter().WriteMilestones(samplePacingResult(), cfg, 0))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded["milestones"], 4)
}

func TestOutWriterWriteMilestonesParquetFile(t *testing.T) {
	cfg := testConfig(schema.ParquetOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "milestones.parquet")

	require.NoError(t, NewOutWriter().WriteMilestones(samplePacingResult(), cfg, 0))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "PAR1", string(data[:4]))
	assert.Equal(t, "PAR1", string(data[len(data)-4:]))
}

func TestOutWriterWriteYearToFile(t *testing.T) {
	cfg := testConfig(schema.CSVOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "year.csv")

	require.NoError(t, NewOutWriter().WriteYear(sampleYearInfo(true), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024,366,true,2024-01-01,2024-12-31,120,246")
}

func TestOutWriterWriteMetrics(t *testing.T) {
	cfg := testConfig(schema.TextOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "metrics.txt")
	require.NoError(t, NewOutWriter().WriteMetrics(nil, cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Milestone Pacing Formulas")

	cfg.Output = schema.ParquetOut
	err = NewOutWriter().WriteMetrics(nil, cfg)
	assert.EqualError(t, err, "parquet output is not supported for metrics")
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "Wrote JSON", successMessage(schema.JSONOut))
	assert.Equal(t, "Wrote CSV", successMessage(schema.CSVOut))
	assert.Equal(t, "Wrote Parquet", successMessage(schema.ParquetOut))
	assert.Equal(t, "Wrote table", successMessage(schema.TextOut))
}
