package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/snally-dev/camp-milestones/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMetricsText(t *testing.T) {
	cfg := testConfig(schema.TextOut)

	var buf bytes.Buffer
	require.NoError(t, WriteMetricsDefinitions(&buf, []int{5, 20}, cfg))

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "Milestone Pacing Formulas\n"+strings.Repeat("=", 25)+"\n"))
	assert.Contains(t, output, "Thresholds: 5, 20")
	assert.Contains(t, output, "Formula: daily_rate = clamp(count / elapsed_days, 0, 1)")
	assert.Contains(t, output, "Formula: end_of_year_projection = floor(count + daily_rate * days_remaining)")

	clampIdx := strings.Index(output, "clamped to today")
	yearEndIdx := strings.Index(output, "Dates after December 31")
	require.Positive(t, clampIdx)
	assert.Less(t, clampIdx, yearEndIdx)
}

func TestWriteMetricsTextEmoji(t *testing.T) {
	cfg := testConfig(schema.TextOut)
	cfg.UseEmojis = true

	var buf bytes.Buffer
	require.NoError(t, WriteMetricsDefinitions(&buf, nil, cfg))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "🧮 Milestone Pacing Formulas", lines[0])
	assert.Equal(t, strings.Repeat("=", 27), lines[1])
	assert.Contains(t, buf.String(), "Thresholds: 50, 100, 150, 200, 250")
}

func TestWriteMetricsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMetricsDefinitions(&buf, []int{10}, testConfig(schema.JSONOut)))

	var model schema.MetricsRenderModel
	require.NoError(t, json.Unmarshal(buf.Bytes(), &model))
	assert.Equal(t, "Milestone Pacing Formulas", model.Title)
	assert.Equal(t, []int{10}, model.Thresholds)
	assert.Len(t, model.Formulas, 6)
	assert.Len(t, model.Guardrails, 4)
}

func TestWriteMetricsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMetricsDefinitions(&buf, nil, testConfig(schema.CSVOut)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, []string{"Key", "Name", "Purpose", "Formula"}, records[0])
	assert.Equal(t, string(schema.FormulaElapsed), records[1][0])
	assert.Equal(t, string(schema.FormulaProjection), records[6][0])
}

func TestBuildMetricsRenderModelCopiesThresholds(t *testing.T) {
	thresholds := []int{1, 2}
	model := buildMetricsRenderModel(thresholds)
	thresholds[0] = 99
	assert.Equal(t, []int{1, 2}, model.Thresholds)

	model = buildMetricsRenderModel(nil)
	assert.Equal(t, schema.DefaultThresholds, model.Thresholds)
}
