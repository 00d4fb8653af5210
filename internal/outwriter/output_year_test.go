package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleYearInfo(withToday bool) schema.YearInfo {
	info := schema.YearInfo{
		Year:        2024,
		DaysInYear:  366,
		Leap:        true,
		StartOfYear: calendar.New(2024, time.January, 1),
		EndOfYear:   calendar.New(2024, time.December, 31),
	}
	if withToday {
		elapsed, remaining := 120, 246
		info.DaysElapsed = &elapsed
		info.DaysRemaining = &remaining
	}
	return info
}

func TestWriteYearTable(t *testing.T) {
	cfg := testConfig(schema.TextOut)
	cfg.UseEmojis = true

	var buf bytes.Buffer
	require.NoError(t, WriteYearInfo(&buf, sampleYearInfo(true), cfg))

	output := buf.String()
	assert.Contains(t, output, "📅 2024 (leap, 366 days)")
	assert.Contains(t, output, "January 1, 2024")
	assert.Contains(t, output, "December 31, 2024")
	assert.Contains(t, output, "Days remaining")
	assert.Contains(t, output, "246")
	assert.Contains(t, output, "yes")
}

func TestWriteYearTableOutsideYear(t *testing.T) {
	cfg := testConfig(schema.TextOut)
	cfg.Placeholder = "n/a"
	cfg.Width = 60

	var buf bytes.Buffer
	require.NoError(t, WriteYearInfo(&buf, sampleYearInfo(false), cfg))

	output := buf.String()
	assert.Contains(t, output, "2024-12-31")
	assert.Contains(t, output, "n/a")
	assert.NotContains(t, output, "📅")
}

func TestWriteYearCSV(t *testing.T) {
	tests := []struct {
		name     string
		info     schema.YearInfo
		expected []string
	}{
		{
			name:     "today in year",
			info:     sampleYearInfo(true),
			expected: []string{"2024", "366", "true", "2024-01-01", "2024-12-31", "120", "246"},
		},
		{
			name:     "today outside year",
			info:     sampleYearInfo(false),
			expected: []string{"2024", "366", "true", "2024-01-01", "2024-12-31", schema.DefaultPlaceholder, schema.DefaultPlaceholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteYearInfo(&buf, tt.info, testConfig(schema.CSVOut)))

			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "days_in_year", records[0][1])
			assert.Equal(t, tt.expected, records[1])
		})
	}
}

func TestWriteYearJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYearInfo(&buf, sampleYearInfo(false), testConfig(schema.JSONOut)))

	var decoded schema.YearInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleYearInfo(false), decoded)
	assert.Contains(t, buf.String(), `"days_elapsed": null`)
}

func TestWriteYearParquet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYearInfo(&buf, sampleYearInfo(true), testConfig(schema.ParquetOut)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PAR1")))
}
