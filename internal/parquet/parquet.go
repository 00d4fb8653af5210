// Package parquet provides data structures and functions for exporting milestone
// calculations to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/schema"
)

// MilestoneRow represents one threshold of a pacing calculation.
// The observation and pacing statistics are repeated on every row so each row stands alone.
type MilestoneRow struct {
	// Threshold is the cumulative count of the milestone
	Threshold int32 `parquet:"threshold,snappy"`

	// MilestoneDate is the estimated crossing date (nullable, midnight UTC)
	MilestoneDate *time.Time `parquet:"milestone_date,optional,snappy"`

	// Status tells how the date was derived (reached, projected, out_of_range, no_pace, undefined)
	Status string `parquet:"status,snappy"`

	// CurrentCount is the observed cumulative count
	CurrentCount int32 `parquet:"current_count,snappy"`

	// StartDate is the first day of the observation window (midnight UTC)
	StartDate time.Time `parquet:"start_date,snappy"`

	// Today is the observation date (midnight UTC)
	Today time.Time `parquet:"today,snappy"`

	// DailyRate is the clamped events per day (nullable)
	DailyRate *float64 `parquet:"daily_rate,optional,snappy"`

	// AveragePerWeek is DailyRate times seven (nullable)
	AveragePerWeek *float64 `parquet:"average_per_week,optional,snappy"`

	// EndOfYearProjection is the projected count on December 31 (nullable)
	EndOfYearProjection *int32 `parquet:"end_of_year_projection,optional,snappy"`
}

// YearRow represents the calendar facts of a single year.
type YearRow struct {
	Year          int32     `parquet:"year,snappy"`
	DaysInYear    int32     `parquet:"days_in_year,snappy"`
	Leap          bool      `parquet:"leap,snappy"`
	StartOfYear   time.Time `parquet:"start_of_year,snappy"`
	EndOfYear     time.Time `parquet:"end_of_year,snappy"`
	DaysElapsed   *int32    `parquet:"days_elapsed,optional,snappy"`
	DaysRemaining *int32    `parquet:"days_remaining,optional,snappy"`
}

// ConvertPacingResult flattens a schema.PacingResult into one row per milestone.
func ConvertPacingResult(result schema.PacingResult) []MilestoneRow {
	rows := make([]MilestoneRow, len(result.Milestones))
	for i, m := range result.Milestones {
		rows[i] = MilestoneRow{
			Threshold:           int32(m.Threshold),
			MilestoneDate:       datePtr(m.Date),
			Status:              string(m.Status),
			CurrentCount:        int32(result.Input.CurrentCount),
			StartDate:           result.Input.StartDate.Time(),
			Today:               result.Input.Today.Time(),
			DailyRate:           result.DailyRate,
			AveragePerWeek:      result.AveragePerWeek,
			EndOfYearProjection: int32Ptr(result.EndOfYearProjection),
		}
	}
	return rows
}

// ConvertYearInfo converts schema.YearInfo to a single YearRow.
func ConvertYearInfo(info schema.YearInfo) []YearRow {
	return []YearRow{{
		Year:          int32(info.Year),
		DaysInYear:    int32(info.DaysInYear),
		Leap:          info.Leap,
		StartOfYear:   info.StartOfYear.Time(),
		EndOfYear:     info.EndOfYear.Time(),
		DaysElapsed:   int32Ptr(info.DaysElapsed),
		DaysRemaining: int32Ptr(info.DaysRemaining),
	}}
}

// WriteMilestoneRows writes milestone rows to w in Parquet format.
func WriteMilestoneRows(w io.Writer, rows []MilestoneRow) error {
	return writeRows(w, rows)
}

// WriteYearRows writes year rows to w in Parquet format.
func WriteYearRows(w io.Writer, rows []YearRow) error {
	return writeRows(w, rows)
}

// WriteMilestonesParquet writes a pacing result to a Parquet file at outputPath.
func WriteMilestonesParquet(result schema.PacingResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteMilestoneRows(file, ConvertPacingResult(result)); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// writeRows infers the schema from the struct tags of T and writes all rows.
func writeRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

func datePtr(d *calendar.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
