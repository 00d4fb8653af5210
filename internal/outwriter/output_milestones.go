package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/internal/parquet"
	"github.com/snally-dev/camp-milestones/schema"
)

// WriteMilestoneResults outputs a pacing result, dispatching based on the output format configured.
func WriteMilestoneResults(w io.Writer, result schema.PacingResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForMilestones(w, result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForMilestones(w, result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteMilestoneRows(w, parquet.ConvertPacingResult(result)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeMilestoneTable(w, result, cfg, duration)
	}
	return nil
}

// writeMilestoneTable generates and writes the human-readable table.
func writeMilestoneTable(w io.Writer, result schema.PacingResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtInt := createFormatters(cfg.Locale, cfg.Precision)
	fmtRate, _ := createFormatters(cfg.Locale, cfg.Precision+1)
	formatDate := dateFormatter(cfg)
	in := result.Input

	// 1. Title and observation
	days := calendar.DaysInYear(in.Today.Year)
	title := "Milestones for " + schema.YearSummary(schema.YearInfo{Year: in.Today.Year, DaysInYear: days, Leap: days == 366})
	if cfg.UseEmojis {
		title = "🏕️  " + title
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if result.Defined() {
		if _, err := fmt.Fprintf(w, "%s counted since %s (%s), as of %s\n",
			fmtInt(in.CurrentCount), formatDate(in.StartDate), pluralDays(*result.ElapsedDays, fmtInt), formatDate(in.Today)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s counted since %s, as of %s: cannot pace this observation\n",
			fmtInt(in.CurrentCount), formatDate(in.StartDate), formatDate(in.Today)); err != nil {
			return err
		}
	}

	// 2. Milestone table
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Milestone", "Date", "Status", "When"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range result.Milestones {
		data = append(data, []string{
			fmtInt(m.Threshold),
			formatOptionalDate(m.Date, formatDate, cfg.Placeholder),
			statusLabel(m.Status, cfg),
			describeWhen(m, in.Today, fmtInt, cfg.Placeholder),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 3. Summary
	eoy := calendar.EndOfYear(in.Today.Year)
	lines := []string{
		"Average per week: " + formatOptionalFloat(result.AveragePerWeek, fmtFloat, cfg.Placeholder),
		"Daily rate: " + formatOptionalFloat(result.DailyRate, fmtRate, cfg.Placeholder),
		fmt.Sprintf("Projected by %s: %s", formatDate(eoy), formatOptionalInt(result.EndOfYearProjection, fmtInt, cfg.Placeholder)),
		"Days remaining: " + formatOptionalInt(result.DaysRemaining, fmtInt, cfg.Placeholder),
	}
	if next, ok := result.NextMilestone(); ok {
		lines = append(lines, fmt.Sprintf("Next milestone: %s on %s (%s)",
			fmtInt(next.Threshold), formatDate(*next.Date), describeWhen(next, in.Today, fmtInt, cfg.Placeholder)))
	}
	lines = append(lines, fmt.Sprintf("Calculated in %v", duration))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// statusLabel renders the status column, honoring color and emoji settings.
func statusLabel(status schema.MilestoneStatus, cfg *contract.Config) string {
	label := schema.GetPlainLabel(status)
	if cfg.UseColors {
		label = contract.GetColorLabel(status)
	}
	if cfg.UseEmojis {
		label = contract.GetStatusEmoji(status) + " " + label
	}
	return label
}

// describeWhen renders the distance between today and a milestone date.
func describeWhen(m schema.Milestone, today calendar.Date, fmtInt func(int) string, placeholder string) string {
	if m.Date == nil {
		return placeholder
	}
	days := calendar.DaysBetween(today, *m.Date)
	switch {
	case days == 0:
		return "today"
	case days > 0:
		return "in " + pluralDays(days, fmtInt)
	default:
		return pluralDays(-days, fmtInt) + " ago"
	}
}

// writeCSVResultsForMilestones writes one CSV record per milestone.
func writeCSVResultsForMilestones(w io.Writer, result schema.PacingResult, cfg *contract.Config) error {
	fmtFloat, fmtInt := createFormatters("", cfg.Precision)
	fmtRate, _ := createFormatters("", cfg.Precision+1)
	in := result.Input

	header := []string{
		"threshold",
		"date",
		"status",
		"label",
		"days_from_today",
		"current_count",
		"start_date",
		"today",
		"daily_rate",
		"average_per_week",
		"end_of_year_projection",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, m := range result.Milestones {
			daysFromToday := cfg.Placeholder
			if m.Date != nil {
				daysFromToday = fmtInt(calendar.DaysBetween(in.Today, *m.Date))
			}
			rec := []string{
				fmtInt(m.Threshold),
				formatOptionalDate(m.Date, calendar.Date.String, cfg.Placeholder),
				string(m.Status),
				schema.GetPlainLabel(m.Status),
				daysFromToday,
				fmtInt(in.CurrentCount),
				in.StartDate.String(),
				in.Today.String(),
				formatOptionalFloat(result.DailyRate, fmtRate, cfg.Placeholder),
				formatOptionalFloat(result.AveragePerWeek, fmtFloat, cfg.Placeholder),
				formatOptionalInt(result.EndOfYearProjection, fmtInt, cfg.Placeholder),
			}
			if err := csvWriter.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeJSONResultsForMilestones writes the result with labels and long-form dates added.
func writeJSONResultsForMilestones(w io.Writer, result schema.PacingResult, cfg *contract.Config) error {
	// 1. Prepare the data structure for JSON with labels and formatted dates added
	type JSONPacingResult struct {
		schema.PacingResult
		Milestones    []schema.EnrichedMilestone `json:"milestones"`
		NextMilestone *int                       `json:"next_milestone"`
		Locale        string                     `json:"locale"`
	}

	output := JSONPacingResult{
		PacingResult: result,
		Milestones: schema.EnrichMilestones(result.Milestones, func(m schema.Milestone) string {
			return calendar.FormatLong(*m.Date, cfg.Locale)
		}),
		Locale: cfg.Locale,
	}
	if next, ok := result.NextMilestone(); ok {
		output.NextMilestone = &next.Threshold
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
