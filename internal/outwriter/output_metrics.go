package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/schema"
)

// WriteMetricsDefinitions displays the formal definitions of the pacing formulas.
// This is a static display that does not require a calculation.
func WriteMetricsDefinitions(w io.Writer, thresholds []int, cfg *contract.Config) error {
	// Build the complete render model with all processed data
	renderModel := buildMetricsRenderModel(thresholds)

	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, renderModel)
	case schema.CSVOut:
		return writeCSVWithHeader(w, []string{"Key", "Name", "Purpose", "Formula"}, func(csvWriter *csv.Writer) error {
			return writeCSVMetrics(csvWriter, renderModel)
		})
	default:
		return writeMetricsText(w, renderModel, cfg)
	}
}

// writeMetricsText displays metrics in human-readable text format.
func writeMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	title := renderModel.Title
	if cfg.UseEmojis {
		title = "🧮 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, underline(title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Thresholds: %s\n\n", schema.FormatThresholds(renderModel.Thresholds, ", ")); err != nil {
		return err
	}

	for _, f := range renderModel.Formulas {
		if _, err := fmt.Fprintf(w, "%s: %s\n   Formula: %s = %s\n\n", f.Name, f.Purpose, f.Key, f.Formula); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Guardrails\n"); err != nil {
		return err
	}
	keys := make([]string, 0, len(renderModel.Guardrails))
	for k := range renderModel.Guardrails {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "- %s\n", renderModel.Guardrails[k]); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVMetrics writes one CSV record per formula.
func writeCSVMetrics(w *csv.Writer, renderModel *schema.MetricsRenderModel) error {
	for _, f := range renderModel.Formulas {
		record := []string{string(f.Key), f.Name, f.Purpose, f.Formula}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

// buildMetricsRenderModel constructs the complete render model with all processed data.
func buildMetricsRenderModel(thresholds []int) *schema.MetricsRenderModel {
	if len(thresholds) == 0 {
		thresholds = schema.DefaultThresholds
	}
	return &schema.MetricsRenderModel{
		Title:       "Milestone Pacing Formulas",
		Description: "All dates are whole calendar days; the daily rate never exceeds one per day",
		Thresholds:  slices.Clone(thresholds),
		Formulas: []schema.FormulaDefinition{
			{
				Key:     schema.FormulaElapsed,
				Name:    "Elapsed days",
				Purpose: "Inclusive days observed since the start date",
				Formula: "max(1, today - start + 1)",
			},
			{
				Key:     schema.FormulaRate,
				Name:    "Daily rate",
				Purpose: "Average events per day, capped at one",
				Formula: "clamp(count / elapsed_days, 0, 1)",
			},
			{
				Key:     schema.FormulaWeekly,
				Name:    "Average per week",
				Purpose: "Daily rate expressed per week",
				Formula: "daily_rate * 7",
			},
			{
				Key:     schema.FormulaReached,
				Name:    "Reached date",
				Purpose: "Backward estimate for thresholds already crossed",
				Formula: "min(today, start + max(0, ceil(threshold / daily_rate) - 1))",
			},
			{
				Key:     schema.FormulaProjected,
				Name:    "Projected date",
				Purpose: "Forward estimate for thresholds not yet crossed",
				Formula: "today + ceil((threshold - count) / daily_rate)",
			},
			{
				Key:     schema.FormulaProjection,
				Name:    "End of year projection",
				Purpose: "Expected count on December 31",
				Formula: "floor(count + daily_rate * days_remaining)",
			},
		},
		Guardrails: map[string]string{
			"clamp_order": "Reached dates are clamped to today before the year end bound is checked",
			"no_pace":     "A daily rate of zero leaves every milestone without a date",
			"same_year":   "Start and today must share a calendar year and start cannot be after today",
			"year_end":    "Dates after December 31 of the start year are dropped",
		},
	}
}

func underline(s string) string {
	return strings.Repeat("=", utf8.RuneCountInString(s))
}
