package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/internal/parquet"
	"github.com/snally-dev/camp-milestones/schema"
)

// WriteYearInfo outputs calendar facts for a year, dispatching based on the output format configured.
func WriteYearInfo(w io.Writer, info schema.YearInfo, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, info)
	case schema.CSVOut:
		return writeCSVYear(w, info, cfg)
	case schema.ParquetOut:
		if err := parquet.WriteYearRows(w, parquet.ConvertYearInfo(info)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	default:
		return writeYearTable(w, info, cfg)
	}
}

// writeYearTable writes a two-column table of year facts.
func writeYearTable(w io.Writer, info schema.YearInfo, cfg *contract.Config) error {
	_, fmtInt := createFormatters(cfg.Locale, cfg.Precision)
	formatDate := dateFormatter(cfg)

	title := schema.YearSummary(info)
	if cfg.UseEmojis {
		title = "📅 " + title
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Field", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	leap := "no"
	if info.Leap {
		leap = "yes"
	}
	data := [][]string{
		{"Days in year", fmtInt(info.DaysInYear)},
		{"Leap year", leap},
		{"Start of year", formatDate(info.StartOfYear)},
		{"End of year", formatDate(info.EndOfYear)},
		{"Days elapsed", formatOptionalInt(info.DaysElapsed, fmtInt, cfg.Placeholder)},
		{"Days remaining", formatOptionalInt(info.DaysRemaining, fmtInt, cfg.Placeholder)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVYear writes a single CSV record for the year.
func writeCSVYear(w io.Writer, info schema.YearInfo, cfg *contract.Config) error {
	header := []string{"year", "days_in_year", "leap", "start_of_year", "end_of_year", "days_elapsed", "days_remaining"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		rec := []string{
			strconv.Itoa(info.Year),
			strconv.Itoa(info.DaysInYear),
			strconv.FormatBool(info.Leap),
			info.StartOfYear.String(),
			info.EndOfYear.String(),
			formatOptionalInt(info.DaysElapsed, strconv.Itoa, cfg.Placeholder),
			formatOptionalInt(info.DaysRemaining, strconv.Itoa, cfg.Placeholder),
		}
		if err := csvWriter.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		return nil
	})
}
