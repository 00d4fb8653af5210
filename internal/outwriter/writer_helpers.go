package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/internal/contract"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() {
			if err := file.Close(); err != nil {
				contract.LogWarn("Cannot close output file", err)
			}
		}()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatters creates the number formatters used across output types.
// A non-empty locale formats numbers the way that locale writes them (e.g. "3,5" in German);
// an empty locale keeps machine-readable output.
func createFormatters(locale string, precision int) (fmtFloat func(float64) string, fmtInt func(int) string) {
	numFmt := "%." + strconv.Itoa(precision) + "f"
	if locale == "" {
		fmtFloat = func(v float64) string { return fmt.Sprintf(numFmt, v) }
		return fmtFloat, strconv.Itoa
	}

	p := message.NewPrinter(language.Make(locale))
	fmtFloat = func(v float64) string { return p.Sprintf(numFmt, v) }
	fmtInt = func(v int) string { return p.Sprintf("%d", v) }
	return fmtFloat, fmtInt
}

// formatOptionalFloat renders v or the placeholder when v is absent.
func formatOptionalFloat(v *float64, fmtFloat func(float64) string, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return fmtFloat(*v)
}

// formatOptionalInt renders v or the placeholder when v is absent.
func formatOptionalInt(v *int, fmtInt func(int) string, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return fmtInt(*v)
}

// formatOptionalDate renders d or the placeholder when d is absent.
func formatOptionalDate(d *calendar.Date, formatDate func(calendar.Date) string, placeholder string) string {
	if d == nil {
		return placeholder
	}
	return formatDate(*d)
}

// pluralDays renders "1 day" or "n days".
func pluralDays(n int, fmtInt func(int) string) string {
	if n == 1 {
		return "1 day"
	}
	return fmtInt(n) + " days"
}
