// Package outwriter has output and writer logic.
package outwriter

import (
	"errors"
	"io"
	"time"

	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteMilestones prints a pacing result using the configured output format.
func (ow *OutWriter) WriteMilestones(result schema.PacingResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteMilestoneResults(w, result, cfg, duration)
	}, successMessage(cfg.Output))
}

// WriteYear prints calendar facts for a year using the configured output format.
func (ow *OutWriter) WriteYear(info schema.YearInfo, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteYearInfo(w, info, cfg)
	}, successMessage(cfg.Output))
}

// WriteMetrics prints the pacing formulas using the configured output format.
func (ow *OutWriter) WriteMetrics(thresholds []int, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		return errors.New("parquet output is not supported for metrics")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteMetricsDefinitions(w, thresholds, cfg)
	}, successMessage(cfg.Output))
}

func successMessage(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "Wrote JSON"
	case schema.CSVOut:
		return "Wrote CSV"
	case schema.ParquetOut:
		return "Wrote Parquet"
	default:
		return "Wrote table"
	}
}
