// Package core has core logic for pacing a cumulative count against milestone thresholds.
package core

import (
	"context"
	"time"

	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/internal/outwriter"
	"github.com/snally-dev/camp-milestones/schema"
	"go.uber.org/zap"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteMilestones runs the pacing calculation and prints results.
// It serves as the main entry point for the 'calc' command.
func ExecuteMilestones(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	result := CalculateMilestones(cfg.CurrentCount, cfg.StartDate, cfg.Today, cfg.Thresholds...)
	counts := schema.CountByStatus(result.Milestones)
	contract.Logger().Debug("calculated milestones",
		zap.Bool("defined", result.Defined()),
		zap.Int("reached", counts[schema.ReachedStatus]),
		zap.Int("projected", counts[schema.ProjectedStatus]),
		zap.Int("out_of_range", counts[schema.OutOfRangeStatus]),
	)
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteMilestones(result, cfg, duration)
}

// ExecuteYearInfo prints the calendar facts of the configured year.
// It serves as the main entry point for the 'year' command.
func ExecuteYearInfo(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info := YearInfoFor(cfg.Year, cfg.Today)
	return outwriter.NewOutWriter().WriteYear(info, cfg)
}

// ExecuteMetrics prints the pacing formulas. No calculation is performed.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteMetrics(cfg.Thresholds, cfg)
}
