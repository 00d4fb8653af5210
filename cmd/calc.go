package cmd

import (
	"github.com/snally-dev/camp-milestones/core"
	"github.com/spf13/cobra"
)

// calcCmd paces the current count against the milestone thresholds.
var calcCmd = &cobra.Command{
	Use:   "calc [count]",
	Short: "Estimate when each milestone was or will be reached.",
	Long: `Pace a cumulative count against yearly milestone thresholds.

The daily rate is the count divided by the inclusive days since the start
date, capped at one per day. With that rate, calc estimates:
- When each threshold already crossed was reached
- When each remaining threshold will be reached this year
- The weekly average and the expected count on December 31

Milestones that cannot be reached before the end of the year are shown
as out of range.

Examples:
  # Pace 42 days counted since January 1
  milestones calc 42

  # Pace from a custom start date as of a fixed day
  milestones calc --count 42 --start 2024-02-01 --today 2024-05-15

  # Use custom thresholds with German dates
  milestones calc 42 --thresholds 30,60,90 --locale de

  # Thresholds and dates may also come from .milestones.yaml:
  #   thresholds: [30, 60, 90]
  #   today: 2024-05-15
  milestones calc 42

  # Export milestone rows for later analysis
  milestones calc 42 --output parquet --output-file milestones.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(core.ExecuteMilestones, "Cannot calculate milestones"),
}
