package cmd

import (
	"github.com/snally-dev/camp-milestones/core"
	"github.com/spf13/cobra"
)

// yearCmd shows the calendar facts of a year.
var yearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Show the length of a year and the days left in it.",
	Long: `Describe a Gregorian calendar year.

Shows the number of days, whether the year is a leap year and its first and
last day. When today falls in the year, the days elapsed and remaining are
shown as well.

Examples:
  # Describe the current year
  milestones year

  # Describe a past century year
  milestones year 1900 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(core.ExecuteYearInfo, "Cannot describe year"),
}
