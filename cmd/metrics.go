package cmd

import (
	"github.com/snally-dev/camp-milestones/core"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of the pacing formulas.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display the formulas used to pace milestones",
	Long: `Show the formal definitions of every pacing formula.

Provides complete transparency into how milestone dates are estimated,
including the guardrails applied to each estimate. No calculation is
performed; this is purely informational.

Examples:
  # Show the pacing formulas
  milestones metrics

  # Show the formulas with thresholds from a config file
  milestones metrics --config .milestones.yaml`,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(core.ExecuteMetrics, "Cannot display metrics"),
}
