package schema

import (
	"strconv"
	"strings"
)

// FormatThresholds joins thresholds with sep, e.g. "50, 100, 150".
func FormatThresholds(thresholds []int, sep string) string {
	parts := make([]string, len(thresholds))
	for i, t := range thresholds {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, sep)
}

// CountByStatus tallies milestones per status.
func CountByStatus(milestones []Milestone) map[MilestoneStatus]int {
	counts := make(map[MilestoneStatus]int, len(AllMilestoneStatuses))
	for _, m := range milestones {
		counts[m.Status]++
	}
	return counts
}

// YearSummary renders a short description such as "2024 (leap, 366 days)".
func YearSummary(info YearInfo) string {
	kind := "common"
	if info.Leap {
		kind = "leap"
	}
	return strconv.Itoa(info.Year) + " (" + kind + ", " + strconv.Itoa(info.DaysInYear) + " days)"
}
