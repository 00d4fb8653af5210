// Package schema has configs, models and shared constants for all parts of milestones.
package schema

import "github.com/snally-dev/camp-milestones/core/calendar"

// DefaultThresholds are the cumulative counts a year is paced against.
var DefaultThresholds = []int{50, 100, 150, 200, 250}

// Milestone holds the estimate for a single threshold.
type Milestone struct {
	Threshold int             `json:"threshold"`
	Date      *calendar.Date  `json:"date"` // nil when no estimate is available
	Status    MilestoneStatus `json:"status"`
}

// Reached reports whether the threshold has already been crossed.
func (m Milestone) Reached() bool {
	return m.Status == ReachedStatus
}

// PacingInput is a single cumulative-count observation.
type PacingInput struct {
	CurrentCount int           `json:"current_count"`
	StartDate    calendar.Date `json:"start_date"`
	Today        calendar.Date `json:"today"`
}

// PacingResult is the outcome of a pacing calculation.
// Nil pointer fields mean the value is undefined for the given input.
type PacingResult struct {
	Input               PacingInput `json:"input"`
	ElapsedDays         *int        `json:"elapsed_days"`
	DailyRate           *float64    `json:"daily_rate"`
	AveragePerWeek      *float64    `json:"average_per_week"`
	DaysRemaining       *int        `json:"days_remaining"`
	EndOfYearProjection *int        `json:"end_of_year_projection"`
	Milestones          []Milestone `json:"milestones"`
}

// Defined reports whether the result carries computed values.
func (r PacingResult) Defined() bool {
	return r.AveragePerWeek != nil
}

// MilestoneDate returns the estimated date for threshold, if any.
func (r PacingResult) MilestoneDate(threshold int) (calendar.Date, bool) {
	for _, m := range r.Milestones {
		if m.Threshold == threshold && m.Date != nil {
			return *m.Date, true
		}
	}
	return calendar.Date{}, false
}

// NextMilestone returns the first milestone projected after today, if any.
func (r PacingResult) NextMilestone() (Milestone, bool) {
	for _, m := range r.Milestones {
		if m.Status == ProjectedStatus {
			return m, true
		}
	}
	return Milestone{}, false
}

// MilestoneDates returns the threshold to date mapping, with nil for absent estimates.
func (r PacingResult) MilestoneDates() map[int]*calendar.Date {
	out := make(map[int]*calendar.Date, len(r.Milestones))
	for _, m := range r.Milestones {
		out[m.Threshold] = m.Date
	}
	return out
}

// YearInfo describes the calendar year an observation falls in.
type YearInfo struct {
	Year          int           `json:"year"`
	DaysInYear    int           `json:"days_in_year"`
	Leap          bool          `json:"leap"`
	StartOfYear   calendar.Date `json:"start_of_year"`
	EndOfYear     calendar.Date `json:"end_of_year"`
	DaysElapsed   *int          `json:"days_elapsed"`   // only when today falls in Year
	DaysRemaining *int          `json:"days_remaining"` // only when today falls in Year
}
