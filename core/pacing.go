package core

import (
	"math"
	"time"

	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/schema"
)

// MaxDailyRate caps the daily rate: at most one qualifying event per day.
const MaxDailyRate = 1.0

// ElapsedDays returns the inclusive number of days from start to today.
// Same-day input yields 1, and the result never drops below 1.
func ElapsedDays(start, today calendar.Date) int {
	return max(1, int(today.DayNumber()-start.DayNumber())+1)
}

// DailyRate estimates events per day since start, clamped to [0, MaxDailyRate].
// A count implying a faster pace (e.g. backfilled data) is clamped, not rejected.
func DailyRate(currentCount int, start, today calendar.Date) float64 {
	raw := float64(currentCount) / float64(ElapsedDays(start, today))
	return clamp(raw, 0, MaxDailyRate)
}

// AveragePerWeek converts a daily rate to a weekly average.
func AveragePerWeek(dailyRate float64) float64 {
	return dailyRate * 7
}

// MilestoneDate estimates when threshold was or will be crossed.
// The second return value is false when no estimate is available.
func MilestoneDate(threshold, currentCount int, dailyRate float64, start, today calendar.Date) (calendar.Date, bool) {
	date, status := estimateMilestone(threshold, currentCount, dailyRate, start, today)
	return date, status == schema.ReachedStatus || status == schema.ProjectedStatus
}

// estimateMilestone holds the milestone arithmetic and classifies the outcome.
func estimateMilestone(threshold, currentCount int, dailyRate float64, start, today calendar.Date) (calendar.Date, schema.MilestoneStatus) {
	if !(dailyRate > 0) {
		return calendar.Date{}, schema.NoPaceStatus
	}
	eoy := calendar.EndOfYear(start.Year)

	if currentCount >= threshold {
		// The n-th event at a constant pace lands ceil(n/rate)-1 days after start.
		daysFromStart := math.Ceil(float64(threshold)/dailyRate) - 1

		// Clamp to today first; the year-end bound is checked on the clamped value.
		// Compared as float64: a tiny rate puts the offset beyond the int range.
		if daysFromStart > float64(calendar.DaysBetween(start, today)) {
			return today, schema.ReachedStatus
		}
		reached := start.AddDays(int(max(0, daysFromStart)))
		if reached.After(eoy) {
			return calendar.Date{}, schema.OutOfRangeStatus
		}
		return reached, schema.ReachedStatus
	}

	remaining := threshold - currentCount
	daysNeeded := math.Ceil(float64(remaining) / dailyRate)
	if daysNeeded > float64(calendar.DaysBetween(today, eoy)) {
		return calendar.Date{}, schema.OutOfRangeStatus
	}
	return today.AddDays(int(daysNeeded)), schema.ProjectedStatus
}

// DaysRemaining returns the number of days after today until December 31 of today's year.
func DaysRemaining(today calendar.Date) int {
	return max(0, calendar.DaysBetween(today, calendar.EndOfYear(today.Year)))
}

// EndOfYearProjection extrapolates the cumulative count at December 31 of today's year.
func EndOfYearProjection(currentCount int, dailyRate float64, today calendar.Date) int {
	projected := float64(currentCount) + dailyRate*float64(DaysRemaining(today))
	return int(math.Floor(projected))
}

// Paceable reports whether an observation can be paced. Start and today must share
// a calendar year, start must not be after today and the count must be non-negative.
func Paceable(currentCount int, start, today calendar.Date) bool {
	return currentCount >= 0 && start.Year == today.Year && !start.After(today)
}

// CalculateMilestones computes pacing statistics for one observation.
// Thresholds default to schema.DefaultThresholds and are evaluated independently.
// Input that cannot be paced yields a result whose fields are all undefined.
func CalculateMilestones(currentCount int, startDate, today calendar.Date, thresholds ...int) schema.PacingResult {
	if len(thresholds) == 0 {
		thresholds = schema.DefaultThresholds
	}
	result := schema.PacingResult{
		Input: schema.PacingInput{
			CurrentCount: currentCount,
			StartDate:    startDate,
			Today:        today,
		},
		Milestones: make([]schema.Milestone, 0, len(thresholds)),
	}

	if !Paceable(currentCount, startDate, today) {
		for _, threshold := range thresholds {
			result.Milestones = append(result.Milestones, schema.Milestone{
				Threshold: threshold,
				Status:    schema.UndefinedStatus,
			})
		}
		return result
	}

	elapsed := ElapsedDays(startDate, today)
	rate := DailyRate(currentCount, startDate, today)
	weekly := AveragePerWeek(rate)
	remaining := DaysRemaining(today)
	projection := EndOfYearProjection(currentCount, rate, today)

	result.ElapsedDays = &elapsed
	result.DailyRate = &rate
	result.AveragePerWeek = &weekly
	result.DaysRemaining = &remaining
	result.EndOfYearProjection = &projection

	for _, threshold := range thresholds {
		m := schema.Milestone{Threshold: threshold}
		date, status := estimateMilestone(threshold, currentCount, rate, startDate, today)
		m.Status = status
		if status == schema.ReachedStatus || status == schema.ProjectedStatus {
			m.Date = &date
		}
		result.Milestones = append(result.Milestones, m)
	}
	return result
}

// CalculateMilestonesAt normalizes instants to calendar dates before calculating.
// Time-of-day is dropped using each instant's own location.
func CalculateMilestonesAt(currentCount int, start, now time.Time, thresholds ...int) schema.PacingResult {
	return CalculateMilestones(currentCount, calendar.StartOfDay(start), calendar.StartOfDay(now), thresholds...)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
