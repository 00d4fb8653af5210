package outwriter

import (
	"time"

	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/schema"
)

// testConfig returns a deterministic text config wide enough for long dates.
func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{
		Output:      output,
		Precision:   1,
		Locale:      "en-US",
		Placeholder: schema.DefaultPlaceholder,
		Width:       120,
		UseColors:   false,
		UseEmojis:   false,
	}
}

func datePtr(y int, m time.Month, d int) *calendar.Date {
	date := calendar.New(y, m, d)
	return &date
}

// samplePacingResult is 120 events between January 1 and April 29, 2024.
func samplePacingResult() schema.PacingResult {
	rate, weekly := 1.0, 7.0
	elapsed, remaining, projection := 120, 246, 366
	return schema.PacingResult{
		Input: schema.PacingInput{
			CurrentCount: 120,
			StartDate:    calendar.New(2024, time.January, 1),
			Today:        calendar.New(2024, time.April, 29),
		},
		ElapsedDays:         &elapsed,
		DailyRate:           &rate,
		AveragePerWeek:      &weekly,
		DaysRemaining:       &remaining,
		EndOfYearProjection: &projection,
		Milestones: []schema.Milestone{
			{Threshold: 50, Date: datePtr(2024, time.February, 19), Status: schema.ReachedStatus},
			{Threshold: 100, Date: datePtr(2024, time.April, 9), Status: schema.ReachedStatus},
			{Threshold: 150, Date: datePtr(2024, time.May, 29), Status: schema.ProjectedStatus},
			{Threshold: 400, Status: schema.OutOfRangeStatus},
		},
	}
}

// undefinedPacingResult has a start date after today.
func undefinedPacingResult() schema.PacingResult {
	return schema.PacingResult{
		Input: schema.PacingInput{
			CurrentCount: 3,
			StartDate:    calendar.New(2024, time.May, 2),
			Today:        calendar.New(2024, time.May, 1),
		},
		Milestones: []schema.Milestone{
			{Threshold: 50, Status: schema.UndefinedStatus},
			{Threshold: 100, Status: schema.UndefinedStatus},
		},
	}
}
