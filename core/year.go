package core

import (
	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/schema"
)

// YearInfoFor describes year. Elapsed and remaining days are set only when today falls in year.
func YearInfoFor(year int, today calendar.Date) schema.YearInfo {
	days := calendar.DaysInYear(year)
	info := schema.YearInfo{
		Year:        year,
		DaysInYear:  days,
		Leap:        days == 366,
		StartOfYear: calendar.StartOfYear(year),
		EndOfYear:   calendar.EndOfYear(year),
	}
	if today.Year == year {
		elapsed := calendar.DaysBetween(info.StartOfYear, today) + 1
		remaining := DaysRemaining(today)
		info.DaysElapsed = &elapsed
		info.DaysRemaining = &remaining
	}
	return info
}
