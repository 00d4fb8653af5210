package core

import (
	"testing"
	"time"

	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FuzzCalculateMilestones fuzzes CalculateMilestones with observations inside a single year.
func FuzzCalculateMilestones(f *testing.F) {
	seeds := []struct {
		year      int
		startDay  int
		todayDay  int
		count     int
		threshold int
	}{
		{2024, 0, 9, 10, 50},
		{2024, 0, 0, 1, 50},
		{2023, 30, 200, 0, 100},
		{2024, 0, 365, 366, 250},
		{1900, 58, 59, 400, 1},
	}
	for _, seed := range seeds {
		f.Add(seed.year, seed.startDay, seed.todayDay, seed.count, seed.threshold)
	}

	f.Fuzz(func(t *testing.T, year, startDay, todayDay, count, threshold int) {
		year = 1 + abs(year)%9999
		days := calendar.DaysInYear(year)
		jan1 := calendar.StartOfYear(year)
		start := jan1.AddDays(abs(startDay) % days)
		today := jan1.AddDays(abs(todayDay) % days)
		count = abs(count) % 10000
		threshold = 1 + abs(threshold)%10000

		res := CalculateMilestones(count, start, today, threshold)
		if today.Before(start) {
			assert.False(t, res.Defined())
			return
		}
		require.True(t, res.Defined())

		rate := *res.DailyRate
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, MaxDailyRate)
		assert.Equal(t, rate*7, *res.AveragePerWeek)
		assert.GreaterOrEqual(t, *res.EndOfYearProjection, count)

		require.Len(t, res.Milestones, 1)
		m := res.Milestones[0]
		switch m.Status {
		case schema.ReachedStatus:
			require.NotNil(t, m.Date)
			assert.False(t, m.Date.Before(start))
			assert.False(t, m.Date.After(today))
		case schema.ProjectedStatus:
			require.NotNil(t, m.Date)
			assert.True(t, m.Date.After(today))
			assert.False(t, m.Date.After(calendar.EndOfYear(year)))
		default:
			assert.Nil(t, m.Date)
		}
	})
}

// FuzzMilestoneOrdering checks that estimates never decrease as thresholds grow.
func FuzzMilestoneOrdering(f *testing.F) {
	f.Add(10, 9, 180)
	f.Add(120, 119, 0)
	f.Add(3, 300, 64)

	f.Fuzz(func(t *testing.T, count, elapsed, offset int) {
		start := calendar.New(2024, time.January, 1).AddDays(abs(offset) % 100)
		today := start.AddDays(abs(elapsed) % 200)
		count = abs(count) % 500

		res := CalculateMilestones(count, start, today, 1, 10, 50, 100, 150, 200, 250, 300)
		require.True(t, res.Defined())

		var prev *calendar.Date
		for _, m := range res.Milestones {
			if m.Date == nil {
				continue
			}
			if prev != nil {
				assert.False(t, m.Date.Before(*prev), "threshold %d", m.Threshold)
			}
			prev = m.Date
		}
	})
}

func abs(n int) int {
	if n < 0 {
		// MinInt has no positive counterpart.
		if n == -n {
			return 0
		}
		return -n
	}
	return n
}
