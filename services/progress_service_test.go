package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed reference time for every test: 2025-06-15 10:30 UTC
var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func logOn(daysAgo int, hour int) models.HabitLog {
	d := testNow.AddDate(0, 0, -daysAgo)
	return models.HabitLog{
		HabitName: "Recycled items",
		Date:      time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC),
	}
}

func TestComputeProgressEmpty(t *testing.T) {
	stats := computeProgress(nil, testNow)

	assert.Equal(t, 0, stats.TotalHabits)
	assert.Equal(t, 0, stats.ThisWeek)
	assert.Equal(t, 0, stats.ThisMonth)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0.0, stats.CompletionPercentage)
	assert.Equal(t, make([]int, 7), stats.WeeklyProgress)
	assert.Equal(t, make([]int, 30), stats.MonthlyProgress)
}

func TestComputeProgressWindowLengthsAlwaysFixed(t *testing.T) {
	for _, logs := range [][]models.HabitLog{
		nil,
		{logOn(0, 9)},
		{logOn(0, 9), logOn(3, 9), logOn(45, 9), logOn(200, 9)},
	} {
		stats := computeProgress(logs, testNow)
		assert.Len(t, stats.WeeklyProgress, 7)
		assert.Len(t, stats.MonthlyProgress, 30)
	}
}

func TestComputeProgressStreakStopsAtFirstGap(t *testing.T) {
	// entries today, -1, -2, then a gap, then -10
	logs := []models.HabitLog{
		logOn(0, 8), logOn(1, 8), logOn(2, 8), logOn(10, 8),
	}

	stats := computeProgress(logs, testNow)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 4, stats.TotalHabits)
}

func TestComputeProgressStreakZeroWithoutEntryToday(t *testing.T) {
	logs := []models.HabitLog{
		logOn(1, 8), logOn(2, 8), logOn(3, 8),
	}

	stats := computeProgress(logs, testNow)
	assert.Equal(t, 0, stats.CurrentStreak)
}

func TestComputeProgressMonthWithMissingToday(t *testing.T) {
	// one entry per day for days 1..29, extras on days 1..5, plus one entry
	// on day 30 at an hour before the rolling now-30d cutoff: 35 entries,
	// 34 of which count toward this_month.
	var logs []models.HabitLog
	for d := 1; d <= 29; d++ {
		logs = append(logs, logOn(d, 12))
	}
	for d := 1; d <= 5; d++ {
		logs = append(logs, logOn(d, 18))
	}
	logs = append(logs, logOn(30, 9)) // 09:00 < the 10:30 cutoff

	require.Len(t, logs, 35)

	stats := computeProgress(logs, testNow)
	assert.Equal(t, 35, stats.TotalHabits)
	assert.Equal(t, 34, stats.ThisMonth)
	// today is empty, so the streak breaks immediately
	assert.Equal(t, 0, stats.CurrentStreak)
}

func TestComputeProgressCountMonotonicity(t *testing.T) {
	logs := []models.HabitLog{
		logOn(0, 8), logOn(2, 8), logOn(6, 8),
		logOn(12, 8), logOn(25, 8),
		logOn(60, 8), logOn(120, 8),
	}

	stats := computeProgress(logs, testNow)
	assert.LessOrEqual(t, stats.ThisWeek, stats.ThisMonth)
	assert.LessOrEqual(t, stats.ThisMonth, stats.TotalHabits)
	assert.Equal(t, 3, stats.ThisWeek)
	assert.Equal(t, 5, stats.ThisMonth)
	assert.Equal(t, 7, stats.TotalHabits)
}

func TestComputeProgressWeeklySumMatchesThisWeek(t *testing.T) {
	// distinct calendar days inside the 7-day window
	logs := []models.HabitLog{
		logOn(0, 9), logOn(2, 9), logOn(4, 9),
	}

	stats := computeProgress(logs, testNow)

	sum := 0
	for _, n := range stats.WeeklyProgress {
		sum += n
	}
	assert.Equal(t, stats.ThisWeek, sum)
	assert.Equal(t, 3, sum)
}

func TestComputeProgressWeeklyOrderOldestFirst(t *testing.T) {
	logs := []models.HabitLog{
		logOn(6, 9),          // oldest day in the window
		logOn(0, 9), logOn(0, 15), // two today
	}

	stats := computeProgress(logs, testNow)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 2}, stats.WeeklyProgress)
}

func TestComputeProgressCompletionPercentage(t *testing.T) {
	// 15 entries this month -> 50%
	var logs []models.HabitLog
	for d := 1; d <= 15; d++ {
		logs = append(logs, logOn(d, 12))
	}
	stats := computeProgress(logs, testNow)
	assert.InDelta(t, 50.0, stats.CompletionPercentage, 1e-9)

	// 36 entries this month -> capped at 100%
	for d := 1; d <= 21; d++ {
		logs = append(logs, logOn(d, 13))
	}
	stats = computeProgress(logs, testNow)
	assert.Equal(t, 36, stats.ThisMonth)
	assert.Equal(t, 100.0, stats.CompletionPercentage)
}

func TestComputeProgressNormalizesToUTCDay(t *testing.T) {
	// 01:30 +03:00 on June 15 is 22:30 UTC on June 14
	local := time.Date(2025, 6, 15, 1, 30, 0, 0, time.FixedZone("EEST", 3*3600))
	logs := []models.HabitLog{{HabitName: "Composted", Date: local}}

	stats := computeProgress(logs, testNow)
	assert.Equal(t, 0, stats.CurrentStreak) // not today in UTC
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 0}, stats.WeeklyProgress)
}

func TestComputeProgressFutureEntries(t *testing.T) {
	logs := []models.HabitLog{
		logOn(-3, 9), // dated three days ahead
		logOn(0, 9),
	}

	stats := computeProgress(logs, testNow)
	// future entries count toward the rolling totals but land in no bucket
	assert.Equal(t, 2, stats.TotalHabits)
	assert.Equal(t, 2, stats.ThisWeek)
	sum := 0
	for _, n := range stats.MonthlyProgress {
		sum += n
	}
	assert.Equal(t, 1, sum)
}

func TestBucketCountsByDay(t *testing.T) {
	start := dayStartUTC(testNow).AddDate(0, 0, -2)
	logs := []models.HabitLog{
		logOn(2, 0),  // first bucket, midnight edge
		logOn(2, 23), // same bucket, end of day
		logOn(1, 12),
		logOn(3, 12), // before the window
		logOn(0, 10),
	}

	counts := bucketCountsByDay(logs, start, 3)
	assert.Equal(t, []int{2, 1, 1}, counts)
}

func TestBucketCountsByDayAgreesWithStreakBuckets(t *testing.T) {
	logs := []models.HabitLog{logOn(0, 7), logOn(1, 23), logOn(2, 0)}
	stats := computeProgress(logs, testNow)

	// the weekly window is the tail of the monthly window
	assert.Equal(t, stats.MonthlyProgress[23:], stats.WeeklyProgress)
	assert.Equal(t, 3, stats.CurrentStreak)
}
