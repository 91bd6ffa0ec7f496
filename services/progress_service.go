package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// ErrDataUnavailable is returned when the habit store cannot be read. The
// aggregator never computes over partial data.
var ErrDataUnavailable = errors.New("habit data unavailable")

const (
	streakWindowDays = 30   // max days the streak walk goes back
	monthlyTarget    = 30   // actions per 30 days for 100% completion
	fetchCap         = 1000 // upper bound on entries pulled per user
)

type ProgressService struct{ db *gorm.DB }

func NewProgressService(db *gorm.DB) *ProgressService { return &ProgressService{db: db} }

type ProgressStats struct {
	TotalHabits          int     `json:"total_habits"`
	ThisWeek             int     `json:"this_week"`
	ThisMonth            int     `json:"this_month"`
	CurrentStreak        int     `json:"current_streak"`
	CompletionPercentage float64 `json:"completion_percentage"`
	WeeklyProgress       []int   `json:"weekly_progress"`  // today-6 .. today
	MonthlyProgress      []int   `json:"monthly_progress"` // today-29 .. today
}

// Stats fetches the user's habit log and aggregates it against the current
// UTC time. The only failure mode is the store fetch.
func (s *ProgressService) Stats(ctx context.Context, userID uint) (*ProgressStats, error) {
	var logs []models.HabitLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(fetchCap).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	out := computeProgress(logs, time.Now().UTC())
	return &out, nil
}

// computeProgress is the pure aggregation over an immutable snapshot of one
// user's entries. Entries are matched to calendar days by the UTC date
// portion of Date only.
func computeProgress(logs []models.HabitLog, now time.Time) ProgressStats {
	today := dayStartUTC(now)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.Add(-30 * 24 * time.Hour)

	stats := ProgressStats{TotalHabits: len(logs)}
	for _, l := range logs {
		d := l.Date.UTC()
		if !d.Before(weekAgo) {
			stats.ThisWeek++
		}
		if !d.Before(monthAgo) {
			stats.ThisMonth++
		}
	}

	stats.MonthlyProgress = bucketCountsByDay(logs, today.AddDate(0, 0, -(streakWindowDays-1)), streakWindowDays)
	stats.WeeklyProgress = bucketCountsByDay(logs, today.AddDate(0, 0, -6), 7)

	// The streak is read straight off the 30-day buckets: consecutive
	// non-empty days ending at today. An empty today means 0.
	for i := len(stats.MonthlyProgress) - 1; i >= 0; i-- {
		if stats.MonthlyProgress[i] == 0 {
			break
		}
		stats.CurrentStreak++
	}

	stats.CompletionPercentage = math.Min(100.0, float64(stats.ThisMonth)/monthlyTarget*100.0)
	return stats
}

// bucketCountsByDay counts entries per UTC calendar day over numDays days
// starting at startDay, oldest first. Entries outside the window are ignored.
func bucketCountsByDay(logs []models.HabitLog, startDay time.Time, numDays int) []int {
	counts := make([]int, numDays)
	for _, l := range logs {
		idx := int(dayStartUTC(l.Date).Sub(startDay).Hours() / 24)
		if idx >= 0 && idx < numDays {
			counts[idx]++
		}
	}
	return counts
}

func dayStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
