package service

import (
	"context"
	"time"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/repository"
)

// PeriodStats summarizes completed focus phases in a period
type PeriodStats struct {
	Start        time.Time
	End          time.Time
	Sessions     int
	FocusMinutes int
	XP           int
	Coins        int
}

// Hours returns focus time in hours
func (p PeriodStats) Hours() float64 {
	return float64(p.FocusMinutes) / 60
}

// Summary is what the stats screen shows
type Summary struct {
	Today   PeriodStats
	Week    PeriodStats
	Rewards domain.RewardTotals
}

// StatsService aggregates the focus log
type StatsService interface {
	Summary(ctx context.Context, now time.Time) (*Summary, error)
	Period(ctx context.Context, start, end time.Time) (PeriodStats, error)
}

type statsService struct {
	focusRepo repository.FocusLogRepository
	rewards   func() domain.RewardTotals
}

// NewStatsService creates a stats service. rewards may be nil when rewards are disabled.
func NewStatsService(focusRepo repository.FocusLogRepository, rewards func() domain.RewardTotals) StatsService {
	return &statsService{focusRepo: focusRepo, rewards: rewards}
}

func (s *statsService) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Week start (Monday)
	weekStart := dayStart
	for weekStart.Weekday() != time.Monday {
		weekStart = weekStart.AddDate(0, 0, -1)
	}

	today, err := s.Period(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	week, err := s.Period(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	summary := &Summary{Today: today, Week: week}
	if s.rewards != nil {
		summary.Rewards = s.rewards()
	}
	return summary, nil
}

func (s *statsService) Period(ctx context.Context, start, end time.Time) (PeriodStats, error) {
	records, err := s.focusRepo.List(ctx, start, end)
	if err != nil {
		return PeriodStats{}, err
	}

	stats := PeriodStats{Start: start, End: end}
	for _, r := range records {
		stats.Sessions++
		stats.FocusMinutes += r.FocusMinutes
		stats.XP += r.XP
		stats.Coins += r.Coins
	}
	return stats, nil
}
