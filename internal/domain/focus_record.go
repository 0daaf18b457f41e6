package domain

import (
	"errors"
	"time"
)

// FocusRecord is one completed focus phase
type FocusRecord struct {
	ID           int64
	Cycle        int
	TotalCycles  int
	FocusMinutes int
	StartedAt    time.Time
	CompletedAt  time.Time
	XP           int
	Coins        int
}

// Duration returns the configured focus length
func (r *FocusRecord) Duration() time.Duration {
	return time.Duration(r.FocusMinutes) * time.Minute
}

// Validate returns an error if the record is invalid
func (r *FocusRecord) Validate() error {
	if r.FocusMinutes <= 0 {
		return errors.New("focus minutes must be positive")
	}
	if r.Cycle < 1 || r.Cycle > r.TotalCycles {
		return errors.New("cycle out of range")
	}
	if r.CompletedAt.IsZero() {
		return errors.New("completed time is required")
	}
	if !r.StartedAt.IsZero() && r.CompletedAt.Before(r.StartedAt) {
		return errors.New("completed time must be after start time")
	}
	return nil
}
