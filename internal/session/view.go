package session

import "github.com/andy/forestfocus/internal/domain"

// View is everything a presenter needs to draw the session
type View struct {
	RemainingText string
	StatusText    string
	PhaseLabel    string
	CycleLabel    string
	Controls      domain.Controls
	Growth        domain.Growth
	Status        domain.SessionStatus
	Phase         domain.Phase

	RewardsEnabled bool
	Rewards        domain.RewardTotals
	LastReward     *domain.RewardEvent
}

// Running reports whether the session is counting down
func (v View) Running() bool {
	return v.Status == domain.SessionRunning
}
