package domain

import "math"

// RewardTotals are the cumulative rewards persisted across sessions
type RewardTotals struct {
	XP    int
	Coins int
}

// Add returns the totals with gain applied
func (t RewardTotals) Add(gain RewardGain) RewardTotals {
	return RewardTotals{XP: t.XP + gain.XP, Coins: t.Coins + gain.Coins}
}

// RewardGain is what a single completed focus phase earns
type RewardGain struct {
	XP    int
	Coins int
}

// GainForFocus computes the reward for completing a focus phase of the given
// length: ten XP per minute and a coin per five minutes, never less than one coin.
func GainForFocus(focusMinutes float64) RewardGain {
	if focusMinutes < 0 {
		focusMinutes = 0
	}
	coins := int(math.Round(focusMinutes / 5))
	if coins < 1 {
		coins = 1
	}
	return RewardGain{
		XP:    int(math.Round(focusMinutes * 10)),
		Coins: coins,
	}
}

// RewardEvent is emitted when a focus phase completes
type RewardEvent struct {
	Gain   RewardGain
	Totals RewardTotals
}
