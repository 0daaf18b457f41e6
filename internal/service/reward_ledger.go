package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/repository"
)

const (
	KeyXP    = "forest-xp"
	KeyCoins = "forest-coins"

	storeTimeout = 2 * time.Second
)

// RewardLedger keeps XP and coin totals in memory and flushes them to the
// key/value store after every award. Store failures are logged and ignored; the
// in-memory totals stay authoritative for the life of the process.
// Totals may be read from any goroutine.
type RewardLedger struct {
	store  repository.KeyValueStore
	logger *slog.Logger

	mu     sync.Mutex
	totals domain.RewardTotals
}

// NewRewardLedger loads the persisted totals. Missing or garbled values count as zero.
func NewRewardLedger(ctx context.Context, store repository.KeyValueStore, logger *slog.Logger) *RewardLedger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &RewardLedger{store: store, logger: logger}
	l.totals = domain.RewardTotals{
		XP:    l.load(ctx, KeyXP),
		Coins: l.load(ctx, KeyCoins),
	}
	return l
}

func (l *RewardLedger) load(ctx context.Context, key string) int {
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		l.logger.Warn("failed to load reward total", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		l.logger.Warn("ignoring invalid reward total", "key", key, "value", raw)
		return 0
	}
	return n
}

// Award adds the gain for one completed focus phase and persists the totals
func (l *RewardLedger) Award(focusMinutes float64) domain.RewardEvent {
	gain := domain.GainForFocus(focusMinutes)

	l.mu.Lock()
	l.totals = l.totals.Add(gain)
	totals := l.totals
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	l.flush(ctx, totals)

	l.logger.Info("focus rewarded", "xp", gain.XP, "coins", gain.Coins,
		"total_xp", totals.XP, "total_coins", totals.Coins)
	return domain.RewardEvent{Gain: gain, Totals: totals}
}

// Totals returns the in-memory totals
func (l *RewardLedger) Totals() domain.RewardTotals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals
}

// Reset zeroes the totals in memory and in the store
func (l *RewardLedger) Reset(ctx context.Context) error {
	l.mu.Lock()
	l.totals = domain.RewardTotals{}
	l.mu.Unlock()

	if err := l.store.Delete(ctx, KeyXP); err != nil {
		return err
	}
	return l.store.Delete(ctx, KeyCoins)
}

func (l *RewardLedger) flush(ctx context.Context, totals domain.RewardTotals) {
	if err := l.store.Set(ctx, KeyXP, strconv.Itoa(totals.XP)); err != nil {
		l.logger.Warn("failed to save XP total", "error", err)
	}
	if err := l.store.Set(ctx, KeyCoins, strconv.Itoa(totals.Coins)); err != nil {
		l.logger.Warn("failed to save coin total", "error", err)
	}
}
