package repository

import (
	"context"
	"time"

	"github.com/andy/forestfocus/internal/domain"
)

// KeyValueStore persists small string values such as the theme and reward totals
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error) // ok is false when the key is unset
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// FocusLogRepository records completed focus phases
type FocusLogRepository interface {
	Create(ctx context.Context, record *domain.FocusRecord) error
	List(ctx context.Context, start, end time.Time) ([]*domain.FocusRecord, error) // completed in [start, end)
	DeleteAll(ctx context.Context) error
}
