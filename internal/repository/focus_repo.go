package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/andy/forestfocus/internal/db"
	"github.com/andy/forestfocus/internal/domain"
)

// FocusLogRepo is a SQLite implementation of FocusLogRepository
type FocusLogRepo struct {
	db *db.DB
}

// NewFocusLogRepo creates a new FocusLogRepo
func NewFocusLogRepo(database *db.DB) *FocusLogRepo {
	return &FocusLogRepo{db: database}
}

// Create inserts a record and sets its ID
func (r *FocusLogRepo) Create(ctx context.Context, record *domain.FocusRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid focus record: %w", err)
	}

	query := `
		INSERT INTO focus_log (cycle, total_cycles, focus_minutes, started_at, completed_at, xp, coins)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var startedAt interface{}
	if !record.StartedAt.IsZero() {
		startedAt = record.StartedAt.UTC().Format(timeLayout)
	}

	result, err := r.db.ExecContext(ctx, query,
		record.Cycle,
		record.TotalCycles,
		record.FocusMinutes,
		startedAt,
		record.CompletedAt.UTC().Format(timeLayout),
		record.XP,
		record.Coins,
	)
	if err != nil {
		return fmt.Errorf("failed to create focus record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get focus record ID: %w", err)
	}
	record.ID = id
	return nil
}

// List returns records completed in [start, end), oldest first
func (r *FocusLogRepo) List(ctx context.Context, start, end time.Time) ([]*domain.FocusRecord, error) {
	query := `
		SELECT id, cycle, total_cycles, focus_minutes, started_at, completed_at, xp, coins
		FROM focus_log
		WHERE completed_at >= ? AND completed_at < ?
		ORDER BY completed_at, id
	`

	rows, err := r.db.QueryContext(ctx, query,
		start.UTC().Format(timeLayout),
		end.UTC().Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list focus records: %w", err)
	}
	defer rows.Close()

	var records []*domain.FocusRecord
	for rows.Next() {
		rec := &domain.FocusRecord{}
		var startedAt sql.NullString
		var completedAt string

		if err := rows.Scan(
			&rec.ID,
			&rec.Cycle,
			&rec.TotalCycles,
			&rec.FocusMinutes,
			&startedAt,
			&completedAt,
			&rec.XP,
			&rec.Coins,
		); err != nil {
			return nil, fmt.Errorf("failed to scan focus record: %w", err)
		}

		if rec.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		if startedAt.Valid {
			if rec.StartedAt, err = parseTime(startedAt.String); err != nil {
				return nil, fmt.Errorf("failed to parse started_at: %w", err)
			}
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate focus records: %w", err)
	}

	return records, nil
}

// DeleteAll clears the focus log
func (r *FocusLogRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM focus_log"); err != nil {
		return fmt.Errorf("failed to clear focus log: %w", err)
	}
	return nil
}
