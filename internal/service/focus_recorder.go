package service

import (
	"context"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/repository"
)

// FocusRecorder writes completed focus phases to the focus log
type FocusRecorder struct {
	repo repository.FocusLogRepository
}

// NewFocusRecorder creates a FocusRecorder
func NewFocusRecorder(repo repository.FocusLogRepository) *FocusRecorder {
	return &FocusRecorder{repo: repo}
}

// RecordFocus stores rec; callers decide what to do with a failure
func (r *FocusRecorder) RecordFocus(rec domain.FocusRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	return r.repo.Create(ctx, &rec)
}
