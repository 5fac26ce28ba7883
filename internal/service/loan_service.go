package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"loanlens/internal/domain"
	"loanlens/internal/port"
)

// LoanService manages versioned ByteLOS loan snapshots.
type LoanService interface {
	IngestSnapshot(ctx context.Context, loanID string, data json.RawMessage, actor domain.AuthContext) (*domain.LoanSnapshot, error)
	GetSnapshot(ctx context.Context, loanID string) (*domain.LoanSnapshot, error)
}

type loanService struct {
	snapshots port.LoanSnapshotRepository
}

// NewLoanService creates a LoanService. Validation reports key their
// cache entries by snapshot version, so ingesting a new snapshot needs
// no invalidation here.
func NewLoanService(snapshots port.LoanSnapshotRepository) LoanService {
	return &loanService{snapshots: snapshots}
}

func (s *loanService) IngestSnapshot(ctx context.Context, loanID string, data json.RawMessage, actor domain.AuthContext) (*domain.LoanSnapshot, error) {
	if loanID == "" {
		return nil, fmt.Errorf("%w: loan id is required", domain.ErrInvalidInput)
	}
	// The record must be a JSON object; the engine navigates it by path.
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: loan record must be a JSON object", domain.ErrInvalidInput)
	}

	version, err := s.snapshots.NextVersion(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("loanService.IngestSnapshot: %w", err)
	}

	snapshot := &domain.LoanSnapshot{
		ID:        uuid.New(),
		LoanID:    loanID,
		Version:   version,
		Data:      data,
		CreatedBy: actor.UserID,
	}
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("loanService.IngestSnapshot: %w", err)
	}

	log.Printf("loanService.IngestSnapshot: loan=%s version=%d by=%s", loanID, version, actor.UserID)
	return snapshot, nil
}

func (s *loanService) GetSnapshot(ctx context.Context, loanID string) (*domain.LoanSnapshot, error) {
	snapshot, err := s.snapshots.GetLatest(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
