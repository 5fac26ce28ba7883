package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"loanlens/internal/domain"
	"loanlens/internal/port"
)

type loanSnapshotRepo struct {
	db *sqlx.DB
}

// NewLoanSnapshotRepo creates a new PostgreSQL-backed LoanSnapshotRepository.
func NewLoanSnapshotRepo(db *sqlx.DB) port.LoanSnapshotRepository {
	return &loanSnapshotRepo{db: db}
}

func (r *loanSnapshotRepo) Create(ctx context.Context, snapshot *domain.LoanSnapshot) error {
	snapshot.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO loan_snapshots (id, loan_id, version, data, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		snapshot.ID, snapshot.LoanID, snapshot.Version, snapshot.Data,
		snapshot.CreatedBy, snapshot.CreatedAt)
	if err != nil {
		return fmt.Errorf("loanSnapshotRepo.Create: %w", err)
	}
	return nil
}

func (r *loanSnapshotRepo) GetLatest(ctx context.Context, loanID string) (*domain.LoanSnapshot, error) {
	var snapshot domain.LoanSnapshot
	err := r.db.GetContext(ctx, &snapshot,
		`SELECT * FROM loan_snapshots WHERE loan_id = $1
		 ORDER BY version DESC LIMIT 1`, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("loanSnapshotRepo.GetLatest: %w", err)
	}
	return &snapshot, nil
}

func (r *loanSnapshotRepo) GetVersion(ctx context.Context, loanID string, version int) (*domain.LoanSnapshot, error) {
	var snapshot domain.LoanSnapshot
	err := r.db.GetContext(ctx, &snapshot,
		"SELECT * FROM loan_snapshots WHERE loan_id = $1 AND version = $2",
		loanID, version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("loanSnapshotRepo.GetVersion: %w", err)
	}
	return &snapshot, nil
}

func (r *loanSnapshotRepo) NextVersion(ctx context.Context, loanID string) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next,
		"SELECT COALESCE(MAX(version), 0) + 1 FROM loan_snapshots WHERE loan_id = $1",
		loanID)
	if err != nil {
		return 0, fmt.Errorf("loanSnapshotRepo.NextVersion: %w", err)
	}
	return next, nil
}
