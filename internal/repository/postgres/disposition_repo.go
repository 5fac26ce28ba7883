package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"loanlens/internal/domain"
	"loanlens/internal/port"
)

type dispositionRepo struct {
	db *sqlx.DB
}

// NewDispositionRepo creates a new PostgreSQL-backed DispositionRepository.
func NewDispositionRepo(db *sqlx.DB) port.DispositionRepository {
	return &dispositionRepo{db: db}
}

func (r *dispositionRepo) Create(ctx context.Context, disp *domain.Disposition) error {
	now := time.Now().UTC()
	disp.CreatedAt = now
	disp.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dispositions (
			id, loan_id, document_id, field_name, item_status, action, status,
			notes, created_by, assigned_to, resolved_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		disp.ID, disp.LoanID, disp.DocumentID, disp.FieldName, disp.ItemStatus,
		disp.Action, disp.Status, disp.Notes, disp.CreatedBy, disp.AssignedTo,
		disp.ResolvedAt, disp.CreatedAt, disp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("dispositionRepo.Create: %w", err)
	}
	return nil
}

func (r *dispositionRepo) GetByID(ctx context.Context, dispID uuid.UUID) (*domain.Disposition, error) {
	var disp domain.Disposition
	err := r.db.GetContext(ctx, &disp,
		"SELECT * FROM dispositions WHERE id = $1", dispID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDispositionNotFound
		}
		return nil, fmt.Errorf("dispositionRepo.GetByID: %w", err)
	}
	return &disp, nil
}

func (r *dispositionRepo) ListByLoan(ctx context.Context, loanID string, status domain.DispositionStatus, offset, limit int) ([]domain.Disposition, int, error) {
	where := "WHERE loan_id = $1"
	args := []any{loanID}
	if status != "" {
		where += " AND status = $2"
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM dispositions "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("dispositionRepo.ListByLoan count: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM dispositions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var disps []domain.Disposition
	if err := r.db.SelectContext(ctx, &disps, query, args...); err != nil {
		return nil, 0, fmt.Errorf("dispositionRepo.ListByLoan: %w", err)
	}
	return disps, total, nil
}

func (r *dispositionRepo) Update(ctx context.Context, disp *domain.Disposition) error {
	disp.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE dispositions SET
			status = $1, notes = $2, assigned_to = $3, resolved_at = $4, updated_at = $5
		 WHERE id = $6`,
		disp.Status, disp.Notes, disp.AssignedTo, disp.ResolvedAt, disp.UpdatedAt, disp.ID)
	if err != nil {
		return fmt.Errorf("dispositionRepo.Update: %w", err)
	}
	return checkAffected(result, domain.ErrDispositionNotFound)
}
