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

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO documents (
		id, loan_id, document_type, file_name, file_type, file_size, storage_key,
		extraction_status, validation_status, extracted_data, validation_result,
		loan_version, uploaded_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7,
		$8, $9, $10, $11,
		$12, $13, $14, $15
	)`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.LoanID, doc.DocumentType, doc.FileName, doc.FileType, doc.FileSize, doc.StorageKey,
		doc.ExtractionStatus, doc.ValidationStatus, doc.ExtractedData, doc.ValidationResult,
		doc.LoanVersion, doc.UploadedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1", docID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByLoan(ctx context.Context, loanID string, offset, limit int) ([]domain.Document, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM documents WHERE loan_id = $1", loanID)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByLoan count: %w", err)
	}

	var docs []domain.Document
	err = r.db.SelectContext(ctx, &docs,
		`SELECT * FROM documents WHERE loan_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		loanID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByLoan: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) UpdateExtraction(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE documents SET
			extraction_status = $1, extracted_data = $2, updated_at = $3
		 WHERE id = $4`,
		doc.ExtractionStatus, doc.ExtractedData, doc.UpdatedAt, doc.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateExtraction: %w", err)
	}
	return checkAffected(result, domain.ErrDocumentNotFound)
}

func (r *documentRepo) UpdateValidation(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE documents SET
			validation_status = $1, validation_result = $2, loan_version = $3, updated_at = $4
		 WHERE id = $5`,
		doc.ValidationStatus, doc.ValidationResult, doc.LoanVersion, doc.UpdatedAt, doc.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateValidation: %w", err)
	}
	return checkAffected(result, domain.ErrDocumentNotFound)
}

func (r *documentRepo) Delete(ctx context.Context, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", docID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	return checkAffected(result, domain.ErrDocumentNotFound)
}

func checkAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
