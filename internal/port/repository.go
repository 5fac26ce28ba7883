package port

import (
	"context"

	"github.com/google/uuid"

	"loanlens/internal/domain"
)

// DocumentRepository defines the contract for document persistence.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	ListByLoan(ctx context.Context, loanID string, offset, limit int) ([]domain.Document, int, error)
	UpdateExtraction(ctx context.Context, doc *domain.Document) error
	UpdateValidation(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, docID uuid.UUID) error
}

// LoanSnapshotRepository defines the contract for loan snapshot persistence.
// Snapshots are append-only; ingesting a new record bumps the version.
type LoanSnapshotRepository interface {
	Create(ctx context.Context, snapshot *domain.LoanSnapshot) error
	GetLatest(ctx context.Context, loanID string) (*domain.LoanSnapshot, error)
	GetVersion(ctx context.Context, loanID string, version int) (*domain.LoanSnapshot, error)
	NextVersion(ctx context.Context, loanID string) (int, error)
}

// DispositionRepository defines the contract for disposition work item persistence.
type DispositionRepository interface {
	Create(ctx context.Context, disp *domain.Disposition) error
	GetByID(ctx context.Context, dispID uuid.UUID) (*domain.Disposition, error)
	ListByLoan(ctx context.Context, loanID string, status domain.DispositionStatus, offset, limit int) ([]domain.Disposition, int, error)
	Update(ctx context.Context, disp *domain.Disposition) error
}
