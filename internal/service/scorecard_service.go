package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"loanlens/internal/domain"
	"loanlens/internal/engine"
	"loanlens/internal/export"
	"loanlens/internal/port"
)

// ScorecardService builds the cross-document reconciliation view.
type ScorecardService interface {
	Build(ctx context.Context, loanID string, docIDs []uuid.UUID) (*domain.Scorecard, error)
	ExportXLSX(ctx context.Context, loanID string, docIDs []uuid.UUID) ([]byte, string, error)
	ExportCSV(ctx context.Context, loanID string, docIDs []uuid.UUID) ([]byte, string, error)
}

type scorecardService struct {
	docs      port.DocumentRepository
	snapshots port.LoanSnapshotRepository
	catalog   port.FieldCatalog
	eng       *engine.Engine
}

// NewScorecardService creates a ScorecardService.
func NewScorecardService(
	docs port.DocumentRepository,
	snapshots port.LoanSnapshotRepository,
	catalog port.FieldCatalog,
	eng *engine.Engine,
) ScorecardService {
	return &scorecardService{docs: docs, snapshots: snapshots, catalog: catalog, eng: eng}
}

// Build reconciles the loan's documents against the latest snapshot.
// An empty docIDs selects every document on the loan that has
// completed extraction.
func (s *scorecardService) Build(ctx context.Context, loanID string, docIDs []uuid.UUID) (*domain.Scorecard, error) {
	if loanID == "" {
		return nil, fmt.Errorf("%w: loan id is required", domain.ErrInvalidInput)
	}

	loanVersion := 0
	var loan domain.LoanRecord
	snapshot, err := s.snapshots.GetLatest(ctx, loanID)
	if err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil, err
	}
	if snapshot != nil {
		loanVersion = snapshot.Version
		if loan, err = snapshot.Record(); err != nil {
			return nil, fmt.Errorf("scorecardService.Build: decoding snapshot: %w", err)
		}
	}

	selected, err := s.selectDocuments(ctx, loanID, docIDs)
	if err != nil {
		return nil, err
	}

	matrixDocs := make([]engine.MatrixDocument, 0, len(selected))
	for _, doc := range selected {
		fields, err := doc.ExtractedFields()
		if err != nil {
			log.Printf("scorecardService.Build: skipping doc %s: bad extraction payload: %v", doc.ID, err)
			continue
		}
		matrixDocs = append(matrixDocs, engine.MatrixDocument{
			ID:     doc.ID,
			Type:   doc.DocumentType,
			Fields: fields,
		})
	}

	rows := s.eng.BuildMatrix(s.catalog.TrackedFields(), matrixDocs, loan)
	mismatchTotal := 0
	for _, row := range rows {
		mismatchTotal += row.MismatchCount
	}

	return &domain.Scorecard{
		LoanID:        loanID,
		LoanVersion:   loanVersion,
		Rows:          rows,
		DocumentCount: len(matrixDocs),
		MismatchTotal: mismatchTotal,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

func (s *scorecardService) ExportXLSX(ctx context.Context, loanID string, docIDs []uuid.UUID) ([]byte, string, error) {
	scorecard, err := s.Build(ctx, loanID, docIDs)
	if err != nil {
		return nil, "", err
	}
	data, err := export.ScorecardXLSX(scorecard)
	if err != nil {
		return nil, "", fmt.Errorf("scorecardService.ExportXLSX: %w", err)
	}
	name := fmt.Sprintf("scorecard_%s_%s.xlsx", loanID, scorecard.GeneratedAt.Format("20060102"))
	return data, name, nil
}

func (s *scorecardService) ExportCSV(ctx context.Context, loanID string, docIDs []uuid.UUID) ([]byte, string, error) {
	scorecard, err := s.Build(ctx, loanID, docIDs)
	if err != nil {
		return nil, "", err
	}
	data, err := export.ScorecardCSV(scorecard)
	if err != nil {
		return nil, "", fmt.Errorf("scorecardService.ExportCSV: %w", err)
	}
	name := fmt.Sprintf("scorecard_%s_%s.csv", loanID, scorecard.GeneratedAt.Format("20060102"))
	return data, name, nil
}

func (s *scorecardService) selectDocuments(ctx context.Context, loanID string, docIDs []uuid.UUID) ([]domain.Document, error) {
	all, _, err := s.docs.ListByLoan(ctx, loanID, 0, 100)
	if err != nil {
		return nil, err
	}

	wanted := make(map[uuid.UUID]bool, len(docIDs))
	for _, id := range docIDs {
		wanted[id] = true
	}

	var selected []domain.Document
	for _, doc := range all {
		if doc.ExtractionStatus != domain.ExtractionCompleted {
			continue
		}
		if len(wanted) > 0 && !wanted[doc.ID] {
			continue
		}
		selected = append(selected, doc)
	}
	return selected, nil
}
