package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"loanlens/internal/config"
	"loanlens/internal/domain"
	"loanlens/internal/engine"
	"loanlens/internal/port"
)

// CreateDocumentInput carries an upload request.
type CreateDocumentInput struct {
	LoanID       string
	DocumentType string
	FileName     string
	ContentType  string
	FileBytes    []byte
}

// ValidationView is a filtered slice of a document's validation report.
type ValidationView struct {
	DocumentID  uuid.UUID                `json:"documentId"`
	LoanVersion int                      `json:"loanVersion"`
	Items       []domain.ValidationItem  `json:"items"`
	Summary     domain.ValidationSummary `json:"summary"`
	Filter      string                   `json:"filter"`
	Query       string                   `json:"query,omitempty"`
	ValidatedAt time.Time                `json:"validatedAt"`
}

// DocumentService owns document intake and validation.
type DocumentService interface {
	Create(ctx context.Context, in CreateDocumentInput, actor domain.AuthContext) (*domain.Document, error)
	Get(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	ListByLoan(ctx context.Context, loanID string, offset, limit int) ([]domain.Document, int, error)
	IngestExtraction(ctx context.Context, docID uuid.UUID, data json.RawMessage) (*domain.ValidationReport, error)
	Validate(ctx context.Context, docID uuid.UUID) (*domain.ValidationReport, error)
	GetValidation(ctx context.Context, docID uuid.UUID, filter, query string) (*ValidationView, error)
	Delete(ctx context.Context, docID uuid.UUID) error
	DownloadURL(ctx context.Context, docID uuid.UUID) (string, error)
}

type documentService struct {
	docs      port.DocumentRepository
	snapshots port.LoanSnapshotRepository
	storage   port.ObjectStorage
	cache     port.Cache
	catalog   port.FieldCatalog
	eng       *engine.Engine
	s3cfg     *config.S3Config
	cacheTTL  time.Duration
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(
	docs port.DocumentRepository,
	snapshots port.LoanSnapshotRepository,
	storage port.ObjectStorage,
	cache port.Cache,
	catalog port.FieldCatalog,
	eng *engine.Engine,
	s3cfg *config.S3Config,
	cacheTTL time.Duration,
) DocumentService {
	return &documentService{
		docs:      docs,
		snapshots: snapshots,
		storage:   storage,
		cache:     cache,
		catalog:   catalog,
		eng:       eng,
		s3cfg:     s3cfg,
		cacheTTL:  cacheTTL,
	}
}

func (s *documentService) Create(ctx context.Context, in CreateDocumentInput, actor domain.AuthContext) (*domain.Document, error) {
	if in.LoanID == "" {
		return nil, fmt.Errorf("%w: loan id is required", domain.ErrInvalidInput)
	}
	if _, known := s.catalog.FieldsFor(in.DocumentType); !known {
		return nil, domain.ErrUnsupportedDocType
	}
	ext, allowed := domain.AllowedFileTypes[in.ContentType]
	if !allowed {
		return nil, domain.ErrInvalidFileType
	}
	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(in.FileBytes)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	docID := uuid.New()
	key := fmt.Sprintf("loans/%s/documents/%s.%s", in.LoanID, docID, ext)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(in.FileBytes),
		ContentType: in.ContentType,
		Size:        int64(len(in.FileBytes)),
	})
	if err != nil {
		return nil, fmt.Errorf("documentService.Create upload: %w", err)
	}

	doc := &domain.Document{
		ID:               docID,
		LoanID:           in.LoanID,
		DocumentType:     in.DocumentType,
		FileName:         in.FileName,
		FileType:         in.ContentType,
		FileSize:         int64(len(in.FileBytes)),
		StorageKey:       key,
		ExtractionStatus: domain.ExtractionPending,
		ValidationStatus: domain.ValidationPending,
		UploadedBy:       actor.UserID,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		// Best effort cleanup of the orphaned object.
		if delErr := s.storage.Delete(ctx, s.s3cfg.Bucket, key); delErr != nil {
			log.Printf("documentService.Create: orphan cleanup failed for %s: %v", key, delErr)
		}
		return nil, err
	}

	log.Printf("documentService.Create: doc=%s loan=%s type=%s by=%s",
		doc.ID, doc.LoanID, doc.DocumentType, actor.UserID)
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	return s.docs.GetByID(ctx, docID)
}

func (s *documentService) ListByLoan(ctx context.Context, loanID string, offset, limit int) ([]domain.Document, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.docs.ListByLoan(ctx, loanID, offset, limit)
}

// IngestExtraction stores the extraction payload and immediately runs a
// validation pass over it.
func (s *documentService) IngestExtraction(ctx context.Context, docID uuid.UUID, data json.RawMessage) (*domain.ValidationReport, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: extraction payload must be a JSON object", domain.ErrInvalidInput)
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	doc.ExtractedData = data
	doc.ExtractionStatus = domain.ExtractionCompleted
	if err := s.docs.UpdateExtraction(ctx, doc); err != nil {
		return nil, err
	}
	log.Printf("documentService.IngestExtraction: doc=%s fields=%d", docID, len(fields))

	return s.Validate(ctx, docID)
}

// Validate runs the engine over the document's extraction against the
// latest loan snapshot, persists the report and memoizes it per
// (document, loan version). The engine itself is pure; this is the
// only layer that caches.
func (s *documentService) Validate(ctx context.Context, docID uuid.UUID) (*domain.ValidationReport, error) {
	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if len(doc.ExtractedData) == 0 {
		return nil, domain.ErrExtractionMissing
	}

	snapshot, err := s.snapshots.GetLatest(ctx, doc.LoanID)
	if err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil, err
	}

	loanVersion := 0
	var loan domain.LoanRecord
	if snapshot != nil {
		loanVersion = snapshot.Version
		if loan, err = snapshot.Record(); err != nil {
			return nil, fmt.Errorf("documentService.Validate: decoding snapshot: %w", err)
		}
	}

	cacheKey := validationCacheKey(docID, loanVersion)
	if cached, hit, cacheErr := s.cache.Get(ctx, cacheKey); cacheErr == nil && hit {
		var report domain.ValidationReport
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
	}

	raw, err := doc.ExtractedFields()
	if err != nil {
		return nil, fmt.Errorf("documentService.Validate: decoding extraction: %w", err)
	}
	fields, issues, warnings := splitUpstreamSignals(raw)
	defs, _ := s.catalog.FieldsFor(doc.DocumentType)

	items := s.eng.ValidateDocument(engine.ValidateInput{
		Fields:          defs,
		Extracted:       fields,
		Loan:            loan,
		ApplicationDate: applicationDate(loan),
		Issues:          issues,
		Warnings:        warnings,
	})
	report := &domain.ValidationReport{
		DocumentID:  docID,
		LoanVersion: loanVersion,
		Items:       items,
		Summary:     engine.Summarize(items),
		ValidatedAt: time.Now().UTC(),
	}

	encoded, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("documentService.Validate: encoding report: %w", err)
	}
	doc.ValidationResult = encoded
	doc.ValidationStatus = foldValidationStatus(report.Summary)
	doc.LoanVersion = &loanVersion
	if err := s.docs.UpdateValidation(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, encoded, s.cacheTTL); err != nil {
		log.Printf("documentService.Validate: cache set failed for %s: %v", cacheKey, err)
	}

	log.Printf("documentService.Validate: doc=%s loanVersion=%d critical=%d fieldErrors=%d warnings=%d",
		docID, loanVersion, report.Summary.Critical, report.Summary.FieldErrors, report.Summary.Warnings)
	return report, nil
}

// GetValidation returns the last report filtered and searched for the
// validation panel. It revalidates when no report is stored yet.
func (s *documentService) GetValidation(ctx context.Context, docID uuid.UUID, filter, query string) (*ValidationView, error) {
	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	var report *domain.ValidationReport
	if len(doc.ValidationResult) > 0 {
		report = &domain.ValidationReport{}
		if err := json.Unmarshal(doc.ValidationResult, report); err != nil {
			report = nil
		}
	}
	if report == nil {
		if report, err = s.Validate(ctx, docID); err != nil {
			return nil, err
		}
	}

	if filter == "" {
		filter = engine.FilterAll
	}
	return &ValidationView{
		DocumentID:  docID,
		LoanVersion: report.LoanVersion,
		Items:       engine.FilterItems(report.Items, filter, query),
		Summary:     report.Summary,
		Filter:      filter,
		Query:       query,
		ValidatedAt: report.ValidatedAt,
	}, nil
}

func (s *documentService) Delete(ctx context.Context, docID uuid.UUID) error {
	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if err := s.docs.Delete(ctx, docID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, s.s3cfg.Bucket, doc.StorageKey); err != nil {
		log.Printf("documentService.Delete: object delete failed for %s: %v", doc.StorageKey, err)
	}
	log.Printf("documentService.Delete: doc=%s loan=%s", docID, doc.LoanID)
	return nil
}

func (s *documentService) DownloadURL(ctx context.Context, docID uuid.UUID) (string, error) {
	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, doc.StorageKey, s.s3cfg.PresignExpiry)
}

// splitUpstreamSignals pulls the reserved "issues" and "warnings" keys
// out of an extraction payload. Extraction emits these for non-rule
// problems (tampering signals, low confidence); they merge into the
// report unchanged.
func splitUpstreamSignals(raw map[string]any) (map[string]any, []string, []string) {
	fields := make(map[string]any, len(raw))
	var issues, warnings []string
	for key, value := range raw {
		switch key {
		case "issues":
			issues = toStringSlice(value)
		case "warnings":
			warnings = toStringSlice(value)
		default:
			fields[key] = value
		}
	}
	return fields, issues, warnings
}

func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func validationCacheKey(docID uuid.UUID, loanVersion int) string {
	return fmt.Sprintf("validation:%s:v%d", docID, loanVersion)
}

// applicationDate pulls the application date out of the loan record for
// date-recency rules. Missing or unparsable dates leave those rules na.
func applicationDate(loan domain.LoanRecord) time.Time {
	for _, path := range []string{"loan.applicationDate", "applicationDate"} {
		if v := engine.ResolveLoanPath(loan, path); v != nil {
			if d, ok := engine.ParseDate(v); ok {
				return d
			}
		}
	}
	return time.Time{}
}

func foldValidationStatus(summary domain.ValidationSummary) domain.ValidationStatus {
	switch {
	case summary.Critical > 0:
		return domain.ValidationCritical
	case summary.FieldErrors > 0 || summary.Warnings > 0:
		return domain.ValidationWarning
	default:
		return domain.ValidationClean
	}
}
