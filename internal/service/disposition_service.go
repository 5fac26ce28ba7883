package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"loanlens/internal/config"
	"loanlens/internal/domain"
	"loanlens/internal/port"
)

// CreateDispositionInput opens a work item against a flagged field.
type CreateDispositionInput struct {
	DocumentID uuid.UUID
	FieldName  string
	Action     domain.DispositionAction
	Notes      string
	AssignedTo *uuid.UUID
}

// UpdateDispositionInput moves a work item through its lifecycle.
type UpdateDispositionInput struct {
	Status     domain.DispositionStatus
	Notes      *string
	AssignedTo *uuid.UUID
}

// DispositionService manages the review queue built from validation
// findings.
type DispositionService interface {
	Create(ctx context.Context, in CreateDispositionInput, actor domain.AuthContext) (*domain.Disposition, error)
	Get(ctx context.Context, dispID uuid.UUID) (*domain.Disposition, error)
	ListByLoan(ctx context.Context, loanID string, status domain.DispositionStatus, offset, limit int) ([]domain.Disposition, int, error)
	Update(ctx context.Context, dispID uuid.UUID, in UpdateDispositionInput, actor domain.AuthContext) (*domain.Disposition, error)
}

type dispositionService struct {
	disps  port.DispositionRepository
	docs   port.DocumentRepository
	email  port.EmailSender
	emails *config.EmailConfig
}

// NewDispositionService creates a DispositionService.
func NewDispositionService(
	disps port.DispositionRepository,
	docs port.DocumentRepository,
	email port.EmailSender,
	emails *config.EmailConfig,
) DispositionService {
	return &dispositionService{disps: disps, docs: docs, email: email, emails: emails}
}

// Create opens a disposition for a validation item. The item must
// exist in the document's last report with warning or worse status;
// valid fields have nothing to act on.
func (s *dispositionService) Create(ctx context.Context, in CreateDispositionInput, actor domain.AuthContext) (*domain.Disposition, error) {
	if !domain.ValidDispositionActions[in.Action] {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, in.Action)
	}

	doc, err := s.docs.GetByID(ctx, in.DocumentID)
	if err != nil {
		return nil, err
	}

	item, found := findReportItem(doc.ValidationResult, in.FieldName)
	if !found {
		return nil, fmt.Errorf("%w: field %q has no validation finding", domain.ErrInvalidInput, in.FieldName)
	}
	if item.Status == domain.ItemValid {
		return nil, fmt.Errorf("%w: field %q validated clean", domain.ErrInvalidInput, in.FieldName)
	}

	disp := &domain.Disposition{
		ID:         uuid.New(),
		LoanID:     doc.LoanID,
		DocumentID: doc.ID,
		FieldName:  in.FieldName,
		ItemStatus: item.Status,
		Action:     in.Action,
		Status:     domain.DispositionOpen,
		Notes:      in.Notes,
		CreatedBy:  actor.UserID,
		AssignedTo: in.AssignedTo,
	}
	if err := s.disps.Create(ctx, disp); err != nil {
		return nil, err
	}
	log.Printf("dispositionService.Create: disp=%s loan=%s field=%s action=%s by=%s",
		disp.ID, disp.LoanID, disp.FieldName, disp.Action, actor.UserID)

	// Critical findings page the review queue; the work item stands
	// regardless of delivery.
	if item.Status == domain.ItemCritical && s.emails.ReviewQueue != "" {
		notification := port.DispositionNotification{
			ToEmail:    s.emails.ReviewQueue,
			LoanID:     disp.LoanID,
			FieldName:  disp.FieldName,
			ItemStatus: disp.ItemStatus,
			Action:     disp.Action,
			Notes:      disp.Notes,
		}
		if err := s.email.SendDispositionOpened(ctx, notification); err != nil {
			log.Printf("dispositionService.Create: notification failed for %s: %v", disp.ID, err)
		}
	}
	return disp, nil
}

func (s *dispositionService) Get(ctx context.Context, dispID uuid.UUID) (*domain.Disposition, error) {
	return s.disps.GetByID(ctx, dispID)
}

func (s *dispositionService) ListByLoan(ctx context.Context, loanID string, status domain.DispositionStatus, offset, limit int) ([]domain.Disposition, int, error) {
	if status != "" && !domain.ValidDispositionStatuses[status] {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.disps.ListByLoan(ctx, loanID, status, offset, limit)
}

func (s *dispositionService) Update(ctx context.Context, dispID uuid.UUID, in UpdateDispositionInput, actor domain.AuthContext) (*domain.Disposition, error) {
	if !domain.ValidDispositionStatuses[in.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}

	disp, err := s.disps.GetByID(ctx, dispID)
	if err != nil {
		return nil, err
	}
	if disp.Status == domain.DispositionResolved || disp.Status == domain.DispositionDismissed {
		return nil, fmt.Errorf("%w: disposition %s is closed", domain.ErrConflict, dispID)
	}

	disp.Status = in.Status
	if in.Notes != nil {
		disp.Notes = *in.Notes
	}
	if in.AssignedTo != nil {
		disp.AssignedTo = in.AssignedTo
	}
	if in.Status == domain.DispositionResolved || in.Status == domain.DispositionDismissed {
		now := time.Now().UTC()
		disp.ResolvedAt = &now
	}
	if err := s.disps.Update(ctx, disp); err != nil {
		return nil, err
	}
	log.Printf("dispositionService.Update: disp=%s status=%s by=%s", dispID, disp.Status, actor.UserID)
	return disp, nil
}

// findReportItem looks a field up in a stored validation report.
func findReportItem(result json.RawMessage, fieldName string) (domain.ValidationItem, bool) {
	if len(result) == 0 {
		return domain.ValidationItem{}, false
	}
	var report domain.ValidationReport
	if err := json.Unmarshal(result, &report); err != nil {
		return domain.ValidationItem{}, false
	}
	for _, item := range report.Items {
		if item.FieldName == fieldName {
			return item, true
		}
	}
	return domain.ValidationItem{}, false
}
