package port

import (
	"context"

	"loanlens/internal/domain"
)

// DispositionNotification carries what an underwriter needs to act on
// a newly opened work item.
type DispositionNotification struct {
	ToEmail    string
	LoanID     string
	FieldName  string
	ItemStatus domain.ItemStatus
	Action     domain.DispositionAction
	Notes      string
}

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendDispositionOpened(ctx context.Context, n DispositionNotification) error
}
