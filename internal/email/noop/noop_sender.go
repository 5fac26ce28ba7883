package noop

import (
	"context"
	"log"

	"loanlens/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDispositionOpened(_ context.Context, n port.DispositionNotification) error {
	log.Printf("[NOOP EMAIL] Disposition opened: loan=%s field=%s status=%s action=%s to=%s",
		n.LoanID, n.FieldName, n.ItemStatus, n.Action, n.ToEmail)
	return nil
}
