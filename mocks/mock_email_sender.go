package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loanlens/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDispositionOpened(ctx context.Context, n port.DispositionNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
