package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"loanlens/internal/domain"
)

// MockDispositionRepo is a mock implementation of port.DispositionRepository.
type MockDispositionRepo struct {
	mock.Mock
}

func (m *MockDispositionRepo) Create(ctx context.Context, disp *domain.Disposition) error {
	args := m.Called(ctx, disp)
	return args.Error(0)
}

func (m *MockDispositionRepo) GetByID(ctx context.Context, dispID uuid.UUID) (*domain.Disposition, error) {
	args := m.Called(ctx, dispID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Disposition), args.Error(1)
}

func (m *MockDispositionRepo) ListByLoan(ctx context.Context, loanID string, status domain.DispositionStatus, offset, limit int) ([]domain.Disposition, int, error) {
	args := m.Called(ctx, loanID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Disposition), args.Int(1), args.Error(2)
}

func (m *MockDispositionRepo) Update(ctx context.Context, disp *domain.Disposition) error {
	args := m.Called(ctx, disp)
	return args.Error(0)
}
