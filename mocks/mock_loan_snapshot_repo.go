package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loanlens/internal/domain"
)

// MockLoanSnapshotRepo is a mock implementation of port.LoanSnapshotRepository.
type MockLoanSnapshotRepo struct {
	mock.Mock
}

func (m *MockLoanSnapshotRepo) Create(ctx context.Context, snapshot *domain.LoanSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockLoanSnapshotRepo) GetLatest(ctx context.Context, loanID string) (*domain.LoanSnapshot, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanSnapshot), args.Error(1)
}

func (m *MockLoanSnapshotRepo) GetVersion(ctx context.Context, loanID string, version int) (*domain.LoanSnapshot, error) {
	args := m.Called(ctx, loanID, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanSnapshot), args.Error(1)
}

func (m *MockLoanSnapshotRepo) NextVersion(ctx context.Context, loanID string) (int, error) {
	args := m.Called(ctx, loanID)
	return args.Int(0), args.Error(1)
}
