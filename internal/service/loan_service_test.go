package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"loanlens/internal/domain"
	"loanlens/internal/service"
	"loanlens/mocks"
)

func testActor() domain.AuthContext {
	return domain.AuthContext{
		UserID: uuid.New(),
		Email:  "processor@example.com",
		Role:   domain.RoleProcessor,
	}
}

func TestLoanService_IngestSnapshot_Success(t *testing.T) {
	snapshots := new(mocks.MockLoanSnapshotRepo)
	svc := service.NewLoanService(snapshots)

	snapshots.On("NextVersion", mock.Anything, "LN-1001").Return(3, nil)
	snapshots.On("Create", mock.Anything, mock.AnythingOfType("*domain.LoanSnapshot")).Return(nil)

	data := json.RawMessage(`{"loanAmount": 425000, "borrower": {"name": "Jane Doe"}}`)
	snapshot, err := svc.IngestSnapshot(context.Background(), "LN-1001", data, testActor())

	assert.NoError(t, err)
	assert.Equal(t, "LN-1001", snapshot.LoanID)
	assert.Equal(t, 3, snapshot.Version)
	snapshots.AssertExpectations(t)
}

func TestLoanService_IngestSnapshot_RejectsNonObject(t *testing.T) {
	snapshots := new(mocks.MockLoanSnapshotRepo)
	svc := service.NewLoanService(snapshots)

	_, err := svc.IngestSnapshot(context.Background(), "LN-1001", json.RawMessage(`[1,2,3]`), testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.IngestSnapshot(context.Background(), "", json.RawMessage(`{}`), testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	snapshots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoanService_GetSnapshot_NotFound(t *testing.T) {
	snapshots := new(mocks.MockLoanSnapshotRepo)
	svc := service.NewLoanService(snapshots)

	snapshots.On("GetLatest", mock.Anything, "LN-404").Return(nil, domain.ErrSnapshotNotFound)

	_, err := svc.GetSnapshot(context.Background(), "LN-404")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
