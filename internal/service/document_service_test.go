package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"loanlens/internal/catalog"
	"loanlens/internal/config"
	"loanlens/internal/domain"
	"loanlens/internal/engine"
	"loanlens/internal/port"
	"loanlens/internal/service"
	"loanlens/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "us-east-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 10,
		PresignExpiry: 3600,
	}
}

func newDocumentService(
	docs *mocks.MockDocumentRepo,
	snapshots *mocks.MockLoanSnapshotRepo,
	storage *mocks.MockObjectStorage,
	reportCache *mocks.MockCache,
) service.DocumentService {
	cfg := testS3Config()
	return service.NewDocumentService(
		docs, snapshots, storage, reportCache,
		catalog.NewProvider(), engine.New(), &cfg, 10*time.Minute)
}

func paystubExtraction() json.RawMessage {
	return json.RawMessage(`{
		"employeeName": "Jane Doe",
		"employerName": "Acme Corp",
		"payPeriodEnd": "2026-01-10",
		"grossPayCurrent": 3000,
		"grossPayYTD": 3000,
		"netPayCurrent": 2200,
		"federalTaxYTD": 450,
		"payFrequency": "biweekly"
	}`)
}

func loanSnapshot(version int) *domain.LoanSnapshot {
	return &domain.LoanSnapshot{
		ID:      uuid.New(),
		LoanID:  "LN-1001",
		Version: version,
		Data: json.RawMessage(`{
			"applicationDate": "2026-01-15",
			"borrower": {
				"name": {"firstName": "Jane", "lastName": "Doe"},
				"employer": "Acme Corp",
				"income": {"monthlyGross": 6500}
			}
		}`),
	}
}

func TestDocumentService_Create_Success(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newDocumentService(docs, new(mocks.MockLoanSnapshotRepo), storage, new(mocks.MockCache))

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://test-bucket.s3.amazonaws.com/x", ETag: "abc"}, nil)
	docs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Document")).Return(nil)

	doc, err := svc.Create(context.Background(), service.CreateDocumentInput{
		LoanID:       "LN-1001",
		DocumentType: "paystub",
		FileName:     "jan_paystub.pdf",
		ContentType:  "application/pdf",
		FileBytes:    []byte("%PDF-1.4 test"),
	}, testActor())

	assert.NoError(t, err)
	assert.Equal(t, "LN-1001", doc.LoanID)
	assert.Equal(t, domain.ExtractionPending, doc.ExtractionStatus)
	assert.Equal(t, domain.ValidationPending, doc.ValidationStatus)
	assert.True(t, strings.HasPrefix(doc.StorageKey, "loans/LN-1001/documents/"))
	assert.True(t, strings.HasSuffix(doc.StorageKey, ".pdf"))
	docs.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestDocumentService_Create_RejectsUnknownType(t *testing.T) {
	svc := newDocumentService(new(mocks.MockDocumentRepo), new(mocks.MockLoanSnapshotRepo),
		new(mocks.MockObjectStorage), new(mocks.MockCache))

	_, err := svc.Create(context.Background(), service.CreateDocumentInput{
		LoanID:       "LN-1001",
		DocumentType: "utility_bill",
		ContentType:  "application/pdf",
		FileBytes:    []byte("%PDF"),
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocType)
}

func TestDocumentService_Create_RejectsBadContentType(t *testing.T) {
	svc := newDocumentService(new(mocks.MockDocumentRepo), new(mocks.MockLoanSnapshotRepo),
		new(mocks.MockObjectStorage), new(mocks.MockCache))

	_, err := svc.Create(context.Background(), service.CreateDocumentInput{
		LoanID:       "LN-1001",
		DocumentType: "paystub",
		ContentType:  "application/zip",
		FileBytes:    []byte("PK"),
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
}

func TestDocumentService_Create_RejectsOversizedFile(t *testing.T) {
	svc := newDocumentService(new(mocks.MockDocumentRepo), new(mocks.MockLoanSnapshotRepo),
		new(mocks.MockObjectStorage), new(mocks.MockCache))

	_, err := svc.Create(context.Background(), service.CreateDocumentInput{
		LoanID:       "LN-1001",
		DocumentType: "paystub",
		ContentType:  "application/pdf",
		FileBytes:    make([]byte, 11*1024*1024),
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestDocumentService_Create_CleansUpOrphanOnRepoFailure(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newDocumentService(docs, new(mocks.MockLoanSnapshotRepo), storage, new(mocks.MockCache))

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)
	docs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Document")).
		Return(assert.AnError)
	storage.On("Delete", mock.Anything, "test-bucket", mock.AnythingOfType("string")).Return(nil)

	_, err := svc.Create(context.Background(), service.CreateDocumentInput{
		LoanID:       "LN-1001",
		DocumentType: "paystub",
		ContentType:  "application/pdf",
		FileBytes:    []byte("%PDF"),
	}, testActor())

	assert.Error(t, err)
	storage.AssertCalled(t, "Delete", mock.Anything, "test-bucket", mock.AnythingOfType("string"))
}

func TestDocumentService_Validate_Success(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	snapshots := new(mocks.MockLoanSnapshotRepo)
	reportCache := new(mocks.MockCache)
	svc := newDocumentService(docs, snapshots, new(mocks.MockObjectStorage), reportCache)

	docID := uuid.New()
	doc := &domain.Document{
		ID:               docID,
		LoanID:           "LN-1001",
		DocumentType:     "paystub",
		ExtractionStatus: domain.ExtractionCompleted,
		ExtractedData:    paystubExtraction(),
	}

	docs.On("GetByID", mock.Anything, docID).Return(doc, nil)
	snapshots.On("GetLatest", mock.Anything, "LN-1001").Return(loanSnapshot(2), nil)
	reportCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, false, nil)
	docs.On("UpdateValidation", mock.Anything, mock.AnythingOfType("*domain.Document")).Return(nil)
	reportCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), 10*time.Minute).Return(nil)

	report, err := svc.Validate(context.Background(), docID)

	assert.NoError(t, err)
	assert.Equal(t, docID, report.DocumentID)
	assert.Equal(t, 2, report.LoanVersion)
	assert.Equal(t, len(report.Items), report.Summary.Total)
	assert.NotZero(t, report.Summary.Total)
	docs.AssertExpectations(t)
	reportCache.AssertExpectations(t)
}

func TestDocumentService_Validate_NoExtraction(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	svc := newDocumentService(docs, new(mocks.MockLoanSnapshotRepo),
		new(mocks.MockObjectStorage), new(mocks.MockCache))

	docID := uuid.New()
	docs.On("GetByID", mock.Anything, docID).Return(&domain.Document{ID: docID, LoanID: "LN-1001"}, nil)

	_, err := svc.Validate(context.Background(), docID)
	assert.ErrorIs(t, err, domain.ErrExtractionMissing)
}

func TestDocumentService_Validate_WithoutSnapshot(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	snapshots := new(mocks.MockLoanSnapshotRepo)
	reportCache := new(mocks.MockCache)
	svc := newDocumentService(docs, snapshots, new(mocks.MockObjectStorage), reportCache)

	docID := uuid.New()
	doc := &domain.Document{
		ID:            docID,
		LoanID:        "LN-2002",
		DocumentType:  "paystub",
		ExtractedData: paystubExtraction(),
	}

	docs.On("GetByID", mock.Anything, docID).Return(doc, nil)
	snapshots.On("GetLatest", mock.Anything, "LN-2002").Return(nil, domain.ErrSnapshotNotFound)
	reportCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, false, nil)
	docs.On("UpdateValidation", mock.Anything, mock.AnythingOfType("*domain.Document")).Return(nil)
	reportCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), 10*time.Minute).Return(nil)

	report, err := svc.Validate(context.Background(), docID)

	assert.NoError(t, err)
	assert.Equal(t, 0, report.LoanVersion)
	// No snapshot means no loan data, so nothing can mismatch.
	for _, item := range report.Items {
		if item.LoanComparison != nil {
			assert.False(t, item.LoanComparison.HasLoanData)
		}
	}
}

func TestDocumentService_Validate_CacheHit(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	snapshots := new(mocks.MockLoanSnapshotRepo)
	reportCache := new(mocks.MockCache)
	svc := newDocumentService(docs, snapshots, new(mocks.MockObjectStorage), reportCache)

	docID := uuid.New()
	doc := &domain.Document{
		ID:            docID,
		LoanID:        "LN-1001",
		DocumentType:  "paystub",
		ExtractedData: paystubExtraction(),
	}
	cached, _ := json.Marshal(&domain.ValidationReport{
		DocumentID:  docID,
		LoanVersion: 2,
		Summary:     domain.ValidationSummary{Total: 8, Valid: 8},
	})

	docs.On("GetByID", mock.Anything, docID).Return(doc, nil)
	snapshots.On("GetLatest", mock.Anything, "LN-1001").Return(loanSnapshot(2), nil)
	reportCache.On("Get", mock.Anything, "validation:"+docID.String()+":v2").Return(cached, true, nil)

	report, err := svc.Validate(context.Background(), docID)

	assert.NoError(t, err)
	assert.Equal(t, 8, report.Summary.Total)
	docs.AssertNotCalled(t, "UpdateValidation", mock.Anything, mock.Anything)
}

func TestDocumentService_IngestExtraction_RejectsNonObject(t *testing.T) {
	svc := newDocumentService(new(mocks.MockDocumentRepo), new(mocks.MockLoanSnapshotRepo),
		new(mocks.MockObjectStorage), new(mocks.MockCache))

	_, err := svc.IngestExtraction(context.Background(), uuid.New(), json.RawMessage(`"text"`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_GetValidation_FiltersStoredReport(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	svc := newDocumentService(docs, new(mocks.MockLoanSnapshotRepo),
		new(mocks.MockObjectStorage), new(mocks.MockCache))

	docID := uuid.New()
	stored, _ := json.Marshal(&domain.ValidationReport{
		DocumentID:  docID,
		LoanVersion: 1,
		Items: []domain.ValidationItem{
			{FieldName: "employerName", Label: "Employer", Status: domain.ItemValid},
			{FieldName: "netPayCurrent", Label: "Net Pay", Status: domain.ItemFieldError, Message: "Net pay exceeds gross pay"},
		},
		Summary: domain.ValidationSummary{Total: 2, Valid: 1, FieldErrors: 1},
	})
	docs.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID:               docID,
		LoanID:           "LN-1001",
		DocumentType:     "paystub",
		ValidationResult: stored,
	}, nil)

	view, err := svc.GetValidation(context.Background(), docID, "issues", "")

	assert.NoError(t, err)
	assert.Equal(t, "issues", view.Filter)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "netPayCurrent", view.Items[0].FieldName)
	// Summary always covers the full report, not the filtered slice.
	assert.Equal(t, 2, view.Summary.Total)
}

func TestDocumentService_Delete_RemovesObject(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newDocumentService(docs, new(mocks.MockLoanSnapshotRepo), storage, new(mocks.MockCache))

	docID := uuid.New()
	docs.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID:         docID,
		LoanID:     "LN-1001",
		StorageKey: "loans/LN-1001/documents/x.pdf",
	}, nil)
	docs.On("Delete", mock.Anything, docID).Return(nil)
	storage.On("Delete", mock.Anything, "test-bucket", "loans/LN-1001/documents/x.pdf").Return(nil)

	err := svc.Delete(context.Background(), docID)

	assert.NoError(t, err)
	docs.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestDocumentService_DownloadURL(t *testing.T) {
	docs := new(mocks.MockDocumentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newDocumentService(docs, new(mocks.MockLoanSnapshotRepo), storage, new(mocks.MockCache))

	docID := uuid.New()
	docs.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID:         docID,
		StorageKey: "loans/LN-1001/documents/x.pdf",
	}, nil)
	storage.On("GetPresignedURL", mock.Anything, "test-bucket", "loans/LN-1001/documents/x.pdf", int64(3600)).
		Return("https://signed.example.com/x.pdf", nil)

	url, err := svc.DownloadURL(context.Background(), docID)

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/x.pdf", url)
}
