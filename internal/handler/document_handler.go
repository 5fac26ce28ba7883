package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loanlens/internal/middleware"
	"loanlens/internal/service"
)

// DocumentHandler handles document intake and validation endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload handles POST /api/v1/loans/:loanId/documents
// @Summary Upload a document
// @Description Upload a borrower document for a loan; extraction results arrive separately
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param loanId path string true "Loan ID"
// @Param file formData file true "Document file (pdf, jpg, png, tif)"
// @Param document_type formData string true "Document type (paystub, w2, bank_statement, tax_return, appraisal, title_policy)"
// @Success 201 {object} APIResponse{data=domain.Document} "Document stored"
// @Failure 400 {object} APIResponse "Invalid file or document type"
// @Failure 413 {object} APIResponse "File too large"
// @Security BearerAuth
// @Router /loans/{loanId}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	actor, err := middleware.GetAuthContext(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return
	}

	docType := c.PostForm("document_type")
	if docType == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_type is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not open uploaded file")
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), service.CreateDocumentInput{
		LoanID:       c.Param("loanId"),
		DocumentType: docType,
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		FileBytes:    fileBytes,
	}, actor)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// List handles GET /api/v1/loans/:loanId/documents
// @Summary List a loan's documents
// @Tags documents
// @Produce json
// @Param loanId path string true "Loan ID"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Document} "Documents"
// @Security BearerAuth
// @Router /loans/{loanId}/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	offset, limit := paginationParams(c)
	docs, total, err := h.documentService.ListByLoan(c.Request.Context(), c.Param("loanId"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/documents/:id
// @Summary Get document by ID
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} APIResponse{data=domain.Document} "Document"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	docID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.documentService.Get(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// IngestExtraction handles PUT /api/v1/documents/:id/extraction
// @Summary Ingest extraction results
// @Description Attach the OCR/extraction field map to a document and validate it
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body object true "Extracted field map; reserved keys issues/warnings carry upstream signals"
// @Success 200 {object} APIResponse{data=domain.ValidationReport} "Validation report"
// @Failure 400 {object} APIResponse "Invalid extraction payload"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/extraction [put]
func (h *DocumentHandler) IngestExtraction(c *gin.Context) {
	docID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON field map")
		return
	}

	report, err := h.documentService.IngestExtraction(c.Request.Context(), docID, json.RawMessage(body))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Validate handles POST /api/v1/documents/:id/validate
// @Summary Re-run validation
// @Description Validate the document's extracted fields against the latest loan snapshot
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} APIResponse{data=domain.ValidationReport} "Validation report"
// @Failure 400 {object} APIResponse "Document has no extraction data"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/validate [post]
func (h *DocumentHandler) Validate(c *gin.Context) {
	docID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	report, err := h.documentService.Validate(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// GetValidation handles GET /api/v1/documents/:id/validation
// @Summary Get the validation report
// @Description Serve the stored validation report, optionally filtered
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Param filter query string false "Filter: all, issues, passed, critical, warnings, field-errors" default(all)
// @Param q query string false "Case-insensitive substring search"
// @Success 200 {object} APIResponse{data=service.ValidationView} "Filtered validation view"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/validation [get]
func (h *DocumentHandler) GetValidation(c *gin.Context) {
	docID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.documentService.GetValidation(c.Request.Context(), docID, c.DefaultQuery("filter", "all"), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// DownloadURL handles GET /api/v1/documents/:id/download
// @Summary Get a presigned download URL
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} APIResponse "Presigned URL"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) DownloadURL(c *gin.Context) {
	docID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	url, err := h.documentService.DownloadURL(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}

// Delete handles DELETE /api/v1/documents/:id
// @Summary Delete a document
// @Description Remove the document record and its stored file
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} APIResponse "Deleted"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	docID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.documentService.Delete(c.Request.Context(), docID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": docID})
}

// parseUUIDParam parses a UUID path parameter, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

func paginationParams(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
