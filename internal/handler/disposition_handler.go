package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loanlens/internal/domain"
	"loanlens/internal/middleware"
	"loanlens/internal/service"
)

// DispositionHandler handles validation finding review endpoints.
type DispositionHandler struct {
	dispositionService service.DispositionService
}

// NewDispositionHandler creates a new DispositionHandler.
func NewDispositionHandler(dispositionService service.DispositionService) *DispositionHandler {
	return &DispositionHandler{dispositionService: dispositionService}
}

// Create handles POST /api/v1/dispositions
// @Summary Open a disposition
// @Description Open a review work item against a flagged validation finding
// @Tags dispositions
// @Accept json
// @Produce json
// @Param request body CreateDispositionRequest true "Disposition details"
// @Success 201 {object} APIResponse{data=domain.Disposition} "Disposition opened"
// @Failure 400 {object} APIResponse "Field has no actionable finding"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /dispositions [post]
func (h *DispositionHandler) Create(c *gin.Context) {
	actor, err := middleware.GetAuthContext(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return
	}

	var req CreateDispositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_id, field_name, and action are required")
		return
	}

	disp, err := h.dispositionService.Create(c.Request.Context(), service.CreateDispositionInput{
		DocumentID: req.DocumentID,
		FieldName:  req.FieldName,
		Action:     req.Action,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
	}, actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, disp)
}

// Get handles GET /api/v1/dispositions/:id
// @Summary Get disposition by ID
// @Tags dispositions
// @Produce json
// @Param id path string true "Disposition ID"
// @Success 200 {object} APIResponse{data=domain.Disposition} "Disposition"
// @Failure 404 {object} APIResponse "Disposition not found"
// @Security BearerAuth
// @Router /dispositions/{id} [get]
func (h *DispositionHandler) Get(c *gin.Context) {
	dispID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	disp, err := h.dispositionService.Get(c.Request.Context(), dispID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, disp)
}

// ListByLoan handles GET /api/v1/loans/:loanId/dispositions
// @Summary List a loan's dispositions
// @Tags dispositions
// @Produce json
// @Param loanId path string true "Loan ID"
// @Param status query string false "Filter by status (open, in_progress, resolved, dismissed)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Disposition} "Dispositions"
// @Security BearerAuth
// @Router /loans/{loanId}/dispositions [get]
func (h *DispositionHandler) ListByLoan(c *gin.Context) {
	offset, limit := paginationParams(c)
	status := domain.DispositionStatus(c.Query("status"))

	disps, total, err := h.dispositionService.ListByLoan(c.Request.Context(), c.Param("loanId"), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, disps, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PATCH /api/v1/dispositions/:id
// @Summary Update a disposition
// @Description Move a disposition through its lifecycle; resolved and dismissed are terminal
// @Tags dispositions
// @Accept json
// @Produce json
// @Param id path string true "Disposition ID"
// @Param request body UpdateDispositionRequest true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.Disposition} "Updated disposition"
// @Failure 404 {object} APIResponse "Disposition not found"
// @Failure 409 {object} APIResponse "Disposition already closed"
// @Security BearerAuth
// @Router /dispositions/{id} [patch]
func (h *DispositionHandler) Update(c *gin.Context) {
	actor, err := middleware.GetAuthContext(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return
	}

	dispID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDispositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	disp, err := h.dispositionService.Update(c.Request.Context(), dispID, service.UpdateDispositionInput{
		Status:     req.Status,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
	}, actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, disp)
}

// CreateDispositionRequest is the body for opening a disposition.
type CreateDispositionRequest struct {
	DocumentID uuid.UUID                `json:"document_id" binding:"required"`
	FieldName  string                   `json:"field_name" binding:"required"`
	Action     domain.DispositionAction `json:"action" binding:"required"`
	Notes      string                   `json:"notes"`
	AssignedTo *uuid.UUID               `json:"assigned_to"`
}

// UpdateDispositionRequest is the body for moving a disposition.
type UpdateDispositionRequest struct {
	Status     domain.DispositionStatus `json:"status" binding:"required"`
	Notes      *string                  `json:"notes"`
	AssignedTo *uuid.UUID               `json:"assigned_to"`
}
