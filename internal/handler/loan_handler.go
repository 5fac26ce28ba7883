package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"loanlens/internal/middleware"
	"loanlens/internal/service"
)

// LoanHandler handles loan snapshot endpoints.
type LoanHandler struct {
	loanService service.LoanService
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanService service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// IngestSnapshot handles POST /api/v1/loans/:loanId/snapshot
// @Summary Ingest a loan snapshot
// @Description Store a new immutable version of the LOS loan record
// @Tags loans
// @Accept json
// @Produce json
// @Param loanId path string true "Loan ID"
// @Param request body object true "LOS loan record"
// @Success 201 {object} APIResponse{data=domain.LoanSnapshot} "Snapshot stored"
// @Failure 400 {object} APIResponse "Invalid loan record"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /loans/{loanId}/snapshot [post]
func (h *LoanHandler) IngestSnapshot(c *gin.Context) {
	actor, err := middleware.GetAuthContext(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON loan record")
		return
	}

	snapshot, err := h.loanService.IngestSnapshot(c.Request.Context(), c.Param("loanId"), json.RawMessage(body), actor)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, snapshot)
}

// GetSnapshot handles GET /api/v1/loans/:loanId/snapshot
// @Summary Get the latest loan snapshot
// @Tags loans
// @Produce json
// @Param loanId path string true "Loan ID"
// @Success 200 {object} APIResponse{data=domain.LoanSnapshot} "Latest snapshot"
// @Failure 404 {object} APIResponse "No snapshot for this loan"
// @Security BearerAuth
// @Router /loans/{loanId}/snapshot [get]
func (h *LoanHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.loanService.GetSnapshot(c.Request.Context(), c.Param("loanId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snapshot)
}
