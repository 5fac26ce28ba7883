package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loanlens/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScorecardHandler handles cross-document reconciliation endpoints.
type ScorecardHandler struct {
	scorecardService service.ScorecardService
}

// NewScorecardHandler creates a new ScorecardHandler.
func NewScorecardHandler(scorecardService service.ScorecardService) *ScorecardHandler {
	return &ScorecardHandler{scorecardService: scorecardService}
}

// Get handles GET /api/v1/loans/:loanId/scorecard
// @Summary Build the reconciliation scorecard
// @Description Reconcile tracked fields across the loan's extracted documents and the latest LOS snapshot
// @Tags scorecard
// @Produce json
// @Param loanId path string true "Loan ID"
// @Param documentIds query string false "Comma-separated document UUIDs to include (default: all extracted)"
// @Success 200 {object} APIResponse{data=domain.Scorecard} "Scorecard"
// @Failure 400 {object} APIResponse "Invalid document ID"
// @Security BearerAuth
// @Router /loans/{loanId}/scorecard [get]
func (h *ScorecardHandler) Get(c *gin.Context) {
	docIDs, ok := parseDocumentIDs(c)
	if !ok {
		return
	}
	scorecard, err := h.scorecardService.Build(c.Request.Context(), c.Param("loanId"), docIDs)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, scorecard)
}

// Export handles GET /api/v1/loans/:loanId/scorecard/export
// @Summary Export the scorecard as XLSX or CSV
// @Tags scorecard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param loanId path string true "Loan ID"
// @Param documentIds query string false "Comma-separated document UUIDs to include (default: all extracted)"
// @Param format query string false "Export format: xlsx or csv" default(xlsx)
// @Success 200 {file} binary "Scorecard workbook"
// @Failure 400 {object} APIResponse "Invalid document ID or format"
// @Security BearerAuth
// @Router /loans/{loanId}/scorecard/export [get]
func (h *ScorecardHandler) Export(c *gin.Context) {
	docIDs, ok := parseDocumentIDs(c)
	if !ok {
		return
	}

	var (
		data        []byte
		name        string
		contentType string
		err         error
	)
	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		contentType = xlsxContentType
		data, name, err = h.scorecardService.ExportXLSX(c.Request.Context(), c.Param("loanId"), docIDs)
	case "csv":
		contentType = "text/csv; charset=utf-8"
		data, name, err = h.scorecardService.ExportCSV(c.Request.Context(), c.Param("loanId"), docIDs)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be xlsx or csv")
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}

func parseDocumentIDs(c *gin.Context) ([]uuid.UUID, bool) {
	raw := c.Query("documentIds")
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "documentIds must be comma-separated UUIDs")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
