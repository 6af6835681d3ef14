package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"learnlens/internal/service"
)

// ReportHandler handles shareable report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
	auditSvc  *service.AuditService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService, auditSvc *service.AuditService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		auditSvc:  auditSvc,
	}
}

// Publish handles POST /v1/audits/{auditId}/report
func (h *ReportHandler) Publish(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]

	audit, err := h.auditSvc.GetAudit(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	report, err := h.reportSvc.Publish(r.Context(), audit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// Get handles GET /v1/reports/{reportId}
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["reportId"]
	report, err := h.reportSvc.Fetch(r.Context(), reportID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// DecodeShareLink handles GET /v1/share/decode?scores=4,0,2,...
// Legacy share links carry scores positionally in catalog order; 0 means
// unrated.
func (h *ReportHandler) DecodeShareLink(w http.ResponseWriter, r *http.Request) {
	encoded := r.URL.Query().Get("scores")
	if encoded == "" {
		writeError(w, http.StatusBadRequest, "missing scores parameter")
		return
	}

	scores, err := service.DecodeShareScores(encoded)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scores": scores})
}
