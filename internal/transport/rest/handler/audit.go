package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"learnlens/internal/model"
	"learnlens/internal/service"
)

// AuditHandler handles audit session endpoints
type AuditHandler struct {
	auditSvc *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditSvc *service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// Create handles POST /v1/audits
func (h *AuditHandler) Create(w http.ResponseWriter, r *http.Request) {
	audit, err := h.auditSvc.CreateAudit(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, audit)
}

// Get handles GET /v1/audits/{auditId}
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	audit, err := h.auditSvc.GetAudit(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// Delete handles DELETE /v1/audits/{auditId}
func (h *AuditHandler) Delete(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	if err := h.auditSvc.DeleteAudit(r.Context(), auditID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddSectionRequest is the request body for adding a section. Image data
// is base64 in JSON.
type AddSectionRequest struct {
	Name         string            `json:"name"`
	TypeOverride model.SectionType `json:"typeOverride,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Images       []model.ImageBlob `json:"images,omitempty"`
}

// AddSection handles POST /v1/audits/{auditId}/sections
func (h *AuditHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]

	var req AddSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audit, err := h.auditSvc.AddSection(r.Context(), auditID, model.Section{
		Name:         req.Name,
		TypeOverride: req.TypeOverride,
		Notes:        req.Notes,
		Images:       req.Images,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, audit)
}

// RemoveSection handles DELETE /v1/audits/{auditId}/sections/{sectionId}
func (h *AuditHandler) RemoveSection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	audit, err := h.auditSvc.RemoveSection(r.Context(), vars["auditId"], vars["sectionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// SetContext handles PUT /v1/audits/{auditId}/context
func (h *AuditHandler) SetContext(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]

	var answers map[string]string
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audit, err := h.auditSvc.SetContextAnswers(r.Context(), auditID, answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// Analyze handles POST /v1/audits/{auditId}/analyze
func (h *AuditHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	audit, err := h.auditSvc.Analyze(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// ManualScoreRequest is the request body for manual self-rating.
type ManualScoreRequest struct {
	Scores map[string]int `json:"scores"`
}

// Manual handles POST /v1/audits/{auditId}/manual
func (h *AuditHandler) Manual(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]

	var req ManualScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audit, err := h.auditSvc.ManualScore(r.Context(), auditID, req.Scores)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// Recommendations handles GET /v1/audits/{auditId}/recommendations
func (h *AuditHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	audit, err := h.auditSvc.GetAudit(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	recs := service.RecommendMissing(h.auditSvc.PresentTypes(audit))
	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
}

// ImportCapturesRequest wraps a live-audit capture export with the section
// the captures should be grouped under.
type ImportCapturesRequest struct {
	SectionName string          `json:"sectionName"`
	Captures    []model.Capture `json:"captures"`
}

// ImportCaptures handles POST /v1/audits/{auditId}/captures/import
func (h *AuditHandler) ImportCaptures(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]

	var req ImportCapturesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audit, err := h.auditSvc.ImportCaptures(r.Context(), auditID, req.SectionName, model.CaptureBatch{Captures: req.Captures})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, audit)
}
