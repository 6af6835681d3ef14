package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"learnlens/internal/model"
	"learnlens/internal/service"
)

// RefinementHandler handles the follow-up refinement flow endpoints
type RefinementHandler struct {
	auditSvc *service.AuditService
}

// NewRefinementHandler creates a new refinement handler
func NewRefinementHandler(auditSvc *service.AuditService) *RefinementHandler {
	return &RefinementHandler{auditSvc: auditSvc}
}

// State handles GET /v1/audits/{auditId}/refinement
func (h *RefinementHandler) State(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	view, err := h.auditSvc.RefinementState(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AnswerRequest is the request body for answering the current question.
type AnswerRequest struct {
	PrincipleID string   `json:"principleId"`
	Selected    []string `json:"selected,omitempty"`
	FreeText    string   `json:"freeText,omitempty"`
}

// Answer handles PUT /v1/audits/{auditId}/refinement/answers
func (h *RefinementHandler) Answer(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.auditSvc.SaveRefinementAnswer(r.Context(), auditID, req.PrincipleID, model.RefinementAnswer{
		Selected: req.Selected,
		FreeText: req.FreeText,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SkipQuestion handles POST /v1/audits/{auditId}/refinement/skip-question
func (h *RefinementHandler) SkipQuestion(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	view, err := h.auditSvc.SkipRefinementQuestion(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Previous handles POST /v1/audits/{auditId}/refinement/previous
func (h *RefinementHandler) Previous(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	view, err := h.auditSvc.PreviousRefinementQuestion(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Complete handles POST /v1/audits/{auditId}/refinement/complete
func (h *RefinementHandler) Complete(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	audit, err := h.auditSvc.CompleteRefinement(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// Skip handles POST /v1/audits/{auditId}/refinement/skip
func (h *RefinementHandler) Skip(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["auditId"]
	audit, err := h.auditSvc.SkipRefinement(r.Context(), auditID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}
