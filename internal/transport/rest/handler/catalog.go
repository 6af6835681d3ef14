package handler

import (
	"net/http"

	"learnlens/internal/catalog"
)

// CatalogHandler serves the read-only domain tables
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Principles handles GET /v1/catalog/principles
func (h *CatalogHandler) Principles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"principles": catalog.Principles()})
}

// Questions handles GET /v1/catalog/questions
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"upfront": catalog.UpfrontQuestions()})
}
