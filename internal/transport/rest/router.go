package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"learnlens/internal/service"
	"learnlens/internal/transport/rest/handler"
	"learnlens/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuditService  *service.AuditService
	ReportService *service.ReportService
	WSHub         *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	auditHandler := handler.NewAuditHandler(c.AuditService)
	refinementHandler := handler.NewRefinementHandler(c.AuditService)
	reportHandler := handler.NewReportHandler(c.ReportService, c.AuditService)
	catalogHandler := handler.NewCatalogHandler()
	wsHandler := ws.NewHandler(c.WSHub, c.AuditService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Audit sessions
	v1.HandleFunc("/audits", auditHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}", auditHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}", auditHandler.Delete).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/sections", auditHandler.AddSection).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/sections/{sectionId}", auditHandler.RemoveSection).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/context", auditHandler.SetContext).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/analyze", auditHandler.Analyze).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/manual", auditHandler.Manual).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/recommendations", auditHandler.Recommendations).Methods("GET", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/captures/import", auditHandler.ImportCaptures).Methods("POST", "OPTIONS")

	// Follow-up refinement flow
	v1.HandleFunc("/audits/{auditId}/refinement", refinementHandler.State).Methods("GET", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/refinement/answers", refinementHandler.Answer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/refinement/skip-question", refinementHandler.SkipQuestion).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/refinement/previous", refinementHandler.Previous).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/refinement/complete", refinementHandler.Complete).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{auditId}/refinement/skip", refinementHandler.Skip).Methods("POST", "OPTIONS")

	// Shareable reports
	v1.HandleFunc("/audits/{auditId}/report", reportHandler.Publish).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports/{reportId}", reportHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/share/decode", reportHandler.DecodeShareLink).Methods("GET", "OPTIONS")

	// Read-only catalog
	v1.HandleFunc("/catalog/principles", catalogHandler.Principles).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/questions", catalogHandler.Questions).Methods("GET", "OPTIONS")

	// WebSocket progress stream
	v1.HandleFunc("/ws/audits/{auditId}", wsHandler.AuditWS).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
