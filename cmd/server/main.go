package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnlens/config"
	_ "learnlens/docs"
	"learnlens/internal/cache"
	aiconfig "learnlens/internal/config"
	"learnlens/internal/repository"
	"learnlens/internal/service"
	"learnlens/internal/transport/rest"
	"learnlens/internal/transport/ws"
)

// @title LearnLens Audit API
// @version 1.0
// @description Learning-science audit tool: scores learning experiences against a principle catalog using AI vision
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	// Load AI config and log model settings
	aiCfg := aiconfig.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Vision model: %s", aiCfg.Models.Vision)
	log.Printf("  Refine model: %s", aiCfg.Models.Refine)
	log.Printf("  Max images/request: %d", aiCfg.MaxImagesPerRequest)
	if aiCfg.IsEnabled() {
		log.Println("  API Key: configured")
	} else {
		log.Println("  API Key: NOT SET (analysis requests will fail; manual mode still works)")
	}

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("learnlens")

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories and caches
	reportRepo := repository.NewReportRepo(db)
	auditCache := cache.NewAuditCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Initialize services
	oracle := service.NewOracleService()
	auditSvc := service.NewAuditService(auditCache, oracle)
	reportSvc := service.NewReportService(reportRepo, reportCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	auditSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuditService:  auditSvc,
		ReportService: reportSvc,
		WSHub:         wsHub,
	}

	router := rest.NewRouter(container)

	port := cfg.HTTPPort

	// Start server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/audits")
		log.Println("  POST /v1/audits/{auditId}/sections")
		log.Println("  POST /v1/audits/{auditId}/analyze")
		log.Println("  POST /v1/audits/{auditId}/manual")
		log.Println("  GET/PUT/POST /v1/audits/{auditId}/refinement*")
		log.Println("  POST /v1/audits/{auditId}/report")
		log.Println("  GET  /v1/reports/{reportId}")
		log.Println("  GET  /v1/catalog/principles")
		log.Println("  WS   /v1/ws/audits/{auditId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
