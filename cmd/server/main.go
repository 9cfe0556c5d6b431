package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"bengkel-backend/internal/api"
	"bengkel-backend/internal/config"
	"bengkel-backend/internal/jobs"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/repository/postgres"
	"bengkel-backend/internal/scheduler"
	"bengkel-backend/internal/security"
	"bengkel-backend/internal/service"
	"bengkel-backend/internal/storage"
	"bengkel-backend/internal/ws"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("starting workshop backend", "address", cfg.GetServerAddress())

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("database connection established",
		"host", cfg.Database.Host, "database", cfg.Database.Database)

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	files, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL, cfg.Storage.MaxFileSizeMB)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	emailSvc := service.NewEmailService(cfg.Email)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	toolSvc := service.NewToolService(store.ToolRepository)
	transactionSvc := service.NewTransactionService(
		store,
		store.ToolRepository,
		store.TransactionRepository,
		store.PaymentRepository,
		store.NotificationRepository,
		store.UserRepository,
		emailSvc,
	)
	maintenanceSvc := service.NewMaintenanceService(
		store,
		store.ToolRepository,
		store.MaintenanceRepository,
		store.NotificationRepository,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	workLogSvc := service.NewWorkLogService(store.WorkLogRepository)
	chatSvc := service.NewChatService(store.MessageRepository, store.UserRepository)
	reportSvc := service.NewReportService(store.ReportRepository)

	hub := ws.NewHub()
	wsHandler := ws.NewHandler(hub, chatSvc, tokenManager)

	server := api.NewServer(api.ServerConfig{
		Auth:          authSvc,
		Users:         userSvc,
		Tools:         toolSvc,
		Transactions:  transactionSvc,
		Maintenance:   maintenanceSvc,
		Notifications: noteSvc,
		WorkLogs:      workLogSvc,
		Chat:          chatSvc,
		Reports:       reportSvc,
		Files:         files,
		Tokens:        tokenManager,
		WSHandler:     wsHandler,
		UploadsDir:    files.Dir(),
	})

	jobRunner := jobs.NewJobRunner(transactionSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
