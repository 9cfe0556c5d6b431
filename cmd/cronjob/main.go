package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"bengkel-backend/internal/config"
	"bengkel-backend/internal/jobs"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/repository/postgres"
	"bengkel-backend/internal/scheduler"
	"bengkel-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-overdue', 'all-nightly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("starting cronjob runner")

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("database connection established")

	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(cfg.Email)
	transactionSvc := service.NewTransactionService(
		store,
		store.ToolRepository,
		store.TransactionRepository,
		store.PaymentRepository,
		store.NotificationRepository,
		store.UserRepository,
		emailSvc,
	)

	jobRunner := jobs.NewJobRunner(transactionSvc, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "mark-overdue":
			jobRunner.MarkOverdueTransactions()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
