package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"loanlens/internal/cache"
	"loanlens/internal/catalog"
	"loanlens/internal/config"
	emailnoop "loanlens/internal/email/noop"
	emailses "loanlens/internal/email/ses"
	"loanlens/internal/engine"
	"loanlens/internal/handler"
	"loanlens/internal/port"
	"loanlens/internal/repository/postgres"
	"loanlens/internal/router"
	"loanlens/internal/service"
	s3storage "loanlens/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Missing .env is fine; containers inject environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	documentRepo := postgres.NewDocumentRepo(db)
	snapshotRepo := postgres.NewLoanSnapshotRepo(db)
	dispositionRepo := postgres.NewDispositionRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	reportCache, err := newCache(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	emailSender, err := newEmailSender(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	fieldCatalog := catalog.NewProvider()
	eng := engine.New()

	// Initialize services
	authSvc := service.NewAuthService(&cfg.JWT)
	loanSvc := service.NewLoanService(snapshotRepo)
	documentSvc := service.NewDocumentService(
		documentRepo, snapshotRepo, s3Client, reportCache, fieldCatalog, eng, &cfg.S3, cfg.Cache.TTL)
	scorecardSvc := service.NewScorecardService(documentRepo, snapshotRepo, fieldCatalog, eng)
	dispositionSvc := service.NewDispositionService(dispositionRepo, documentRepo, emailSender, &cfg.Email)

	// Initialize handlers
	loanH := handler.NewLoanHandler(loanSvc)
	documentH := handler.NewDocumentHandler(documentSvc)
	scorecardH := handler.NewScorecardHandler(scorecardSvc)
	dispositionH := handler.NewDispositionHandler(dispositionSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, authSvc, loanH, documentH, scorecardH, dispositionH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newCache(cfg *config.Config) (port.Cache, error) {
	switch cfg.Cache.Provider {
	case "redis":
		return cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
	case "memory":
		return cache.NewMemoryCache(cfg.Cache.MaxItems), nil
	default:
		return cache.NewNoopCache(), nil
	}
}

func newEmailSender(cfg *config.Config) (port.EmailSender, error) {
	if cfg.Email.Provider == "ses" {
		return emailses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
	}
	return emailnoop.NewNoopSender(), nil
}
