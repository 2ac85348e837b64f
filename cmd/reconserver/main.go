package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"erp-reconciliation/internal/config"
	"erp-reconciliation/internal/gateway"
	"erp-reconciliation/internal/toolserver"
	"erp-reconciliation/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	tolerance, err := cfg.ToleranceDecimal()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	repo := gateway.NewFileRecordRepository(cfg.ERPFile, cfg.BankFile)
	reconciliationUseCase := usecase.NewReconciliationUseCase(
		repo,
		usecase.NewNormalizer(nil),
		usecase.ToleranceComparator(tolerance),
	)
	server := toolserver.NewServer(reconciliationUseCase, repo)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("reconciliation tool server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
