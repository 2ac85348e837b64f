package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"erp-reconciliation/internal/gateway"
	"erp-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	erpFile := flag.String("erp", "", "Path to the ERP export file (.xlsx or .csv) (required)")
	bankFile := flag.String("bank", "", "Path to the bank statement CSV file (required)")
	toleranceStr := flag.String("tolerance", "0.01", "Amount tolerance for matching")
	flag.Parse()

	// Validate required flags
	if *erpFile == "" || *bankFile == "" {
		fmt.Println("Error: Both -erp and -bank flags are required.")
		flag.Usage()
		os.Exit(1)
	}

	tolerance, err := decimal.NewFromString(*toleranceStr)
	if err != nil {
		log.Fatalf("Error parsing tolerance: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the repository (the outermost layer)
	repo := gateway.NewFileRecordRepository(*erpFile, *bankFile)

	// 2. Create the usecase and inject the repository (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(
		repo,
		usecase.NewNormalizer(nil),
		usecase.ToleranceComparator(tolerance),
	)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background())
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
