package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"clientmap-api/internal/config"
	"clientmap-api/internal/ingest"
	"clientmap-api/internal/logger"
	"clientmap-api/internal/models"
	"clientmap-api/internal/repository"
	"clientmap-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "", "Path to the .xlsx or .csv file to import")
	dryRun := flag.Bool("dry-run", false, "Parse and report without touching the database")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	_ = godotenv.Load()

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	fmt.Printf("Starting import from file: %s\n", *file)

	batch, err := parseFile(*file)
	if err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}
	printReport(batch.Report)

	if *dryRun {
		fmt.Println("Dry run, database not modified")
		return
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure table exists
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Replace records
	result, err := service.NewImportService(repo).ImportBatch(ctx, batch)
	if err != nil {
		var connErr *models.ConnectionError
		if errors.As(err, &connErr) {
			fmt.Println("Error: database unavailable, check DB_SOURCE")
		}
		fmt.Printf("Error replacing records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, repo, result.Inserted); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", result.Inserted)
}

func parseFile(path string) (*ingest.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ingest.Parse(filepath.Base(path), f)
}

func printReport(report models.ImportReport) {
	fmt.Printf("Columns found: %v\n", report.AvailableColumns)
	if len(report.MissingColumns) > 0 {
		fmt.Printf("Columns missing (defaults applied): %v\n", report.MissingColumns)
	}
	fmt.Printf("Parsed %d records (%d active, %d voided)\n", report.Rows, report.Active, report.Voided)
	if len(report.UnrecognizedVoided) > 0 {
		fmt.Printf("Unrecognized Anulado values treated as NO: %v\n", report.UnrecognizedVoided)
	}
	for _, w := range report.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}

func verifyImport(ctx context.Context, repo *repository.Repository, expected int) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count != expected {
		return fmt.Errorf("expected %d records, found %d", expected, count)
	}
	return nil
}
