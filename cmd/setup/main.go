package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"clientmap-api/internal/config"
	"clientmap-api/internal/logger"
	"clientmap-api/internal/models"
	"clientmap-api/internal/repository"
	"clientmap-api/internal/seed"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	seedFile := flag.String("seed", "", "YAML file with rows to insert into an empty table")
	sample := flag.Bool("sample", false, "Insert the built-in sample rows into an empty table")
	skipCreate := flag.Bool("skip-create-db", false, "Do not try to create the database")
	flag.Parse()

	if *seedFile != "" && *sample {
		fmt.Println("Error: use either --seed or --sample")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()

	if !*skipCreate {
		if err := ensureDatabase(ctx, cfg); err != nil {
			fmt.Printf("Error creating database: %v\n", err)
			os.Exit(1)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Schema ready: table clientes, indexes and update trigger")

	rows, err := seedRows(*seedFile, *sample)
	if err != nil {
		fmt.Printf("Error loading seed rows: %v\n", err)
		os.Exit(1)
	}
	if len(rows) > 0 {
		if err := insertSeed(ctx, repo, rows); err != nil {
			fmt.Printf("Error inserting seed rows: %v\n", err)
			os.Exit(1)
		}
	}

	// Connection test
	count, err := repo.Count(ctx)
	if err != nil {
		fmt.Printf("Error verifying setup: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Setup complete, table clientes holds %d records\n", count)
}

func ensureDatabase(ctx context.Context, cfg config.Config) error {
	if cfg.DBAdminSource == "" {
		fmt.Println("DB_ADMIN_SOURCE not set, assuming the database exists")
		return nil
	}

	conn, err := pgx.Connect(ctx, cfg.DBAdminSource)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	created, err := repository.EnsureDatabase(ctx, conn, cfg.DBName)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Database %s created\n", cfg.DBName)
	} else {
		fmt.Printf("Database %s already exists\n", cfg.DBName)
	}
	return nil
}

func seedRows(path string, sample bool) ([]models.Client, error) {
	switch {
	case path != "":
		return seed.LoadFile(path)
	case sample:
		return seed.Sample(), nil
	default:
		return nil, nil
	}
}

// insertSeed only fills an empty table so running setup twice does not duplicate rows.
func insertSeed(ctx context.Context, repo *repository.Repository, rows []models.Client) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Printf("Table already holds %d records, seed skipped\n", count)
		return nil
	}

	n, err := repo.InsertBatch(ctx, rows)
	if err != nil {
		return err
	}
	fmt.Printf("Inserted %d seed records\n", n)
	return nil
}
