package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/importer"
	"storefront/internal/repository/product"

	"github.com/joho/godotenv"
)

func main() {
	var (
		filePath string
		dryRun   bool
	)
	flag.StringVar(&filePath, "file", "", "Path to a products.json array or CSV export (id,name,image,price,description,priceId)")
	flag.BoolVar(&dryRun, "dry-run", false, "Validate the file without touching the database")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatalf("load .env: %v", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	if dryRun {
		products, err := importer.New(f, nil).Parse()
		if err != nil {
			logger.Fatalf("parse failed: %v", err)
		}
		fmt.Printf("%s is valid: %d products\n", filePath, len(products))
		return
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	imp := importer.New(f, product.NewPostgres(pool, logger))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
