package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"storefront/internal/config"
	"storefront/internal/db"
	productrepo "storefront/internal/repository/product"
	"storefront/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatalf("load .env: %v", err)
	}
	cfg := config.FromEnv()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, productrepo.NewPostgres(pool, logger)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
