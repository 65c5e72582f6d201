package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	"storefront/internal/payment"
	productrepo "storefront/internal/repository/product"
	catalogsvc "storefront/internal/service/catalog"
	checkoutsvc "storefront/internal/service/checkout"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatalf("load .env: %v", err)
	}
	cfg := config.FromEnv()

	ctx := context.Background()

	var productRepo productrepo.Repository
	switch cfg.CatalogSource {
	case config.CatalogSourceFile:
		productRepo = productrepo.NewFile(cfg.CatalogFile, logger)
		logger.Printf("catalog: serving %s", cfg.CatalogFile)
	case config.CatalogSourcePostgres:
		dbpool, err := db.Connect(ctx, cfg.DBConnString, logger)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer dbpool.Close()
		productRepo = productrepo.NewPostgres(dbpool, logger)
		logger.Printf("catalog: serving postgres products table")
	default:
		logger.Fatalf("unknown CATALOG_SOURCE %q (want %q or %q)", cfg.CatalogSource, config.CatalogSourceFile, config.CatalogSourcePostgres)
	}

	gateway, err := payment.NewStripeGateway(payment.StripeConfig{
		SecretKey: cfg.StripeSecretKey,
		APIURL:    cfg.StripeAPIURL,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatalf("init payment gateway: %v", err)
	}

	catalogService := catalogsvc.New(productRepo)
	checkoutService := checkoutsvc.New(gateway, checkoutsvc.Options{
		PaymentMethodTypes:       cfg.PaymentMethodTypes,
		AllowedShippingCountries: cfg.AllowedShippingCountries,
		Timeout:                  cfg.CheckoutTimeout,
	}, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:  catalogService,
		Checkout: checkoutService,
		Store:    catalogService,
		Metrics:  httpserver.NewMetrics(),
	}, httpserver.Options{
		PublicBaseURL:      cfg.PublicBaseURL,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
