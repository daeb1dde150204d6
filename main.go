package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"heartscope/adapters/tabular"
	"heartscope/internal/analysis"
	"heartscope/internal/config"
	"heartscope/internal/errors"
	"heartscope/ports"
	"heartscope/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	prepared, loadErr := loadAndPrepare(appConfig)
	if loadErr != nil {
		// A missing or unreadable dataset is not fatal: the page is
		// served with the error notice in place of the data sections.
		log.Printf("Dataset unavailable (%s): %v", appConfig.Data.FilePath, loadErr)
	}

	app, err := ui.NewAppFromPipeline(prepared, appConfig.Data.FilePath, loadErr)
	if err != nil {
		log.Fatalf("Failed to initialize report app: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + appConfig.Server.Port,
		Handler: app.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Serving report on http://localhost:%s", appConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// loadAndPrepare reads the configured dataset and runs the single
// preparation pass. Errors here are reported in-page, not fatal.
func loadAndPrepare(appConfig *config.Config) (*analysis.PreparedData, error) {
	var reader ports.TableReader = tabular.NewDataReader(appConfig.Data.FilePath)
	tbl, err := reader.ReadTable()
	if err != nil {
		if errors.HasCode(err, errors.CodeDatasetNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to read dataset")
	}

	opts := analysis.Options{
		PreviewRows: appConfig.Report.PreviewRows,
		AgeBins:     appConfig.Report.AgeBins,
		KDEPoints:   appConfig.Report.KDEPoints,
	}
	return analysis.Prepare(tbl, appConfig.Data.FilePath, opts)
}
