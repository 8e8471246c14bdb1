// Command setup-sheets creates the spreadsheet's sheets and header rows.
// Existing data rows are left untouched.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		Logger.Warning("could not load .env file: %v", err)
	}

	cfg := config.GetConfig()
	if cfg.StoreDriver != config.StoreDriverSheets {
		fmt.Printf("STORE_DRIVER is %q, nothing to set up\n", cfg.StoreDriver)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := sheetstore.NewGoogleClient(ctx, cfg.GoogleSheetID, cfg.GoogleCredentialsPath)
	if err != nil {
		Logger.Error("failed to connect to Google Sheets: %v", err)
		os.Exit(1)
	}

	store := sheetstore.NewStore(client)
	if err := store.EnsureCollections(ctx, services.SheetCollections()); err != nil {
		Logger.Error("sheet setup failed: %v", err)
		os.Exit(1)
	}
	Logger.Info("Google Sheets setup complete")
}
