package main

import (
	"fmt"
	"log"
	"os"

	"shoptrack/internal/config"
	"shoptrack/internal/ids"
	"shoptrack/internal/repositories"
	"shoptrack/internal/services"
	"shoptrack/internal/storage"
	"shoptrack/internal/timeutil"

	"github.com/spf13/cobra"
)

// app wires config -> storage -> repositories -> services once per run.
type app struct {
	cfg       *config.Config
	inventory *services.InventoryService
	reports   *services.ReportService
	export    *services.ExportService
}

func newApp() (*app, error) {
	cfg := config.Load()

	if cfg.Reports.Timezone != "" {
		if err := timeutil.SetLocation(cfg.Reports.Timezone); err != nil {
			log.Printf("[Config] Unknown timezone %q, staying on local time", cfg.Reports.Timezone)
		}
	}

	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	productRepo := repositories.NewProductRepository(store)
	saleRepo := repositories.NewSaleRepository(store)
	purchaseRepo := repositories.NewPurchaseRepository(store)
	sequenceRepo := repositories.NewSequenceRepository(store)

	inventory := services.NewInventoryService(productRepo, saleRepo, purchaseRepo, sequenceRepo, ids.NewUUIDGenerator())
	reports := services.NewReportService(productRepo, saleRepo, purchaseRepo)
	reports.LowStockThreshold = cfg.Reports.LowStockThreshold
	export := services.NewExportService(productRepo, saleRepo, purchaseRepo, reports, cfg.Shop.Currency, cfg.Shop.Name)

	return &app{
		cfg:       cfg,
		inventory: inventory,
		reports:   reports,
		export:    export,
	}, nil
}

func main() {
	root := &cobra.Command{
		Use:           "shoptrack",
		Short:         "Inventory, sales and purchase ledger for a mobile shop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var a *app
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		a, err = newApp()
		return err
	}

	root.AddCommand(
		dashboardCmd(&a),
		productsCmd(&a),
		salesCmd(&a),
		purchasesCmd(&a),
		addProductCmd(&a),
		sellCmd(&a),
		reportCmd(&a),
		exportCmd(&a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
