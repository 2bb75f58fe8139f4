package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"shoptrack/internal/models"
	"shoptrack/internal/timeutil"

	"github.com/spf13/cobra"
)

func dashboardCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's and this month's figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := (*a).reports.DashboardStats()
			if err != nil {
				return err
			}
			currency := (*a).cfg.Shop.Currency

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Total Inventory Value\t%s %.2f\n", currency, stats.TotalInventoryValue)
			fmt.Fprintf(w, "Today's Sales\t%s %.2f\n", currency, stats.TodaySales)
			fmt.Fprintf(w, "Today's Profit\t%s %.2f\n", currency, stats.TodayProfit)
			fmt.Fprintf(w, "Monthly Sales\t%s %.2f\n", currency, stats.MonthlySales)
			fmt.Fprintf(w, "Monthly Profit\t%s %.2f\n", currency, stats.MonthlyProfit)
			fmt.Fprintf(w, "Products In Stock\t%d\n", stats.TotalProducts)
			fmt.Fprintf(w, "Low Stock Items\t%d\n", stats.LowStockItems)
			w.Flush()

			recent, err := (*a).reports.RecentSales((*a).cfg.Reports.RecentSales)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nRecent Sales:")
			rw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(rw, "INVOICE\tPRODUCT\tCUSTOMER\tAMOUNT\tPROFIT\tDATE")
			for _, s := range recent {
				fmt.Fprintf(rw, "%s\t%s\t%s\t%.2f\t%.2f\t%s\n",
					s.InvoiceNumber, s.ProductName, s.CustomerName,
					s.SalePrice, s.Profit, timeutil.In(s.Date).Format(timeutil.DateLayout))
			}
			return rw.Flush()
		},
	}
}

func productsCmd(a **app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered by name, brand or IMEI",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := (*a).reports.SearchProducts(search)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBRAND\tCATEGORY\tIMEI\tPURCHASE\tSALE\tQTY\tSTATUS")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%d\t%s\n",
					p.ID, p.Name, p.Brand, p.Category, p.IMEI,
					p.PurchasePrice, p.SalePrice, p.Quantity, p.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name, brand or IMEI")
	return cmd
}

func salesCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "List the sale ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			sales, err := (*a).inventory.SaleRepo.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INVOICE\tPRODUCT\tIMEI\tAMOUNT\tPROFIT\tCUSTOMER\tPAYMENT\tDATE")
			for _, s := range sales {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
					s.InvoiceNumber, s.ProductName, s.IMEI, s.SalePrice, s.Profit,
					s.CustomerName, s.PaymentMethod, timeutil.In(s.Date).Format(timeutil.DateLayout))
			}
			return w.Flush()
		},
	}
}

func purchasesCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "purchases",
		Short: "List the purchase ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			purchases, err := (*a).inventory.PurchaseRepo.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BILL\tPRODUCT\tBRAND\tQTY\tPRICE\tEXPECTED\tSUPPLIER\tDATE")
			for _, p := range purchases {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.2f\t%s\t%s\n",
					p.BillNumber, p.ProductName, p.Brand, p.Quantity,
					p.PurchasePrice, p.ExpectedSalePrice, p.Supplier,
					timeutil.In(p.Date).Format(timeutil.DateLayout))
			}
			return w.Flush()
		},
	}
}

func addProductCmd(a **app) *cobra.Command {
	req := &models.AddProductRequest{}
	cmd := &cobra.Command{
		Use:   "add-product",
		Short: "Add a product to stock (also records the purchase)",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, purchase, err := (*a).inventory.AddProduct(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added product %s (%s)\n", product.Name, product.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Purchase recorded under bill %s\n", purchase.BillNumber)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&req.Brand, "brand", "", "brand (required)")
	cmd.Flags().StringVar(&req.Category, "category", models.CategoryMobile, "mobile, accessory or other")
	cmd.Flags().StringVar(&req.IMEI, "imei", "", "IMEI number")
	cmd.Flags().StringVar(&req.Color, "color", "", "color")
	cmd.Flags().StringVar(&req.Storage, "storage", "", "storage, e.g. 128GB")
	cmd.Flags().StringVar(&req.MfgDate, "mfg-date", "", "manufacturing date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&req.PurchasePrice, "purchase-price", 0, "purchase price (required)")
	cmd.Flags().Float64Var(&req.SalePrice, "sale-price", 0, "sale price (required)")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 1, "quantity")
	cmd.Flags().StringVar(&req.Supplier, "supplier", "", "supplier")
	return cmd
}

func sellCmd(a **app) *cobra.Command {
	req := &models.RecordSaleRequest{}
	cmd := &cobra.Command{
		Use:   "sell",
		Short: "Record the sale of one unit of a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			sale, err := (*a).inventory.RecordSale(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sale recorded: invoice %s, profit %s %.2f\n",
				sale.InvoiceNumber, (*a).cfg.Shop.Currency, sale.Profit)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ProductID, "product", "", "product id (required)")
	cmd.Flags().Float64Var(&req.SalePrice, "price", 0, "actual sale price (required)")
	cmd.Flags().StringVar(&req.CustomerName, "customer", "", "customer name")
	cmd.Flags().StringVar(&req.CustomerPhone, "phone", "", "customer phone")
	cmd.Flags().StringVar(&req.PaymentMethod, "payment", models.PaymentCash, "cash, card, bank-transfer or installment")
	return cmd
}

func reportCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the all-time sales and inventory report",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			currency := (*a).cfg.Shop.Currency

			sales, err := (*a).reports.SalesSummary()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Sales Summary")
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "  Total Sales\t%s %.2f\n", currency, sales.TotalSales)
			fmt.Fprintf(w, "  Total Profit\t%s %.2f\n", currency, sales.TotalProfit)
			fmt.Fprintf(w, "  Transactions\t%d\n", sales.Transactions)
			fmt.Fprintf(w, "  Average Sale\t%s %.2f\n", currency, sales.AverageSale)
			w.Flush()

			inv, err := (*a).reports.InventorySummary()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nInventory Summary")
			w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "  Total Products\t%d\n", inv.TotalProducts)
			fmt.Fprintf(w, "  In Stock\t%d\n", inv.InStock)
			fmt.Fprintf(w, "  Sold\t%d\n", inv.Sold)
			fmt.Fprintf(w, "  Inventory Value\t%s %.2f\n", currency, inv.InventoryValue)
			w.Flush()

			payments, err := (*a).reports.PaymentMethodBreakdown()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nPayment Methods")
			w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, p := range payments {
				fmt.Fprintf(w, "  %s\t%d sales\t%s %.2f\n", p.Method, p.Count, currency, p.Total)
			}
			w.Flush()

			categories, err := (*a).reports.CategoryBreakdown()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nCategories")
			w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, c := range categories {
				fmt.Fprintf(w, "  %s\t%d in stock / %d total\n", c.Category, c.InStock, c.Total)
			}
			w.Flush()

			low, err := (*a).reports.LowStockItems()
			if err != nil {
				return err
			}
			if len(low) > 0 {
				fmt.Fprintln(out, "\nLow Stock")
				w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, p := range low {
					fmt.Fprintf(w, "  %s\t%s\t%d left\n", p.Name, p.Brand, p.Quantity)
				}
				w.Flush()
			}
			return nil
		},
	}
}

func exportCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export ledgers and printable documents",
	}

	var csvDir string
	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Write products, sales and purchases as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(csvDir, 0o755); err != nil {
				return err
			}
			exports := []struct {
				name  string
				write func(f *os.File) error
			}{
				{"products.csv", func(f *os.File) error { return (*a).export.ProductsCSV(f) }},
				{"sales.csv", func(f *os.File) error { return (*a).export.SalesCSV(f) }},
				{"purchases.csv", func(f *os.File) error { return (*a).export.PurchasesCSV(f) }},
			}
			for _, e := range exports {
				f, err := os.Create(filepath.Join(csvDir, e.name))
				if err != nil {
					return err
				}
				if err := e.write(f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Join(csvDir, e.name))
			}
			return nil
		},
	}
	csvCmd.Flags().StringVar(&csvDir, "out", ".", "output directory")

	var invoiceOut string
	invoiceCmd := &cobra.Command{
		Use:   "invoice [invoice-number]",
		Short: "Render a sale invoice as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := (*a).export.SaleInvoicePDF(args[0])
			if err != nil {
				return err
			}
			out := invoiceOut
			if out == "" {
				out = args[0] + ".pdf"
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	invoiceCmd.Flags().StringVar(&invoiceOut, "out", "", "output file (default <invoice>.pdf)")

	var dailyDate, dailyOut string
	dailyCmd := &cobra.Command{
		Use:   "daily",
		Short: "Render the daily summary as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := timeutil.Now()
			if dailyDate != "" {
				parsed, err := time.ParseInLocation(timeutil.DateLayout, dailyDate, timeutil.Location)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				day = parsed
			}
			data, err := (*a).export.DailySummaryPDF(day)
			if err != nil {
				return err
			}
			out := dailyOut
			if out == "" {
				out = "summary-" + day.Format(timeutil.DateLayout) + ".pdf"
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "day to summarise (YYYY-MM-DD, default today)")
	dailyCmd.Flags().StringVar(&dailyOut, "out", "", "output file")

	cmd.AddCommand(csvCmd, invoiceCmd, dailyCmd)
	return cmd
}
