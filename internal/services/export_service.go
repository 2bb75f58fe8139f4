package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"shoptrack/internal/models"
	"shoptrack/internal/repositories"
	"shoptrack/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ExportService renders the ledgers as CSV files and printable PDFs.
type ExportService struct {
	ProductRepo  *repositories.ProductRepository
	SaleRepo     *repositories.SaleRepository
	PurchaseRepo *repositories.PurchaseRepository
	Reports      *ReportService

	// Currency is the label printed next to amounts.
	Currency string
	// ShopName heads invoices and reports.
	ShopName string
}

// NewExportService creates the export layer.
func NewExportService(
	productRepo *repositories.ProductRepository,
	saleRepo *repositories.SaleRepository,
	purchaseRepo *repositories.PurchaseRepository,
	reports *ReportService,
	currency, shopName string,
) *ExportService {
	return &ExportService{
		ProductRepo:  productRepo,
		SaleRepo:     saleRepo,
		PurchaseRepo: purchaseRepo,
		Reports:      reports,
		Currency:     currency,
		ShopName:     shopName,
	}
}

func (s *ExportService) amount(v float64) string {
	return fmt.Sprintf("%s %.2f", s.Currency, v)
}

// ProductsCSV writes the product collection as CSV.
func (s *ExportService) ProductsCSV(w io.Writer) error {
	products, err := s.ProductRepo.List()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Write([]string{"ID", "Name", "Brand", "Category", "IMEI", "Color", "Storage",
		"Purchase Price", "Sale Price", "Quantity", "Supplier", "Date Added", "Status"})
	for _, p := range products {
		cw.Write([]string{
			p.ID, p.Name, p.Brand, p.Category, p.IMEI, p.Color, p.Storage,
			strconv.FormatFloat(p.PurchasePrice, 'f', 2, 64),
			strconv.FormatFloat(p.SalePrice, 'f', 2, 64),
			strconv.Itoa(p.Quantity),
			p.Supplier,
			timeutil.In(p.DateAdded).Format(timeutil.DateTimeLayout),
			p.Status,
		})
	}
	cw.Flush()
	return cw.Error()
}

// SalesCSV writes the sale ledger as CSV.
func (s *ExportService) SalesCSV(w io.Writer) error {
	sales, err := s.SaleRepo.List()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Write([]string{"Invoice", "Product", "IMEI", "Sale Price", "Profit",
		"Customer", "Phone", "Payment Method", "Date"})
	for _, sale := range sales {
		cw.Write([]string{
			sale.InvoiceNumber, sale.ProductName, sale.IMEI,
			strconv.FormatFloat(sale.SalePrice, 'f', 2, 64),
			strconv.FormatFloat(sale.Profit, 'f', 2, 64),
			sale.CustomerName, sale.CustomerPhone, sale.PaymentMethod,
			timeutil.In(sale.Date).Format(timeutil.DateTimeLayout),
		})
	}
	cw.Flush()
	return cw.Error()
}

// PurchasesCSV writes the purchase ledger as CSV.
func (s *ExportService) PurchasesCSV(w io.Writer) error {
	purchases, err := s.PurchaseRepo.List()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Write([]string{"Bill", "Product", "Brand", "Category", "IMEI", "Quantity",
		"Purchase Price", "Expected Sale Price", "Supplier", "Date"})
	for _, p := range purchases {
		cw.Write([]string{
			p.BillNumber, p.ProductName, p.Brand, p.Category, p.IMEI,
			strconv.Itoa(p.Quantity),
			strconv.FormatFloat(p.PurchasePrice, 'f', 2, 64),
			strconv.FormatFloat(p.ExpectedSalePrice, 'f', 2, 64),
			p.Supplier,
			timeutil.In(p.Date).Format(timeutil.DateTimeLayout),
		})
	}
	cw.Flush()
	return cw.Error()
}

// SaleInvoicePDF renders a printable invoice for the given invoice number.
func (s *ExportService) SaleInvoicePDF(invoiceNumber string) ([]byte, error) {
	sales, err := s.SaleRepo.List()
	if err != nil {
		return nil, err
	}
	var sale *models.Sale
	for i := range sales {
		if sales[i].InvoiceNumber == invoiceNumber {
			sale = &sales[i]
			break
		}
	}
	if sale == nil {
		return nil, fmt.Errorf("invoice %s not found", invoiceNumber)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Invoice %s", sale.InvoiceNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, timeutil.In(sale.Date).Format(timeutil.DisplayLayout), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Customer box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	name := sale.CustomerName
	if name == "" {
		name = "Walk-in customer"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", sale.CustomerPhone), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "IMEI", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Payment", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(80, 6, sale.ProductName, "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, sale.IMEI, "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, sale.PaymentMethod, "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, s.amount(sale.SalePrice), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(155, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, s.amount(sale.SalePrice), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// DailySummaryPDF renders the sales and purchases for one calendar day.
func (s *ExportService) DailySummaryPDF(day time.Time) ([]byte, error) {
	sales, err := s.SaleRepo.List()
	if err != nil {
		return nil, err
	}
	purchases, err := s.PurchaseRepo.List()
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - Daily Summary", s.ShopName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, timeutil.In(day).Format("02-Jan-2006"), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Sales table
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Sales", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Invoice", "1", 0, "C", true, 0, "")
	pdf.CellFormat(75, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Profit", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	var totalSales, totalProfit float64
	for _, sale := range sales {
		if !timeutil.SameDay(sale.Date, day) {
			continue
		}
		pdf.CellFormat(35, 6, sale.InvoiceNumber, "1", 0, "C", false, 0, "")
		product := sale.ProductName
		if len(product) > 38 {
			product = product[:35] + "..."
		}
		pdf.CellFormat(75, 6, product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, s.amount(sale.SalePrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, s.amount(sale.Profit), "1", 1, "R", false, 0, "")
		totalSales += sale.SalePrice
		totalProfit += sale.Profit
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(110, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, s.amount(totalSales), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, s.amount(totalProfit), "1", 1, "R", false, 0, "")
	pdf.Ln(5)

	// Purchases table
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Purchases", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Bill", "1", 0, "C", true, 0, "")
	pdf.CellFormat(75, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	var totalPurchases float64
	for _, p := range purchases {
		if !timeutil.SameDay(p.Date, day) {
			continue
		}
		amount := p.PurchasePrice * float64(p.Quantity)
		pdf.CellFormat(35, 6, p.BillNumber, "1", 0, "C", false, 0, "")
		product := p.ProductName
		if len(product) > 38 {
			product = product[:35] + "..."
		}
		pdf.CellFormat(75, 6, product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, strconv.Itoa(p.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, s.amount(amount), "1", 1, "R", false, 0, "")
		totalPurchases += amount
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(150, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, s.amount(totalPurchases), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("daily summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}
