package services

import (
	"strings"
	"time"

	"shoptrack/internal/models"
	"shoptrack/internal/repositories"
	"shoptrack/internal/timeutil"
)

// DefaultLowStockThreshold flags in-stock products running low.
const DefaultLowStockThreshold = 5

// ReportService computes dashboard and report aggregates from the current
// ledgers. Every figure is recomputed from state on each call; nothing here
// writes.
type ReportService struct {
	ProductRepo  *repositories.ProductRepository
	SaleRepo     *repositories.SaleRepository
	PurchaseRepo *repositories.PurchaseRepository

	// LowStockThreshold is the quantity below which an in-stock product
	// counts as low stock.
	LowStockThreshold int

	// Now anchors the "today" and "this month" windows. Tests pin it.
	Now func() time.Time
}

// NewReportService creates the aggregation engine.
func NewReportService(
	productRepo *repositories.ProductRepository,
	saleRepo *repositories.SaleRepository,
	purchaseRepo *repositories.PurchaseRepository,
) *ReportService {
	return &ReportService{
		ProductRepo:       productRepo,
		SaleRepo:          saleRepo,
		PurchaseRepo:      purchaseRepo,
		LowStockThreshold: DefaultLowStockThreshold,
		Now:               timeutil.Now,
	}
}

// InventoryValue sums salePrice x quantity over in-stock products: the
// potential revenue sitting on the shelves, not the cost basis.
func (s *ReportService) InventoryValue() (float64, error) {
	products, err := s.ProductRepo.List()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range products {
		if p.Status == models.StatusInStock {
			total += p.SalePrice * float64(p.Quantity)
		}
	}
	return total, nil
}

// TodaySales sums sale prices for the current calendar day.
func (s *ReportService) TodaySales() (float64, error) {
	return s.sumSales(func(sale *models.Sale) float64 { return sale.SalePrice }, timeutil.SameDay)
}

// TodayProfit sums profit for the current calendar day.
func (s *ReportService) TodayProfit() (float64, error) {
	return s.sumSales(func(sale *models.Sale) float64 { return sale.Profit }, timeutil.SameDay)
}

// MonthlySales sums sale prices for the current calendar month.
func (s *ReportService) MonthlySales() (float64, error) {
	return s.sumSales(func(sale *models.Sale) float64 { return sale.SalePrice }, timeutil.SameMonth)
}

// MonthlyProfit sums profit for the current calendar month.
func (s *ReportService) MonthlyProfit() (float64, error) {
	return s.sumSales(func(sale *models.Sale) float64 { return sale.Profit }, timeutil.SameMonth)
}

func (s *ReportService) sumSales(value func(*models.Sale) float64, within func(a, b time.Time) bool) (float64, error) {
	sales, err := s.SaleRepo.List()
	if err != nil {
		return 0, err
	}
	now := s.Now()
	var total float64
	for i := range sales {
		if within(sales[i].Date, now) {
			total += value(&sales[i])
		}
	}
	return total, nil
}

// TodayPurchases sums the amount spent on stock acquired today.
func (s *ReportService) TodayPurchases() (float64, error) {
	purchases, err := s.PurchaseRepo.List()
	if err != nil {
		return 0, err
	}
	now := s.Now()
	var total float64
	for _, p := range purchases {
		if timeutil.SameDay(p.Date, now) {
			total += p.PurchasePrice * float64(p.Quantity)
		}
	}
	return total, nil
}

// LowStockCount counts in-stock products below the threshold.
func (s *ReportService) LowStockCount() (int, error) {
	items, err := s.LowStockItems()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// LowStockItems lists in-stock products below the threshold.
func (s *ReportService) LowStockItems() ([]models.Product, error) {
	products, err := s.ProductRepo.List()
	if err != nil {
		return nil, err
	}
	var low []models.Product
	for _, p := range products {
		if p.Status == models.StatusInStock && p.Quantity < s.LowStockThreshold {
			low = append(low, p)
		}
	}
	return low, nil
}

// DashboardStats assembles the dashboard in one pass over the ledgers.
func (s *ReportService) DashboardStats() (*models.DashboardStats, error) {
	products, err := s.ProductRepo.List()
	if err != nil {
		return nil, err
	}
	sales, err := s.SaleRepo.List()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	stats := &models.DashboardStats{}
	for _, p := range products {
		if p.Status != models.StatusInStock {
			continue
		}
		stats.TotalProducts++
		stats.TotalInventoryValue += p.SalePrice * float64(p.Quantity)
		if p.Quantity < s.LowStockThreshold {
			stats.LowStockItems++
		}
	}
	for _, sale := range sales {
		if timeutil.SameDay(sale.Date, now) {
			stats.TodaySales += sale.SalePrice
			stats.TodayProfit += sale.Profit
		}
		if timeutil.SameMonth(sale.Date, now) {
			stats.MonthlySales += sale.SalePrice
			stats.MonthlyProfit += sale.Profit
		}
	}
	return stats, nil
}

// SalesSummary computes the all-time totals for the reports view.
func (s *ReportService) SalesSummary() (*models.SalesSummary, error) {
	sales, err := s.SaleRepo.List()
	if err != nil {
		return nil, err
	}
	summary := &models.SalesSummary{Transactions: len(sales)}
	for _, sale := range sales {
		summary.TotalSales += sale.SalePrice
		summary.TotalProfit += sale.Profit
	}
	if summary.Transactions > 0 {
		summary.AverageSale = summary.TotalSales / float64(summary.Transactions)
	}
	return summary, nil
}

// InventorySummary counts products by status.
func (s *ReportService) InventorySummary() (*models.InventorySummary, error) {
	products, err := s.ProductRepo.List()
	if err != nil {
		return nil, err
	}
	summary := &models.InventorySummary{TotalProducts: len(products)}
	for _, p := range products {
		switch p.Status {
		case models.StatusInStock:
			summary.InStock++
			summary.InventoryValue += p.SalePrice * float64(p.Quantity)
		case models.StatusSold:
			summary.Sold++
		}
	}
	return summary, nil
}

// PaymentMethodBreakdown tallies sales per payment method, in display order.
func (s *ReportService) PaymentMethodBreakdown() ([]models.PaymentMethodStat, error) {
	sales, err := s.SaleRepo.List()
	if err != nil {
		return nil, err
	}
	stats := make([]models.PaymentMethodStat, len(models.PaymentMethods))
	for i, method := range models.PaymentMethods {
		stats[i].Method = method
	}
	for _, sale := range sales {
		for i := range stats {
			if stats[i].Method == sale.PaymentMethod {
				stats[i].Count++
				stats[i].Total += sale.SalePrice
				break
			}
		}
	}
	return stats, nil
}

// CategoryBreakdown tallies products per category.
func (s *ReportService) CategoryBreakdown() ([]models.CategoryStat, error) {
	products, err := s.ProductRepo.List()
	if err != nil {
		return nil, err
	}
	categories := []string{models.CategoryMobile, models.CategoryAccessory, models.CategoryOther}
	stats := make([]models.CategoryStat, len(categories))
	for i, c := range categories {
		stats[i].Category = c
	}
	for _, p := range products {
		for i := range stats {
			if stats[i].Category == p.Category {
				stats[i].Total++
				if p.Status == models.StatusInStock {
					stats[i].InStock++
				}
				break
			}
		}
	}
	return stats, nil
}

// RecentSales returns the latest n sales, newest first.
func (s *ReportService) RecentSales(n int) ([]models.Sale, error) {
	sales, err := s.SaleRepo.List()
	if err != nil {
		return nil, err
	}
	if n > len(sales) {
		n = len(sales)
	}
	recent := make([]models.Sale, 0, n)
	for i := len(sales) - 1; i >= len(sales)-n; i-- {
		recent = append(recent, sales[i])
	}
	return recent, nil
}

// SearchProducts filters products by name, brand, or IMEI substring.
// An empty term returns everything.
func (s *ReportService) SearchProducts(term string) ([]models.Product, error) {
	products, err := s.ProductRepo.List()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return products, nil
	}
	term = strings.ToLower(term)
	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			(p.IMEI != "" && strings.Contains(p.IMEI, term)) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
