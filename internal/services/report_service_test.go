package services

import (
	"testing"
	"time"

	"shoptrack/internal/models"
	"shoptrack/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSale(t *testing.T, e *env, s models.Sale) {
	t.Helper()
	require.NoError(t, e.sales.Add(s))
}

func seedProduct(t *testing.T, e *env, p models.Product) {
	t.Helper()
	require.NoError(t, e.products.Add(p))
}

func TestEmptyLedgersYieldZeroes(t *testing.T) {
	e := newEnv(t, nil)

	stats, err := e.reports.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{}, stats)

	value, err := e.reports.InventoryValue()
	require.NoError(t, err)
	assert.Equal(t, float64(0), value)

	summary, err := e.reports.SalesSummary()
	require.NoError(t, err)
	assert.Equal(t, float64(0), summary.AverageSale)
}

func TestInventoryValueCountsOnlyInStock(t *testing.T) {
	e := newEnv(t, nil)
	seedProduct(t, e, models.Product{ID: "p1", Name: "A", Category: models.CategoryMobile, SalePrice: 35000, Quantity: 2, Status: models.StatusInStock})
	seedProduct(t, e, models.Product{ID: "p2", Name: "B", Category: models.CategoryMobile, SalePrice: 90000, Quantity: 0, Status: models.StatusSold})

	value, err := e.reports.InventoryValue()
	require.NoError(t, err)
	// The sold-out product contributes nothing
	assert.Equal(t, float64(70000), value)
}

func TestTodaySalesCalendarDayBoundary(t *testing.T) {
	e := newEnv(t, nil)
	// now is 2024-03-15 15:00 Asia/Karachi
	seedSale(t, e, models.Sale{ID: "s1", SalePrice: 1000, Profit: 100,
		Date: time.Date(2024, 3, 14, 23, 59, 0, 0, timeutil.Location)})
	seedSale(t, e, models.Sale{ID: "s2", SalePrice: 2000, Profit: 200,
		Date: time.Date(2024, 3, 15, 0, 1, 0, 0, timeutil.Location)})
	seedSale(t, e, models.Sale{ID: "s3", SalePrice: 4000, Profit: 400,
		Date: time.Date(2024, 3, 15, 14, 30, 0, 0, timeutil.Location)})

	today, err := e.reports.TodaySales()
	require.NoError(t, err)
	assert.Equal(t, float64(6000), today)

	profit, err := e.reports.TodayProfit()
	require.NoError(t, err)
	assert.Equal(t, float64(600), profit)
}

func TestMonthlySalesCalendarMonth(t *testing.T) {
	e := newEnv(t, nil)
	seedSale(t, e, models.Sale{ID: "s1", SalePrice: 1000, Profit: 100,
		Date: time.Date(2024, 2, 29, 12, 0, 0, 0, timeutil.Location)})
	seedSale(t, e, models.Sale{ID: "s2", SalePrice: 2000, Profit: 200,
		Date: time.Date(2024, 3, 1, 0, 0, 1, 0, timeutil.Location)})
	seedSale(t, e, models.Sale{ID: "s3", SalePrice: 4000, Profit: 400,
		Date: time.Date(2023, 3, 15, 12, 0, 0, 0, timeutil.Location)})

	monthly, err := e.reports.MonthlySales()
	require.NoError(t, err)
	assert.Equal(t, float64(2000), monthly)

	profit, err := e.reports.MonthlyProfit()
	require.NoError(t, err)
	assert.Equal(t, float64(200), profit)
}

func TestTodayPurchases(t *testing.T) {
	e := newEnv(t, nil)
	require.NoError(t, e.purchases.Add(models.Purchase{ID: "pu1", Quantity: 2, PurchasePrice: 30000,
		Date: time.Date(2024, 3, 15, 10, 0, 0, 0, timeutil.Location)}))
	require.NoError(t, e.purchases.Add(models.Purchase{ID: "pu2", Quantity: 5, PurchasePrice: 100,
		Date: time.Date(2024, 3, 14, 10, 0, 0, 0, timeutil.Location)}))

	total, err := e.reports.TodayPurchases()
	require.NoError(t, err)
	assert.Equal(t, float64(60000), total)
}

func TestLowStockCountsBelowThreshold(t *testing.T) {
	e := newEnv(t, nil)
	seedProduct(t, e, models.Product{ID: "p1", Name: "A", Quantity: 4, Status: models.StatusInStock})
	seedProduct(t, e, models.Product{ID: "p2", Name: "B", Quantity: 5, Status: models.StatusInStock})
	seedProduct(t, e, models.Product{ID: "p3", Name: "C", Quantity: 0, Status: models.StatusSold})

	count, err := e.reports.LowStockCount()
	require.NoError(t, err)
	// Threshold is exclusive (quantity < 5) and sold products don't count
	assert.Equal(t, 1, count)

	items, err := e.reports.LowStockItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestDashboardStats(t *testing.T) {
	e := newEnv(t, nil)
	seedProduct(t, e, models.Product{ID: "p1", Name: "A", SalePrice: 35000, Quantity: 2, Status: models.StatusInStock})
	seedProduct(t, e, models.Product{ID: "p2", Name: "B", SalePrice: 300, Quantity: 3, Status: models.StatusInStock})
	seedProduct(t, e, models.Product{ID: "p3", Name: "C", SalePrice: 90000, Quantity: 0, Status: models.StatusSold})
	seedSale(t, e, models.Sale{ID: "s1", SalePrice: 34000, Profit: 4000,
		Date: time.Date(2024, 3, 15, 10, 0, 0, 0, timeutil.Location)})
	seedSale(t, e, models.Sale{ID: "s2", SalePrice: 28000, Profit: 3000,
		Date: time.Date(2024, 3, 2, 10, 0, 0, 0, timeutil.Location)})

	stats, err := e.reports.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, float64(70900), stats.TotalInventoryValue)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, float64(34000), stats.TodaySales)
	assert.Equal(t, float64(4000), stats.TodayProfit)
	assert.Equal(t, float64(62000), stats.MonthlySales)
	assert.Equal(t, float64(7000), stats.MonthlyProfit)
}

func TestSalesSummaryAllTime(t *testing.T) {
	e := newEnv(t, nil)
	seedSale(t, e, models.Sale{ID: "s1", SalePrice: 34000, Profit: 4000,
		Date: time.Date(2022, 1, 1, 10, 0, 0, 0, timeutil.Location)})
	seedSale(t, e, models.Sale{ID: "s2", SalePrice: 26000, Profit: 1000,
		Date: time.Date(2024, 3, 15, 10, 0, 0, 0, timeutil.Location)})

	summary, err := e.reports.SalesSummary()
	require.NoError(t, err)
	assert.Equal(t, float64(60000), summary.TotalSales)
	assert.Equal(t, float64(5000), summary.TotalProfit)
	assert.Equal(t, 2, summary.Transactions)
	assert.Equal(t, float64(30000), summary.AverageSale)
}

func TestPaymentMethodBreakdown(t *testing.T) {
	e := newEnv(t, nil)
	seedSale(t, e, models.Sale{ID: "s1", SalePrice: 100, PaymentMethod: models.PaymentCash, Date: e.now})
	seedSale(t, e, models.Sale{ID: "s2", SalePrice: 200, PaymentMethod: models.PaymentCash, Date: e.now})
	seedSale(t, e, models.Sale{ID: "s3", SalePrice: 400, PaymentMethod: models.PaymentInstallment, Date: e.now})

	stats, err := e.reports.PaymentMethodBreakdown()
	require.NoError(t, err)
	require.Len(t, stats, 4)
	assert.Equal(t, models.PaymentMethodStat{Method: models.PaymentCash, Count: 2, Total: 300}, stats[0])
	assert.Equal(t, models.PaymentMethodStat{Method: models.PaymentCard}, stats[1])
	assert.Equal(t, models.PaymentMethodStat{Method: models.PaymentInstallment, Count: 1, Total: 400}, stats[3])
}

func TestCategoryBreakdown(t *testing.T) {
	e := newEnv(t, nil)
	seedProduct(t, e, models.Product{ID: "p1", Category: models.CategoryMobile, Quantity: 1, Status: models.StatusInStock})
	seedProduct(t, e, models.Product{ID: "p2", Category: models.CategoryMobile, Quantity: 0, Status: models.StatusSold})
	seedProduct(t, e, models.Product{ID: "p3", Category: models.CategoryOther, Quantity: 2, Status: models.StatusInStock})

	stats, err := e.reports.CategoryBreakdown()
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, models.CategoryStat{Category: models.CategoryMobile, InStock: 1, Total: 2}, stats[0])
	assert.Equal(t, models.CategoryStat{Category: models.CategoryAccessory}, stats[1])
	assert.Equal(t, models.CategoryStat{Category: models.CategoryOther, InStock: 1, Total: 1}, stats[2])
}

func TestRecentSalesNewestFirst(t *testing.T) {
	e := newEnv(t, nil)
	seedSale(t, e, models.Sale{ID: "s1", InvoiceNumber: "INV-000001", Date: e.now})
	seedSale(t, e, models.Sale{ID: "s2", InvoiceNumber: "INV-000002", Date: e.now})
	seedSale(t, e, models.Sale{ID: "s3", InvoiceNumber: "INV-000003", Date: e.now})

	recent, err := e.reports.RecentSales(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "INV-000003", recent[0].InvoiceNumber)
	assert.Equal(t, "INV-000002", recent[1].InvoiceNumber)

	// Asking for more than exists returns everything
	all, err := e.reports.RecentSales(10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSearchProducts(t *testing.T) {
	e := newEnv(t, nil)
	seedProduct(t, e, models.Product{ID: "p1", Name: "Galaxy A14", Brand: "Samsung", IMEI: "356938035643809", Status: models.StatusInStock})
	seedProduct(t, e, models.Product{ID: "p2", Name: "Redmi 12", Brand: "Xiaomi", Status: models.StatusInStock})

	byName, err := e.reports.SearchProducts("galaxy")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)

	byBrand, err := e.reports.SearchProducts("xiaomi")
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, "p2", byBrand[0].ID)

	byIMEI, err := e.reports.SearchProducts("35693803")
	require.NoError(t, err)
	require.Len(t, byIMEI, 1)

	all, err := e.reports.SearchProducts("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
