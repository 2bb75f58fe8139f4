package models

// DashboardStats holds the aggregates shown on the dashboard
type DashboardStats struct {
	TotalInventoryValue float64 `json:"totalInventoryValue"`
	TodaySales          float64 `json:"todaySales"`
	TodayProfit         float64 `json:"todayProfit"`
	TotalProducts       int     `json:"totalProducts"`
	LowStockItems       int     `json:"lowStockItems"`
	MonthlySales        float64 `json:"monthlySales"`
	MonthlyProfit       float64 `json:"monthlyProfit"`
}

// SalesSummary holds the all-time figures for the reports view
type SalesSummary struct {
	TotalSales   float64 `json:"totalSales"`
	TotalProfit  float64 `json:"totalProfit"`
	Transactions int     `json:"transactions"`
	AverageSale  float64 `json:"averageSale"`
}

// InventorySummary counts products by status
type InventorySummary struct {
	TotalProducts  int     `json:"totalProducts"`
	InStock        int     `json:"inStock"`
	Sold           int     `json:"sold"`
	InventoryValue float64 `json:"inventoryValue"`
}

// PaymentMethodStat is the per-method sales breakdown
type PaymentMethodStat struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// CategoryStat is the per-category stock breakdown
type CategoryStat struct {
	Category string `json:"category"`
	InStock  int    `json:"inStock"`
	Total    int    `json:"total"`
}
