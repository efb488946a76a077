package model

// AnalyticsSummary aggregates shop-wide totals for the admin dashboard.
// Revenue counts confirmed orders only.
type AnalyticsSummary struct {
	TotalOrders     int     `json:"totalOrders"`
	ConfirmedOrders int     `json:"confirmedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalProducts   int     `json:"totalProducts"`
}

// MonthlyAnalytics reports confirmed orders for a single calendar month.
type MonthlyAnalytics struct {
	Orders       []Order `json:"orders"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
}
