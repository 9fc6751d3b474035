package model

import "time"

// FinancialSummary aggregates revenue, expenses and net profit for a date
// range. Revenue is summed from line items, so voided transactions are
// excluded automatically.
type FinancialSummary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalExpense float64 `json:"totalExpense"`
	NetProfit    float64 `json:"netProfit"`
}

// DailyRevenue is one point of the revenue trend.
type DailyRevenue struct {
	Day     time.Time `json:"day"`
	Revenue float64   `json:"revenue"`
}

// ProductSales is one row of the best-seller ranking.
type ProductSales struct {
	ProductName  string `json:"productName"`
	QuantitySold int    `json:"quantitySold"`
}

// ExpenseCategoryTotal is the total spent in one expense category.
type ExpenseCategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ProductMargin reports a product's price against its ingredient cost
// (HPP). The cost basis is the catalog state at query time, not at sale
// time.
type ProductMargin struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	CostOfGoods float64 `json:"costOfGoods"`
	Margin      float64 `json:"margin"`
}
