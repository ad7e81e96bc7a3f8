package dto

import (
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse represents the finance dashboard summary
type DashboardResponse struct {
	NetWorth          decimal.Decimal `json:"net_worth"`
	TotalAssets       decimal.Decimal `json:"total_assets"`
	TotalLiabilities  decimal.Decimal `json:"total_liabilities"`
	IncomeThisMonth   decimal.Decimal `json:"income_this_month"`
	ExpensesThisMonth decimal.Decimal `json:"expenses_this_month"`
	SavingsThisMonth  decimal.Decimal `json:"savings_this_month"`
	SavingsRate       float64         `json:"savings_rate"`
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		NetWorth:          d.NetWorth,
		TotalAssets:       d.TotalAssets,
		TotalLiabilities:  d.TotalLiabilities,
		IncomeThisMonth:   d.IncomeThisMonth,
		ExpensesThisMonth: d.ExpensesThisMonth,
		SavingsThisMonth:  d.SavingsThisMonth,
		SavingsRate:       d.SavingsRate,
	}
}

// CategorySpendParams defines query parameters for the category spend report
type CategorySpendParams struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// CategorySpendResponse represents one category row of the spend report
type CategorySpendResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

func ToListCategorySpendResponse(rows []domain.CategorySpend) []CategorySpendResponse {
	res := make([]CategorySpendResponse, len(rows))
	for i, r := range rows {
		res[i] = CategorySpendResponse{Category: r.Category, Total: r.Total, Count: r.Count}
	}
	return res
}

// CashflowParams defines query parameters for the cash-flow series
type CashflowParams struct {
	LastNMonths *int `form:"last_n_months"`
}

// CashflowPointResponse represents one month of the cash-flow series
type CashflowPointResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

func ToListCashflowResponse(points []domain.CashflowPoint) []CashflowPointResponse {
	res := make([]CashflowPointResponse, len(points))
	for i, p := range points {
		res[i] = CashflowPointResponse{Month: p.Month, Income: p.Income, Expense: p.Expense, Savings: p.Savings}
	}
	return res
}
