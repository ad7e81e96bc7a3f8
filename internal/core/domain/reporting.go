package domain

import "github.com/shopspring/decimal"

// Dashboard summarises net worth and the current month's cash flow.
type Dashboard struct {
	NetWorth          decimal.Decimal
	TotalAssets       decimal.Decimal
	TotalLiabilities  decimal.Decimal
	IncomeThisMonth   decimal.Decimal
	ExpensesThisMonth decimal.Decimal
	SavingsThisMonth  decimal.Decimal
	SavingsRate       float64
}

// CategorySpend is the total and count of expense-like transactions in one category.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// MonthlyTotals holds income and expense sums for one "YYYY-MM" month.
type MonthlyTotals struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CashflowPoint is one month in the cash-flow series.
type CashflowPoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Savings decimal.Decimal
}
