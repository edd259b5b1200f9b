// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// SummarySide holds the aggregate for one transaction type within a scope.
type SummarySide struct {
	Total   decimal.Decimal
	Count   int64
	Average decimal.Decimal
}

// Summary represents aggregated income/expense totals over some scope
// (a month, or an arbitrary filter). NetAmount is always
// Income.Total - Expenses.Total.
type Summary struct {
	Income    SummarySide
	Expenses  SummarySide
	NetAmount decimal.Decimal
}

// NewSummary builds a Summary from raw totals, deriving averages and the
// net amount in the decimal domain.
func NewSummary(incomeTotal decimal.Decimal, incomeCount int64, expenseTotal decimal.Decimal, expenseCount int64) Summary {
	s := Summary{
		Income:   SummarySide{Total: incomeTotal, Count: incomeCount, Average: decimal.Zero},
		Expenses: SummarySide{Total: expenseTotal, Count: expenseCount, Average: decimal.Zero},
	}
	if incomeCount > 0 {
		s.Income.Average = incomeTotal.Div(decimal.NewFromInt(incomeCount)).Round(2)
	}
	if expenseCount > 0 {
		s.Expenses.Average = expenseTotal.Div(decimal.NewFromInt(expenseCount)).Round(2)
	}
	s.NetAmount = incomeTotal.Sub(expenseTotal)
	return s
}

// CategoryBreakdownEntry is one (category, type) group in a breakdown,
// ordered by Total descending.
type CategoryBreakdownEntry struct {
	CategoryID    string
	CategoryName  string
	CategoryColor string
	CategoryIcon  string
	Type          TransactionType
	Total         decimal.Decimal
	Count         int64
	AvgAmount     decimal.Decimal
}
