// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/usecase/report"
	"github.com/centsible/backend/internal/domain/entity"
)

// MonthlySummaryResponse represents the summary of one calendar month.
type MonthlySummaryResponse struct {
	YearMonth string          `json:"year_month"`
	Summary   SummaryResponse `json:"summary"`
}

// CachedSummaryResponse represents the projection read for one month.
type CachedSummaryResponse struct {
	YearMonth     string          `json:"year_month"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	IncomeCount   int64           `json:"income_count"`
	ExpenseCount  int64           `json:"expense_count"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

// CategoryBreakdownEntryResponse represents one (category, type) group in a
// breakdown.
type CategoryBreakdownEntryResponse struct {
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	CategoryIcon  string          `json:"category_icon"`
	Type          string          `json:"type"`
	Total         decimal.Decimal `json:"total"`
	Count         int64           `json:"count"`
	AvgAmount     decimal.Decimal `json:"avg_amount"`
}

// CategoryBreakdownResponse represents the full breakdown, ordered by total
// descending.
type CategoryBreakdownResponse struct {
	Breakdown []CategoryBreakdownEntryResponse `json:"breakdown"`
}

// ToMonthlySummaryResponse converts a monthly summary output to its DTO.
func ToMonthlySummaryResponse(output *report.MonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		YearMonth: output.YearMonth,
		Summary:   ToSummaryResponse(output.Summary),
	}
}

// ToCachedSummaryResponse converts a cached summary output to its DTO.
func ToCachedSummaryResponse(output *report.CachedSummaryOutput) CachedSummaryResponse {
	return CachedSummaryResponse{
		YearMonth:     output.YearMonth,
		TotalIncome:   output.TotalIncome,
		TotalExpenses: output.TotalExpenses,
		IncomeCount:   output.IncomeCount,
		ExpenseCount:  output.ExpenseCount,
		NetAmount:     output.NetAmount,
	}
}

// ToCategoryBreakdownResponse converts breakdown entries to their DTO.
func ToCategoryBreakdownResponse(entries []entity.CategoryBreakdownEntry) CategoryBreakdownResponse {
	breakdown := make([]CategoryBreakdownEntryResponse, len(entries))
	for i, entry := range entries {
		breakdown[i] = CategoryBreakdownEntryResponse{
			CategoryID:    entry.CategoryID,
			CategoryName:  entry.CategoryName,
			CategoryColor: entry.CategoryColor,
			CategoryIcon:  entry.CategoryIcon,
			Type:          string(entry.Type),
			Total:         entry.Total,
			Count:         entry.Count,
			AvgAmount:     entry.AvgAmount,
		}
	}
	return CategoryBreakdownResponse{
		Breakdown: breakdown,
	}
}
