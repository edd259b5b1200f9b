// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/centsible/backend/internal/application/usecase/report"
	"github.com/centsible/backend/internal/domain/entity"
	"github.com/centsible/backend/internal/integration/entrypoint/dto"
	"github.com/centsible/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	monthlySummaryUseCase *report.MonthlySummaryUseCase
	cachedSummaryUseCase  *report.CachedSummaryUseCase
	breakdownUseCase      *report.CategoryBreakdownUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlySummaryUseCase *report.MonthlySummaryUseCase,
	cachedSummaryUseCase *report.CachedSummaryUseCase,
	breakdownUseCase *report.CategoryBreakdownUseCase,
) *ReportController {
	return &ReportController{
		monthlySummaryUseCase: monthlySummaryUseCase,
		cachedSummaryUseCase:  cachedSummaryUseCase,
		breakdownUseCase:      breakdownUseCase,
	}
}

// MonthlySummary handles GET /reports/summary requests. It always computes
// from the authoritative store.
func (c *ReportController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month, ok := parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.monthlySummaryUseCase.Execute(ctx.Request.Context(), report.MonthlySummaryInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// CachedSummary handles GET /reports/summary/cached requests, serving the
// incrementally maintained projection.
func (c *ReportController) CachedSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month, ok := parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.cachedSummaryUseCase.Execute(ctx.Request.Context(), report.CachedSummaryInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCachedSummaryResponse(output))
}

// CategoryBreakdown handles GET /reports/breakdown requests.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.CategoryBreakdownInput{
		UserID: userID,
	}
	if startStr := ctx.Query("start_date"); startStr != "" {
		startDate, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date parameter",
			})
			return
		}
		input.StartDate = &startDate
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		endDate, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date parameter",
			})
			return
		}
		input.EndDate = &endDate
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		transactionType := entity.TransactionType(typeStr)
		input.Type = &transactionType
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Entries))
}

// parseYearMonth reads the year and month query parameters, defaulting to the
// current month when both are absent.
func parseYearMonth(ctx *gin.Context) (int, int, bool) {
	yearStr := ctx.Query("year")
	monthStr := ctx.Query("month")
	if yearStr == "" && monthStr == "" {
		now := time.Now().UTC()
		return now.Year(), int(now.Month()), true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
		})
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month parameter",
		})
		return 0, 0, false
	}
	return year, month, true
}
