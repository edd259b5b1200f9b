// Package report contains read-side aggregation use cases.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
	"github.com/centsible/backend/internal/integration/cache"
)

// monthlyTotalsRepo serves per-month totals from a map and counts store reads.
type monthlyTotalsRepo struct {
	adapter.TransactionRepository
	totals      map[string]adapter.TransactionTotals
	storeReads  int
	breakdownFn func(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time, transactionType *entity.TransactionType) ([]entity.CategoryBreakdownEntry, error)
}

func (r *monthlyTotalsRepo) GetMonthlyTotals(_ context.Context, _ uuid.UUID, yearMonth string) (*adapter.TransactionTotals, error) {
	r.storeReads++
	totals := r.totals[yearMonth]
	return &totals, nil
}

func (r *monthlyTotalsRepo) GetCategoryBreakdown(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time, transactionType *entity.TransactionType) ([]entity.CategoryBreakdownEntry, error) {
	return r.breakdownFn(ctx, userID, startDate, endDate, transactionType)
}

// failingSummaryCache errors on every read.
type failingSummaryCache struct {
	adapter.SummaryCache
	seeded bool
}

func (c *failingSummaryCache) Get(context.Context, uuid.UUID, string) (*adapter.CachedSummary, bool, error) {
	return nil, false, errors.New("redis down")
}

func (c *failingSummaryCache) Seed(context.Context, uuid.UUID, string, adapter.TransactionTotals) error {
	c.seeded = true
	return nil
}

func newRedisSummaryCache(t *testing.T) adapter.SummaryCache {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewSummaryCache(client)
}

func TestMonthlySummaryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := &monthlyTotalsRepo{totals: map[string]adapter.TransactionTotals{
		"2025-03": {
			IncomeTotal:  decimal.NewFromInt(3000),
			IncomeCount:  1,
			ExpenseTotal: decimal.NewFromFloat(450.25),
			ExpenseCount: 9,
		},
	}}
	useCase := NewMonthlySummaryUseCase(repo)

	t.Run("computes the summary of one month", func(t *testing.T) {
		output, err := useCase.Execute(ctx, MonthlySummaryInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.YearMonth != "2025-03" {
			t.Errorf("expected yearMonth 2025-03, got %q", output.YearMonth)
		}
		if !output.Summary.NetAmount.Equal(decimal.NewFromFloat(2549.75)) {
			t.Errorf("expected net 2549.75, got %s", output.Summary.NetAmount)
		}
		if !output.Summary.Expenses.Average.Equal(decimal.NewFromFloat(50.03)) {
			t.Errorf("expected expense average 50.03, got %s", output.Summary.Expenses.Average)
		}
	})

	t.Run("an empty month yields zeros", func(t *testing.T) {
		output, err := useCase.Execute(ctx, MonthlySummaryInput{UserID: userID, Year: 2030, Month: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Summary.NetAmount.IsZero() || output.Summary.Income.Count != 0 {
			t.Error("expected an all-zero summary")
		}
	})

	t.Run("rejects an invalid month", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			if _, err := useCase.Execute(ctx, MonthlySummaryInput{UserID: userID, Year: 2025, Month: month}); !errors.Is(err, domainerror.ErrInvalidMonth) {
				t.Errorf("expected ErrInvalidMonth for %d, got %v", month, err)
			}
		}
	})
}

func TestCachedSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("a miss recomputes and seeds the projection", func(t *testing.T) {
		repo := &monthlyTotalsRepo{totals: map[string]adapter.TransactionTotals{
			"2025-03": {IncomeTotal: decimal.NewFromInt(100), IncomeCount: 1, ExpenseTotal: decimal.NewFromFloat(40.50), ExpenseCount: 2},
		}}
		useCase := NewCachedSummaryUseCase(repo, newRedisSummaryCache(t))

		first, err := useCase.Execute(ctx, CachedSummaryInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.NetAmount.Equal(decimal.NewFromFloat(59.50)) {
			t.Errorf("expected net 59.50, got %s", first.NetAmount)
		}
		if repo.storeReads != 1 {
			t.Fatalf("expected 1 store read, got %d", repo.storeReads)
		}

		// The second read is served from the projection.
		second, err := useCase.Execute(ctx, CachedSummaryInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.storeReads != 1 {
			t.Errorf("expected the projection to serve the second read, store reads = %d", repo.storeReads)
		}
		if !second.TotalIncome.Equal(first.TotalIncome) || !second.NetAmount.Equal(first.NetAmount) {
			t.Error("expected the cached read to match the recomputed one")
		}
	})

	t.Run("incremental deltas keep the projection equal to a recompute", func(t *testing.T) {
		repo := &monthlyTotalsRepo{totals: map[string]adapter.TransactionTotals{
			"2025-03": {IncomeTotal: decimal.NewFromInt(3000), IncomeCount: 1, ExpenseTotal: decimal.NewFromFloat(110.50), ExpenseCount: 3},
		}}
		summaryCache := newRedisSummaryCache(t)
		useCase := NewCachedSummaryUseCase(repo, summaryCache)

		// Seed through the miss path.
		if _, err := useCase.Execute(ctx, CachedSummaryInput{UserID: userID, Year: 2025, Month: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// A new 25.50 expense lands: the store and the projection each take
		// their half of the write path.
		repo.totals["2025-03"] = adapter.TransactionTotals{
			IncomeTotal: decimal.NewFromInt(3000), IncomeCount: 1,
			ExpenseTotal: decimal.NewFromInt(136), ExpenseCount: 4,
		}
		if err := summaryCache.Apply(ctx, userID, "2025-03", adapter.SummaryDelta{ExpenseCents: 2550, ExpenseCount: 1}); err != nil {
			t.Fatalf("failed to apply delta: %v", err)
		}

		cached, err := useCase.Execute(ctx, CachedSummaryInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		recomputed, err := NewMonthlySummaryUseCase(repo).Execute(ctx, MonthlySummaryInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cached.TotalExpenses.Equal(recomputed.Summary.Expenses.Total) {
			t.Errorf("projection expenses %s != recomputed %s", cached.TotalExpenses, recomputed.Summary.Expenses.Total)
		}
		if cached.ExpenseCount != recomputed.Summary.Expenses.Count {
			t.Errorf("projection count %d != recomputed %d", cached.ExpenseCount, recomputed.Summary.Expenses.Count)
		}
		if !cached.NetAmount.Equal(recomputed.Summary.NetAmount) {
			t.Errorf("projection net %s != recomputed %s", cached.NetAmount, recomputed.Summary.NetAmount)
		}
	})

	t.Run("a cache outage degrades to the store", func(t *testing.T) {
		repo := &monthlyTotalsRepo{totals: map[string]adapter.TransactionTotals{
			"2025-03": {IncomeTotal: decimal.NewFromInt(10), IncomeCount: 1},
		}}
		failing := &failingSummaryCache{}
		useCase := NewCachedSummaryUseCase(repo, failing)

		output, err := useCase.Execute(ctx, CachedSummaryInput{UserID: userID, Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalIncome.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected the store value, got %s", output.TotalIncome)
		}
		if repo.storeReads != 1 {
			t.Errorf("expected a store read, got %d", repo.storeReads)
		}
	})

	t.Run("rejects an invalid month", func(t *testing.T) {
		useCase := NewCachedSummaryUseCase(&monthlyTotalsRepo{}, newRedisSummaryCache(t))
		if _, err := useCase.Execute(ctx, CachedSummaryInput{UserID: userID, Year: 2025, Month: 0}); !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth, got %v", err)
		}
	})
}

func TestCategoryBreakdownUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("passes filters through and returns entries", func(t *testing.T) {
		entries := []entity.CategoryBreakdownEntry{
			{CategoryName: "Transport", Total: decimal.NewFromInt(120), Count: 1},
			{CategoryName: "Food", Total: decimal.NewFromInt(75), Count: 2},
		}
		repo := &monthlyTotalsRepo{breakdownFn: func(_ context.Context, _ uuid.UUID, startDate, _ *time.Time, _ *entity.TransactionType) ([]entity.CategoryBreakdownEntry, error) {
			if startDate == nil {
				t.Error("expected the start date to be forwarded")
			}
			return entries, nil
		}}
		useCase := NewCategoryBreakdownUseCase(repo)
		start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

		output, err := useCase.Execute(ctx, CategoryBreakdownInput{UserID: userID, StartDate: &start})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 2 || output.Entries[0].CategoryName != "Transport" {
			t.Error("expected the repository entries in order")
		}
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		useCase := NewCategoryBreakdownUseCase(&monthlyTotalsRepo{})
		start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)

		if _, err := useCase.Execute(ctx, CategoryBreakdownInput{UserID: userID, StartDate: &start, EndDate: &end}); !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("rejects an invalid type filter", func(t *testing.T) {
		useCase := NewCategoryBreakdownUseCase(&monthlyTotalsRepo{})
		bad := entity.TransactionType("transfer")

		if _, err := useCase.Execute(ctx, CategoryBreakdownInput{UserID: userID, Type: &bad}); !errors.Is(err, domainerror.ErrInvalidReportType) {
			t.Errorf("expected ErrInvalidReportType, got %v", err)
		}
	})
}
