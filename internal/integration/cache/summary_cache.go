// Package cache implements cache-backed adapters on Redis.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
)

const summaryTTL = 24 * time.Hour

// applyScript increments the projection hash only when the month is already
// seeded. Incrementing an absent key would create a partial projection that
// never equals a full recomputation.
var applyScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("HINCRBY", KEYS[1], "income_cents", ARGV[1])
redis.call("HINCRBY", KEYS[1], "income_count", ARGV[2])
redis.call("HINCRBY", KEYS[1], "expense_cents", ARGV[3])
redis.call("HINCRBY", KEYS[1], "expense_count", ARGV[4])
redis.call("EXPIRE", KEYS[1], ARGV[5])
return 1
`)

// summaryCache implements adapter.SummaryCache on a Redis hash per
// (user, month). Amounts are stored as integer cents so HINCRBY stays exact.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

func summaryKey(userID uuid.UUID, yearMonth string) string {
	return fmt.Sprintf("summary:%s:%s", userID, yearMonth)
}

// Apply applies the delta to the month's projection if present.
func (c *summaryCache) Apply(ctx context.Context, userID uuid.UUID, yearMonth string, delta adapter.SummaryDelta) error {
	if delta.IsZero() {
		return nil
	}
	err := applyScript.Run(ctx, c.client, []string{summaryKey(userID, yearMonth)},
		delta.IncomeCents, delta.IncomeCount, delta.ExpenseCents, delta.ExpenseCount,
		int(summaryTTL.Seconds()),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to apply summary delta: %w", err)
	}
	return nil
}

// Get returns the month's projection and whether it was present.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, yearMonth string) (*adapter.CachedSummary, bool, error) {
	fields, err := c.client.HGetAll(ctx, summaryKey(userID, yearMonth)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read summary: %w", err)
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	incomeCents, err := parseField(fields, "income_cents")
	if err != nil {
		return nil, false, err
	}
	incomeCount, err := parseField(fields, "income_count")
	if err != nil {
		return nil, false, err
	}
	expenseCents, err := parseField(fields, "expense_cents")
	if err != nil {
		return nil, false, err
	}
	expenseCount, err := parseField(fields, "expense_count")
	if err != nil {
		return nil, false, err
	}

	income := decimal.New(incomeCents, -2)
	expenses := decimal.New(expenseCents, -2)
	return &adapter.CachedSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		IncomeCount:   incomeCount,
		ExpenseCount:  expenseCount,
		NetAmount:     income.Sub(expenses),
	}, true, nil
}

// Seed stores a freshly recomputed projection for the month.
func (c *summaryCache) Seed(ctx context.Context, userID uuid.UUID, yearMonth string, totals adapter.TransactionTotals) error {
	key := summaryKey(userID, yearMonth)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key,
		"income_cents", totals.IncomeTotal.Mul(decimal.NewFromInt(100)).IntPart(),
		"income_count", totals.IncomeCount,
		"expense_cents", totals.ExpenseTotal.Mul(decimal.NewFromInt(100)).IntPart(),
		"expense_count", totals.ExpenseCount,
	)
	pipe.Expire(ctx, key, summaryTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed summary: %w", err)
	}
	return nil
}

// Invalidate drops the month's projection.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID, yearMonth string) error {
	if err := c.client.Del(ctx, summaryKey(userID, yearMonth)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary: %w", err)
	}
	return nil
}

func parseField(fields map[string]string, name string) (int64, error) {
	value, err := strconv.ParseInt(fields[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt summary field %q: %w", name, err)
	}
	return value, nil
}
