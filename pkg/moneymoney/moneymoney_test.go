package moneymoney

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfischer/moneymoney/pkg/backend"
	"pfischer/moneymoney/pkg/backend/memory"
)

// countingBackend wraps another backend and counts calls per operation.
type countingBackend struct {
	backend.Backend
	calls    map[string]int
	lastFrom time.Time
	lastTo   time.Time
}

func counting(b backend.Backend) *countingBackend {
	return &countingBackend{Backend: b, calls: make(map[string]int)}
}

func (c *countingBackend) Transactions(ctx context.Context, accountNumber string, from, to time.Time) ([]backend.Raw, error) {
	c.calls["transactions"]++
	c.lastFrom, c.lastTo = from, to
	return c.Backend.Transactions(ctx, accountNumber, from, to)
}

func (c *countingBackend) Positions(ctx context.Context, accountNumber string) ([]backend.Raw, error) {
	c.calls["positions"]++
	return c.Backend.Positions(ctx, accountNumber)
}

func (c *countingBackend) SetTransactionField(ctx context.Context, transactionID, field, value string) error {
	c.calls["set"]++
	return c.Backend.SetTransactionField(ctx, transactionID, field, value)
}

// failingBackend rejects every write.
type failingBackend struct {
	backend.Backend
	err error
}

func (f *failingBackend) SetTransactionField(context.Context, string, string, string) error {
	return f.err
}

func fixtureBackend() *memory.Backend {
	return memory.NewBuilder().
		WithGroup("Alle Konten").
		WithAccount("Postbank", "DE02100100100006820101", 2262.81, "EUR").
		WithPortfolio("Comdirect", "DE02200411330015514437", 5000, "EUR").
		WithTransaction("DE02100100100006820101", backend.Raw{
			"id":          "tx1",
			"name":        "ACME Corp",
			"amount":      2500.0,
			"currency":    "EUR",
			"booked":      true,
			"checkmark":   false,
			"category":    "Income",
			"comment":     "Monthly salary <tag:salary>",
			"bookingDate": memory.DaysAgo(3),
		}).
		WithTransaction("DE02100100100006820101", backend.Raw{
			"id":          "tx2",
			"name":        "Grocery Store",
			"amount":      -42.5,
			"currency":    "EUR",
			"booked":      true,
			"checkmark":   false,
			"category":    "Food",
			"comment":     "",
			"bookingDate": memory.DaysAgo(5),
		}).
		WithTransaction("DE02100100100006820101", backend.Raw{
			"id":          "tx3",
			"name":        "Pending Card Payment",
			"amount":      -10.0,
			"currency":    "EUR",
			"booked":      false,
			"checkmark":   false,
			"bookingDate": memory.DaysAgo(1),
		}).
		WithPosition("DE02200411330015514437", backend.Raw{
			"name":             "Apple Inc.",
			"isin":             "US0378331005",
			"market":           "NASDAQ",
			"type":             "share",
			"price":            150.0,
			"purchasePrice":    140.0,
			"quantity":         10.0,
			"amount":           1500.0,
			"currencyOfPrice":  "USD",
			"currencyOfAmount": "USD",
			"absoluteProfit":   100.0,
			"relativeProfit":   7.14,
		}).
		WithPosition("DE02200411330015514437", backend.Raw{
			"name": "Microsoft Corp.",
			"isin": "US5949181045",
		}).
		WithCategory("1", "Income", "").
		WithCategory("2", "Expenses", "").
		WithCategory("3", "Food", "2").
		Build()
}

func newTestClient(t *testing.T, b backend.Backend) *Client {
	t.Helper()
	c, err := New(context.Background(), WithBackend(b))
	require.NoError(t, err)
	return c
}

func collect[T any](seq func(func(T) bool)) []T {
	var out []T
	seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func collect2(t *testing.T, seq func(func(*Transaction, error) bool)) []*Transaction {
	t.Helper()
	var out []*Transaction
	seq(func(tx *Transaction, err error) bool {
		require.NoError(t, err)
		out = append(out, tx)
		return true
	})
	return out
}

func TestAccountPartition(t *testing.T) {
	c := newTestClient(t, fixtureBackend())

	accounts := collect(c.Accounts())
	require.Len(t, accounts, 1)
	assert.Equal(t, "Postbank", accounts[0].Name())
	assert.Equal(t, "DE02100100100006820101", accounts[0].AccountNumber())
	assert.False(t, accounts[0].IsPortfolio())
	assert.Equal(t, "2262.81 EUR", accounts[0].Balance().String())

	portfolios := collect(c.Portfolios())
	require.Len(t, portfolios, 1)
	assert.Equal(t, "Comdirect", portfolios[0].Name())
	assert.True(t, portfolios[0].IsPortfolio())
}

func TestGroupsAreExcluded(t *testing.T) {
	c := newTestClient(t, fixtureBackend())

	for _, a := range collect(c.Accounts()) {
		assert.NotEqual(t, "Alle Konten", a.Name())
	}
	for _, a := range collect(c.Portfolios()) {
		assert.NotEqual(t, "Alle Konten", a.Name())
	}
}

func TestAccountLookup(t *testing.T) {
	c := newTestClient(t, fixtureBackend())

	require.NotNil(t, c.Account("Postbank"))
	assert.Nil(t, c.Account("Comdirect"), "portfolios are not found via Account")
	assert.Nil(t, c.Account("Sparkasse"), "absent account is nil, not an error")

	require.NotNil(t, c.Portfolio("Comdirect"))
	assert.Nil(t, c.Portfolio("Postbank"))
}

func TestClientTransactionsAggregates(t *testing.T) {
	c := newTestClient(t, fixtureBackend())

	txs := collect2(t, c.Transactions(context.Background(), Query{}))
	assert.Len(t, txs, 3)
	for _, tx := range txs {
		assert.Equal(t, "Postbank", tx.Account().Name())
	}
}

func TestCategories(t *testing.T) {
	c := newTestClient(t, fixtureBackend())

	categories := collect(c.Categories())
	require.Len(t, categories, 3)
	assert.Equal(t, "Income", categories[0].Name())

	_, isRoot := categories[0].ParentID()
	assert.False(t, isRoot)

	parent, ok := categories[2].ParentID()
	assert.True(t, ok)
	assert.Equal(t, "2", parent)

	// Categories re-wraps the cached snapshot on every call.
	again := collect(c.Categories())
	assert.Len(t, again, 3)
}

func TestNewPropagatesBackendFailure(t *testing.T) {
	errBackend := &stubErrBackend{err: backend.ErrLocked}
	_, err := New(context.Background(), WithBackend(errBackend))
	assert.ErrorIs(t, err, backend.ErrLocked)
}

type stubErrBackend struct {
	backend.Backend
	err error
}

func (s *stubErrBackend) Accounts(context.Context) ([]backend.Raw, error) {
	return nil, s.err
}

func TestWithDefaultAge(t *testing.T) {
	cb := counting(fixtureBackend())
	c, err := New(context.Background(), WithBackend(cb), WithDefaultAge(30))
	require.NoError(t, err)

	for range c.Transactions(context.Background(), Query{}) {
	}

	want := time.Now().UTC().AddDate(0, 0, -30)
	assert.Equal(t, want.Format("2006-01-02"), cb.lastFrom.Format("2006-01-02"))
	assert.True(t, cb.lastTo.IsZero())
}

func TestQueryStart(t *testing.T) {
	now := time.Date(2020, 6, 15, 13, 37, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		q        Query
		expected time.Time
	}{
		{"DefaultAge", Query{}, time.Date(2020, 3, 17, 0, 0, 0, 0, time.UTC)},
		{"ExplicitAge", Query{AgeDays: 14}, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"StartDateWins", Query{AgeDays: 14, StartDate: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)},
			time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.q.start(DefaultAgeDays, now))
		})
	}
}
