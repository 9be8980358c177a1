package moneymoney

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfischer/moneymoney/internal/models"
)

func TestPortfolioExclusivity(t *testing.T) {
	cb := counting(fixtureBackend())
	c := newTestClient(t, cb)
	ctx := context.Background()

	t.Run("PortfolioAccountHasNoTransactions", func(t *testing.T) {
		portfolio := c.Portfolio("Comdirect")
		require.NotNil(t, portfolio)

		txs := collect2(t, portfolio.Transactions(ctx, Query{}))
		assert.Empty(t, txs)
		assert.Zero(t, cb.calls["transactions"], "no backend call for a portfolio account")

		var positions []*Position
		for p, err := range portfolio.Positions(ctx) {
			require.NoError(t, err)
			positions = append(positions, p)
		}
		assert.Len(t, positions, 2)
	})

	t.Run("RegularAccountHasNoPositions", func(t *testing.T) {
		account := c.Account("Postbank")
		require.NotNil(t, account)

		before := cb.calls["positions"]
		for range account.Positions(ctx) {
			t.Fatal("regular account must yield no positions")
		}
		assert.Equal(t, before, cb.calls["positions"], "no backend call for a regular account")

		assert.NotEmpty(t, collect2(t, account.Transactions(ctx, Query{})))
	})
}

func TestTransactionsAreRestartable(t *testing.T) {
	cb := counting(fixtureBackend())
	c := newTestClient(t, cb)
	account := c.Account("Postbank")
	ctx := context.Background()

	seq := account.Transactions(ctx, Query{})
	assert.Zero(t, cb.calls["transactions"], "constructing the sequence must not call the backend")

	first := collect2(t, seq)
	assert.Equal(t, 1, cb.calls["transactions"])

	second := collect2(t, seq)
	assert.Equal(t, 2, cb.calls["transactions"], "each range re-issues the backend request")
	assert.Len(t, second, len(first))
}

func TestTransactionsEarlyStop(t *testing.T) {
	c := newTestClient(t, fixtureBackend())

	var seen int
	for _, err := range c.Account("Postbank").Transactions(context.Background(), Query{}) {
		require.NoError(t, err)
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestTransactionsDateWindow(t *testing.T) {
	cb := counting(fixtureBackend())
	c := newTestClient(t, cb)
	account := c.Account("Postbank")
	ctx := context.Background()

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	collect2(t, account.Transactions(ctx, Query{StartDate: start, EndDate: end}))

	assert.Equal(t, start, cb.lastFrom)
	assert.Equal(t, end, cb.lastTo)
}

func TestPositionAccessors(t *testing.T) {
	c := newTestClient(t, fixtureBackend())
	portfolio := c.Portfolio("Comdirect")

	var apple *Position
	for p, err := range portfolio.Positions(context.Background()) {
		require.NoError(t, err)
		if p.Name() == "Apple Inc." {
			apple = p
		}
	}
	require.NotNil(t, apple)

	assert.Equal(t, "US0378331005", apple.ISIN())
	assert.Equal(t, "NASDAQ", apple.Market())
	assert.Equal(t, "share", apple.Type())
	assert.Equal(t, "150", apple.Price().String())
	assert.Equal(t, "140", apple.PurchasePrice().String())
	assert.Equal(t, "10", apple.Quantity().String())
	assert.Equal(t, "1500", apple.Amount().String())
	assert.Equal(t, "USD", apple.PriceCurrency())
	assert.Equal(t, "USD", apple.AmountCurrency())
	assert.Equal(t, "100", apple.AbsoluteProfit().String())
	assert.Equal(t, "Comdirect", apple.Account().Name())

	_, hasTradeDate := apple.TradeDate()
	assert.False(t, hasTradeDate)
}

func TestAccountAttr(t *testing.T) {
	c := newTestClient(t, fixtureBackend())
	account := c.Account("Postbank")

	currency, ok, err := account.Attr(models.AttrCurrency)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "EUR", currency)

	_, _, err = account.Attr("refreshTimestamp")
	var attrErr *models.AttributeError
	assert.ErrorAs(t, err, &attrErr, "ignored fields are outside the declared schema")
}
