package moneymoney

import (
	"context"
	"iter"
	"time"

	"pfischer/moneymoney/internal/models"
	"pfischer/moneymoney/internal/normalize"
)

// Account is a typed view over one normalized account record. Accounts are
// immutable after construction; the balance is the value reported at snapshot
// time, not a live figure.
type Account struct {
	client *Client
	record models.Record

	name          string
	accountNumber string
	portfolio     bool
	balance       models.Money
}

func newAccount(c *Client, rec models.Record) *Account {
	a := &Account{client: c, record: rec}
	a.name, _, _ = rec.String(models.AttrName)
	a.accountNumber, _, _ = rec.String(models.AttrAccountNumber)
	a.portfolio, _, _ = rec.Bool(models.AttrPortfolio)
	if v, ok, _ := rec.Get(models.AttrBalance); ok {
		a.balance, _ = normalize.Balance(v)
	}
	return a
}

// Name returns the display name of the account.
func (a *Account) Name() string {
	return a.name
}

// AccountNumber returns the stable external identity of the account. It is
// the join key for transaction and position requests.
func (a *Account) AccountNumber() string {
	return a.accountNumber
}

// IsPortfolio reports whether the account holds tradable positions rather
// than cash transactions.
func (a *Account) IsPortfolio() bool {
	return a.portfolio
}

// Balance returns the balance reported at snapshot time.
func (a *Account) Balance() models.Money {
	return a.balance
}

// Attr gives access to any declared account attribute by name. A name
// outside the schema yields an *models.AttributeError; a declared but absent
// attribute reports ok=false.
func (a *Account) Attr(name string) (any, bool, error) {
	return a.record.Get(name)
}

// Transactions yields the account's transactions within the query window that
// pass the query's filters. The sequence is lazy and restartable: each range
// issues one fresh backend request. A portfolio account always yields an
// empty sequence.
func (a *Account) Transactions(ctx context.Context, q Query) iter.Seq2[*Transaction, error] {
	return func(yield func(*Transaction, error) bool) {
		if a.portfolio {
			return
		}
		start := q.start(a.client.defaultAgeDays, time.Now())
		raws, err := a.client.backend.Transactions(ctx, a.accountNumber, start, q.EndDate)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, raw := range raws {
			tx := newTransaction(a, normalize.Record(raw, models.TransactionSchema))
			if !tx.PassFilter(q) {
				continue
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// Positions yields the account's portfolio holdings. A non-portfolio account
// always yields an empty sequence. Like Transactions, each range re-issues
// the backend request.
func (a *Account) Positions(ctx context.Context) iter.Seq2[*Position, error] {
	return func(yield func(*Position, error) bool) {
		if !a.portfolio {
			return
		}
		raws, err := a.client.backend.Positions(ctx, a.accountNumber)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, raw := range raws {
			p := &Position{account: a, record: normalize.Record(raw, models.PositionSchema)}
			if !yield(p, nil) {
				return
			}
		}
	}
}
