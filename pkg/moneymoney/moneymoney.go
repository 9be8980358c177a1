// Package moneymoney is the consumer-facing surface of the library. A Client
// loads a one-shot snapshot of accounts and categories from a Backend and
// exposes typed, queryable domain entities over it: cash accounts with
// transactions, portfolio accounts with positions, and the category tree.
//
// Every producing method returns a lazy, restartable sequence: constructing
// it does no work, ranging over it issues exactly one backend call, and
// ranging again re-issues it. Nothing is cached beyond the initial snapshot;
// callers needing fresh account data construct a new Client.
package moneymoney

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"pfischer/moneymoney/internal/applescript"
	"pfischer/moneymoney/internal/logging"
	"pfischer/moneymoney/internal/models"
	"pfischer/moneymoney/internal/normalize"
	"pfischer/moneymoney/pkg/backend"
)

// DefaultAgeDays is the look-back window applied when a query specifies
// neither an age nor a start date.
const DefaultAgeDays = 90

// Mutation errors returned by Transaction.SetField.
var (
	// ErrReadOnlyField rejects a write to a field that identifies the
	// transaction.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrFieldNotMutable rejects a write to a field outside the declared
	// mutable set.
	ErrFieldNotMutable = errors.New("field is not mutable")
)

// Client is the top-level entry point. It owns the backend and the account
// and category snapshot taken at construction.
type Client struct {
	backend        backend.Backend
	log            logging.Logger
	defaultAgeDays int

	accounts      []*Account
	rawCategories []backend.Raw
}

// Option configures a Client.
type Option func(*Client)

// WithBackend replaces the default live AppleScript transport, typically with
// the in-memory backend in tests.
func WithBackend(b backend.Backend) Option {
	return func(c *Client) { c.backend = b }
}

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDefaultAge overrides the default transaction look-back window in days.
func WithDefaultAge(days int) Option {
	return func(c *Client) {
		if days > 0 {
			c.defaultAgeDays = days
		}
	}
}

// New constructs a Client and immediately loads the account and category
// snapshot from the backend. The snapshot is read-only afterwards and never
// refreshed automatically.
//
// Account groups are container nodes, not real accounts; they are excluded
// from the snapshot before the regular/portfolio split.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	c := &Client{
		log:            logging.Default(),
		defaultAgeDays: DefaultAgeDays,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.backend == nil {
		c.backend = applescript.New(applescript.WithLogger(c.log))
	}

	raws, err := c.backend.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	for _, raw := range raws {
		if group, ok := raw[models.AttrGroup].(bool); ok && group {
			continue
		}
		c.accounts = append(c.accounts, newAccount(c, normalize.Record(raw, models.AccountSchema)))
	}

	c.rawCategories, err = c.backend.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	c.log.Debug("loaded snapshot",
		logging.Field{Key: logging.FieldCount, Value: len(c.accounts)})
	return c, nil
}

// Accounts yields the regular (non-portfolio) accounts in snapshot order.
func (c *Client) Accounts() iter.Seq[*Account] {
	return c.partition(false)
}

// Portfolios yields the portfolio accounts in snapshot order.
func (c *Client) Portfolios() iter.Seq[*Account] {
	return c.partition(true)
}

func (c *Client) partition(portfolio bool) iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range c.accounts {
			if a.portfolio != portfolio {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Account returns the regular account with the exact given name, or nil when
// no such account exists.
func (c *Client) Account(name string) *Account {
	return find(c.Accounts(), name)
}

// Portfolio returns the portfolio account with the exact given name, or nil
// when no such account exists.
func (c *Client) Portfolio(name string) *Account {
	return find(c.Portfolios(), name)
}

func find(accounts iter.Seq[*Account], name string) *Account {
	for a := range accounts {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Transactions aggregates Account.Transactions across every regular account,
// flattening the per-account sequences into one. Accounts are visited in
// snapshot order; per-account order is preserved.
func (c *Client) Transactions(ctx context.Context, q Query) iter.Seq2[*Transaction, error] {
	return func(yield func(*Transaction, error) bool) {
		for a := range c.Accounts() {
			for tx, err := range a.Transactions(ctx, q) {
				if !yield(tx, err) {
					return
				}
				if err != nil {
					return
				}
			}
		}
	}
}

// Categories yields the categories of the snapshot. The raw snapshot is
// re-wrapped on every call; no backend call is made.
func (c *Client) Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, raw := range c.rawCategories {
			cat := Category{record: normalize.Record(raw, models.CategorySchema)}
			if !yield(cat) {
				return
			}
		}
	}
}
