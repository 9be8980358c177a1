package memory

import (
	"time"

	"github.com/google/uuid"

	"pfischer/moneymoney/pkg/backend"
)

// Builder assembles an in-memory backend through a fluent API, the usual way
// tests construct fixture state without a YAML file.
type Builder struct {
	b *Backend
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{b: New()}
}

// WithAccount adds a regular cash account.
func (bl *Builder) WithAccount(name, accountNumber string, balance float64, currency string) *Builder {
	bl.b.accounts = append(bl.b.accounts, backend.Raw{
		"name":          name,
		"accountNumber": accountNumber,
		"balance":       []any{[]any{balance, currency}},
		"currency":      currency,
		"portfolio":     false,
	})
	return bl
}

// WithPortfolio adds a portfolio account holding tradable positions.
func (bl *Builder) WithPortfolio(name, accountNumber string, balance float64, currency string) *Builder {
	bl.b.accounts = append(bl.b.accounts, backend.Raw{
		"name":          name,
		"accountNumber": accountNumber,
		"balance":       []any{[]any{balance, currency}},
		"currency":      currency,
		"portfolio":     true,
	})
	return bl
}

// WithGroup adds an account group record. Groups are containers, not real
// accounts, and the facade excludes them from both partitions.
func (bl *Builder) WithGroup(name string) *Builder {
	bl.b.accounts = append(bl.b.accounts, backend.Raw{
		"name":  name,
		"group": true,
	})
	return bl
}

// WithTransaction adds a raw transaction record to an account. A missing id
// is filled with a generated one. The raw accountNumber field is the
// counterparty identity and is never inferred; leave it absent for a
// transaction without a reported counterparty number.
func (bl *Builder) WithTransaction(accountNumber string, raw backend.Raw) *Builder {
	if _, ok := raw["id"]; !ok {
		raw["id"] = uuid.NewString()
	}
	bl.b.transactions[accountNumber] = append(bl.b.transactions[accountNumber], coerceDates(raw))
	return bl
}

// WithPosition adds a raw position record to a portfolio account.
func (bl *Builder) WithPosition(accountNumber string, raw backend.Raw) *Builder {
	bl.b.positions[accountNumber] = append(bl.b.positions[accountNumber], coerceDates(raw))
	return bl
}

// WithCategory adds a category record. parentID may be empty for roots.
func (bl *Builder) WithCategory(id, name, parentID string) *Builder {
	raw := backend.Raw{"id": id, "name": name}
	if parentID != "" {
		raw["parentId"] = parentID
	}
	bl.b.categories = append(bl.b.categories, raw)
	return bl
}

// Build returns the assembled backend.
func (bl *Builder) Build() *Backend {
	return bl.b
}

// Date is a fixture helper producing a date-only timestamp.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysAgo is a fixture helper producing a date the given number of days in
// the past.
func DaysAgo(days int) time.Time {
	now := time.Now().UTC()
	d := now.AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
