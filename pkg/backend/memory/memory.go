// Package memory provides a deterministic in-memory Backend driven by fixture
// data. It answers date-range queries by filtering an in-memory list and
// applies field writes by mutating the matching record in place, which makes
// it the reference double for tests of code built on the library.
package memory

import (
	"context"
	"fmt"
	"time"

	"pfischer/moneymoney/pkg/backend"
)

// Backend is an in-memory implementation of backend.Backend. It is not safe
// for concurrent use; the library's model is single-threaded.
type Backend struct {
	accounts     []backend.Raw
	transactions map[string][]backend.Raw
	positions    map[string][]backend.Raw
	categories   []backend.Raw
}

// New returns an empty in-memory backend. Use the Builder or Load to fill it.
func New() *Backend {
	return &Backend{
		transactions: make(map[string][]backend.Raw),
		positions:    make(map[string][]backend.Raw),
	}
}

// Accounts returns all fixture account records.
func (b *Backend) Accounts(_ context.Context) ([]backend.Raw, error) {
	return b.accounts, nil
}

// Transactions returns the account's fixture transactions whose date falls
// within [from, to]. A zero to leaves the range open-ended.
func (b *Backend) Transactions(_ context.Context, accountNumber string, from, to time.Time) ([]backend.Raw, error) {
	var matching []backend.Raw
	for _, raw := range b.transactions[accountNumber] {
		d, ok := recordDate(raw)
		if !ok {
			continue
		}
		if d.Before(from) {
			continue
		}
		if !to.IsZero() && d.After(to) {
			continue
		}
		matching = append(matching, raw)
	}
	return matching, nil
}

// Positions returns the account's fixture position records.
func (b *Backend) Positions(_ context.Context, accountNumber string) ([]backend.Raw, error) {
	return b.positions[accountNumber], nil
}

// Categories returns all fixture category records.
func (b *Backend) Categories(_ context.Context) ([]backend.Raw, error) {
	return b.categories, nil
}

// SetTransactionField mutates the matching fixture record in place, mirroring
// the write semantics of the live transport.
func (b *Backend) SetTransactionField(_ context.Context, transactionID, field, value string) error {
	for _, txs := range b.transactions {
		for _, raw := range txs {
			if fmt.Sprint(raw["id"]) != transactionID {
				continue
			}
			switch field {
			case backend.FieldCheckmark:
				raw["checkmark"] = value == backend.CheckmarkOn
			case backend.FieldComment:
				raw["comment"] = value
			default:
				return fmt.Errorf("field %q: %w", field, backend.ErrUnknownField)
			}
			return nil
		}
	}
	return fmt.Errorf("transaction %q: %w", transactionID, backend.ErrUnknownTransaction)
}

// recordDate resolves the date of a raw transaction from bookingDate, falling
// back to valueDate. Date fields are always time values here; string fixture
// dates are coerced when records enter the backend.
func recordDate(raw backend.Raw) (time.Time, bool) {
	for _, key := range []string{"bookingDate", "valueDate"} {
		if v, ok := raw[key].(time.Time); ok {
			return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// coerceDates converts ISO-string date fields to time values. YAML fixtures
// carry dates as quoted strings while the live transport delivers times; the
// rest of the library must only ever see the time form, or a fixture date
// would slip past normalization as a string.
func coerceDates(raw backend.Raw) backend.Raw {
	for _, key := range []string{"bookingDate", "valueDate", "tradeTimestamp"} {
		if s, ok := raw[key].(string); ok {
			if d, err := time.Parse("2006-01-02", s); err == nil {
				raw[key] = d
			}
		}
	}
	return raw
}
