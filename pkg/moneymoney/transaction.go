package moneymoney

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pfischer/moneymoney/internal/comment"
	"pfischer/moneymoney/internal/models"
	"pfischer/moneymoney/pkg/backend"
)

// Transaction is a typed view over one normalized transaction record. All
// attributes are read-only projections except the checkmark and the comment,
// which are written through the backend; the local copy is updated only after
// the backend write succeeds.
type Transaction struct {
	account *Account
	record  models.Record
}

func newTransaction(a *Account, rec models.Record) *Transaction {
	return &Transaction{account: a, record: rec}
}

// ID returns the transaction identifier as a string. The live transport uses
// numeric ids; both representations stringify the same way.
func (t *Transaction) ID() string {
	v, _, _ := t.record.Get(models.AttrID)
	return fmt.Sprint(v)
}

// Account returns the owning account.
func (t *Transaction) Account() *Account {
	return t.account
}

// Amount returns the transaction amount.
func (t *Transaction) Amount() decimal.Decimal {
	d, _, _ := t.record.Decimal(models.AttrAmount)
	return d
}

// Currency returns the currency code of the amount.
func (t *Transaction) Currency() string {
	return t.str(models.AttrCurrency)
}

// Name returns the counterparty name.
func (t *Transaction) Name() string {
	return t.str(models.AttrName)
}

// Payee returns the counterparty account number when reported, falling back
// to the counterparty name.
func (t *Transaction) Payee() string {
	if n, ok, _ := t.record.String(models.AttrAccountNumber); ok && n != "" {
		return n
	}
	return t.Name()
}

// Booked reports whether the transaction is booked rather than pending.
func (t *Transaction) Booked() bool {
	b, _, _ := t.record.Bool(models.AttrBooked)
	return b
}

// Checkmark reports the user-visible checked marker.
func (t *Transaction) Checkmark() bool {
	b, _, _ := t.record.Bool(models.AttrCheckmark)
	return b
}

// Category returns the assigned category name; ok is false when the
// transaction is uncategorized.
func (t *Transaction) Category() (string, bool) {
	c, ok, _ := t.record.String(models.AttrCategory)
	return c, ok
}

// Comment returns the raw annotated comment text. Tags returns its decoded
// tag view.
func (t *Transaction) Comment() string {
	return t.str(models.AttrComment)
}

// BookingDate returns the booking date; ok is false when the backend reported
// no date (sentinel values are normalized away).
func (t *Transaction) BookingDate() (time.Time, bool) {
	d, ok, _ := t.record.Date(models.AttrBookingDate)
	return d, ok
}

// ValueDate returns the value date; ok is false when absent.
func (t *Transaction) ValueDate() (time.Time, bool) {
	d, ok, _ := t.record.Date(models.AttrValueDate)
	return d, ok
}

// BankCode returns the counterparty bank code.
func (t *Transaction) BankCode() string { return t.str("bankCode") }

// CreditorID returns the SEPA creditor identifier.
func (t *Transaction) CreditorID() string { return t.str("creditorId") }

// MandateReference returns the SEPA mandate reference.
func (t *Transaction) MandateReference() string { return t.str("mandateReference") }

// EndToEndReference returns the SEPA end-to-end reference.
func (t *Transaction) EndToEndReference() string { return t.str("endToEndReference") }

// Purpose returns the payment purpose text.
func (t *Transaction) Purpose() string { return t.str("purpose") }

// BookingText returns the bank's booking text.
func (t *Transaction) BookingText() string { return t.str("bookingText") }

// Attr gives access to any declared transaction attribute by name.
func (t *Transaction) Attr(name string) (any, bool, error) {
	return t.record.Get(name)
}

func (t *Transaction) str(name string) string {
	s, _, _ := t.record.String(name)
	return s
}

// PassFilter reports whether the transaction matches every supplied criterion
// of the query. Nil criteria are not checked; a query without criteria
// matches everything. This is the single predicate behind all transaction
// queries.
func (t *Transaction) PassFilter(q Query) bool {
	if q.Booked != nil && t.Booked() != *q.Booked {
		return false
	}
	if q.Checked != nil && t.Checkmark() != *q.Checked {
		return false
	}
	if q.Category != nil {
		c, ok := t.Category()
		if !ok || c != *q.Category {
			return false
		}
	}
	return true
}

// Tags returns the tag set decoded from the comment, sorted. The comment is
// the single source of truth; tags are parsed on demand.
func (t *Transaction) Tags() []string {
	return comment.Parse(t.Comment()).Tags()
}

// HasTag reports whether the comment carries the given tag.
func (t *Transaction) HasTag(tag string) bool {
	return comment.Parse(t.Comment()).Has(tag)
}

// SetCheckmark sets the checked marker. Setting the current value is a no-op
// that issues no backend call.
func (t *Transaction) SetCheckmark(ctx context.Context, value bool) error {
	if t.Checkmark() == value {
		return nil
	}
	wire := backend.CheckmarkOff
	if value {
		wire = backend.CheckmarkOn
	}
	return t.write(ctx, models.AttrCheckmark, wire, value)
}

// AddTags adds the given tags to the comment. Tags already present are
// no-ops; the comment is written back only when the set actually changed.
func (t *Transaction) AddTags(ctx context.Context, tags ...string) error {
	c := comment.Parse(t.Comment())
	for _, tag := range tags {
		c.Add(tag)
	}
	return t.writeComment(ctx, c)
}

// RemoveTags removes the given tags from the comment, writing it back only
// when the set actually changed.
func (t *Transaction) RemoveTags(ctx context.Context, tags ...string) error {
	c := comment.Parse(t.Comment())
	for _, tag := range tags {
		c.Remove(tag)
	}
	return t.writeComment(ctx, c)
}

func (t *Transaction) writeComment(ctx context.Context, c *comment.Comment) error {
	if !c.Changed() {
		return nil
	}
	rendered := c.Render()
	return t.write(ctx, models.AttrComment, rendered, rendered)
}

// SetField is the general mutation primitive. It rejects the identifier field
// and any field outside the declared mutable set; the checkmark takes its
// wire form ("on"/"off").
func (t *Transaction) SetField(ctx context.Context, name, value string) error {
	schema := t.record.Schema()
	if schema.ReadOnly.Has(name) {
		return fmt.Errorf("transaction field %q: %w", name, ErrReadOnlyField)
	}
	if !schema.Mutable.Has(name) {
		return fmt.Errorf("transaction field %q: %w", name, ErrFieldNotMutable)
	}
	var local any = value
	if name == models.AttrCheckmark {
		local = value == backend.CheckmarkOn
	}
	return t.write(ctx, name, value, local)
}

// write persists the field through the backend, then updates the local copy.
// The order matters: the local record must never show unconfirmed state.
func (t *Transaction) write(ctx context.Context, name, wire string, local any) error {
	if err := t.account.client.backend.SetTransactionField(ctx, t.ID(), name, wire); err != nil {
		return err
	}
	return t.record.Set(name, local)
}
