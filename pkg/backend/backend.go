// Package backend declares the transport seam of the library: the five
// operations the domain model needs from the MoneyMoney application, expressed
// over raw, untyped records. The live AppleScript transport and the in-memory
// test double both satisfy this contract.
package backend

import (
	"context"
	"time"
)

// Raw is an untyped key/value record as returned by a transport, before
// normalization. Consumers must not read Raw directly; it is the input of the
// normalizer only.
type Raw map[string]any

// Backend is the capability the domain entities depend on. Implementations
// may block for the duration of an external automation round-trip; they must
// honor the context and apply a bounded timeout rather than hang.
type Backend interface {
	// Accounts returns the raw records of all accounts, including account
	// groups and portfolio accounts.
	Accounts(ctx context.Context) ([]Raw, error)

	// Transactions returns the raw transaction records of one account whose
	// date falls within [from, to]. A zero to leaves the range open-ended.
	// Ordering is not part of the contract.
	Transactions(ctx context.Context, accountNumber string, from, to time.Time) ([]Raw, error)

	// Positions returns the raw portfolio position records of one account.
	Positions(ctx context.Context, accountNumber string) ([]Raw, error)

	// Categories returns the raw records of the category tree.
	Categories(ctx context.Context) ([]Raw, error)

	// SetTransactionField persists a new value for one mutable field of one
	// transaction. It fails with ErrUnknownTransaction for an unknown id and
	// ErrUnknownField for a field the transport cannot write.
	SetTransactionField(ctx context.Context, transactionID, field, value string) error
}

// Wire values for the checkmark field.
const (
	CheckmarkOn  = "on"
	CheckmarkOff = "off"
)

// Writable fields understood by the transports.
const (
	FieldCheckmark = "checkmark"
	FieldComment   = "comment"
)
