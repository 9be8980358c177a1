// Package applescript implements the live backend: it drives the MoneyMoney
// application through the osascript automation bridge and decodes the plist
// payloads the app exports. Every call is a blocking automation round-trip
// bounded by a timeout; failures surface as backend errors and are never
// retried here.
package applescript

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"howett.net/plist"

	"pfischer/moneymoney/internal/logging"
	"pfischer/moneymoney/pkg/backend"
)

const (
	defaultBinary  = "/usr/bin/osascript"
	defaultTimeout = 60 * time.Second
)

// lockedMarker is the fragment MoneyMoney prints when the database is locked.
const lockedMarker = "Locked database"

// runFunc executes a script and returns its stdout, stderr and error. It is a
// seam for tests; production use goes through osascript.
type runFunc func(ctx context.Context, script string) (stdout []byte, stderr string, err error)

// Backend drives the MoneyMoney application via AppleScript.
type Backend struct {
	binary  string
	timeout time.Duration
	log     logging.Logger
	run     runFunc
}

// Option configures a Backend.
type Option func(*Backend)

// WithBinary overrides the osascript binary path.
func WithBinary(path string) Option {
	return func(b *Backend) { b.binary = path }
}

// WithTimeout bounds the duration of a single automation round-trip.
func WithTimeout(d time.Duration) Option {
	return func(b *Backend) { b.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a live MoneyMoney backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		binary:  defaultBinary,
		timeout: defaultTimeout,
		log:     logging.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.run == nil {
		b.run = b.osascript
	}
	return b
}

// Accounts exports all accounts, including groups and portfolios.
func (b *Backend) Accounts(ctx context.Context) ([]backend.Raw, error) {
	out, err := b.invoke(ctx, "export accounts", accountsScript())
	if err != nil {
		return nil, err
	}
	var raws []backend.Raw
	if _, err := plist.Unmarshal(out, &raws); err != nil {
		return nil, &backend.ScriptError{Op: "export accounts", Err: err}
	}
	return raws, nil
}

// Transactions exports one account's transactions within [from, to]. The app
// itself applies the date window; only rows inside it come back.
func (b *Backend) Transactions(ctx context.Context, accountNumber string, from, to time.Time) ([]backend.Raw, error) {
	out, err := b.invoke(ctx, "export transactions", transactionsScript(accountNumber, from, to))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Transactions []backend.Raw `plist:"transactions"`
	}
	if _, err := plist.Unmarshal(out, &payload); err != nil {
		return nil, &backend.ScriptError{Op: "export transactions", Err: err}
	}
	return payload.Transactions, nil
}

// Positions exports one portfolio account's holdings.
func (b *Backend) Positions(ctx context.Context, accountNumber string) ([]backend.Raw, error) {
	out, err := b.invoke(ctx, "export portfolio", positionsScript(accountNumber))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Portfolio []backend.Raw `plist:"portfolio"`
	}
	if _, err := plist.Unmarshal(out, &payload); err != nil {
		return nil, &backend.ScriptError{Op: "export portfolio", Err: err}
	}
	return payload.Portfolio, nil
}

// Categories exports the category tree.
func (b *Backend) Categories(ctx context.Context) ([]backend.Raw, error) {
	out, err := b.invoke(ctx, "export categories", categoriesScript())
	if err != nil {
		return nil, err
	}
	var raws []backend.Raw
	if _, err := plist.Unmarshal(out, &raws); err != nil {
		return nil, &backend.ScriptError{Op: "export categories", Err: err}
	}
	return raws, nil
}

// SetTransactionField writes one mutable field of one transaction. Fields the
// app cannot write are rejected before any automation call.
func (b *Backend) SetTransactionField(ctx context.Context, transactionID, field, value string) error {
	if field != backend.FieldCheckmark && field != backend.FieldComment {
		return &backend.ScriptError{Op: "set transaction", Err: backend.ErrUnknownField}
	}
	_, err := b.invoke(ctx, "set transaction", setFieldScript(transactionID, field, value))
	return err
}

// invoke runs a script and classifies failures into the backend error
// taxonomy.
func (b *Backend) invoke(ctx context.Context, op, script string) ([]byte, error) {
	b.log.Debug("running applescript", logging.Field{Key: logging.FieldOperation, Value: op})
	out, stderr, err := b.run(ctx, script)
	if err != nil {
		if strings.Contains(stderr, lockedMarker) {
			return nil, &backend.ScriptError{Op: op, Stderr: stderr, Err: backend.ErrLocked}
		}
		return nil, &backend.ScriptError{Op: op, Stderr: stderr, Err: err}
	}
	return out, nil
}

// osascript pipes the script to the scripting host on stdin, the same way the
// app's documentation drives it, bounded by the configured timeout.
func (b *Backend) osascript(ctx context.Context, script string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, b.binary, "-")
	cmd.Stdin = strings.NewReader(script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, stderr.String(), ctx.Err()
		}
		return nil, stderr.String(), err
	}
	return stdout.Bytes(), stderr.String(), nil
}
