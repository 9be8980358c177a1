package backend

import (
	"errors"
	"fmt"
)

// Sentinel conditions reported by transports. The core never retries or
// reinterprets them; callers decide their own policy (integration suites
// typically treat ErrLocked as a skip).
var (
	// ErrLocked indicates the MoneyMoney database is locked and must be
	// unlocked in the application before automation calls can succeed.
	ErrLocked = errors.New("moneymoney database is locked")

	// ErrUnknownTransaction indicates a write addressed a transaction id the
	// transport does not know.
	ErrUnknownTransaction = errors.New("unknown transaction id")

	// ErrUnknownField indicates a write addressed a field the transport
	// cannot mutate.
	ErrUnknownField = errors.New("unknown or immutable transaction field")
)

// ScriptError reports a failed automation round-trip against the external
// application.
type ScriptError struct {
	Op     string // the operation being performed, e.g. "export accounts"
	Stderr string // diagnostic output of the scripting host, if any
	Err    error
}

func (e *ScriptError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("applescript %s: %v: %s", e.Op, e.Err, e.Stderr)
	}
	return fmt.Sprintf("applescript %s: %v", e.Op, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
