// Package ledger orchestrates multi-record mutations across funds and
// donations. Every operation runs inside a single database transaction and
// either commits with the fund's derived aggregate consistent with its
// donations, or rolls back leaving the store untouched.
package ledger

import "errors"

// Error taxonomy surfaced by ledger operations. Handlers branch on these with
// errors.Is; the wrapping message carries the human-readable cause.
var (
	// ErrValidation means the input was malformed, e.g. a non-positive amount.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means the record is missing or not owned by the caller.
	// Ownership failures use the same error so record existence never leaks.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means the fund was no longer eligible at transaction time,
	// either unverified or already fully funded.
	ErrConflict = errors.New("fund not eligible")

	// ErrConnection means the store was unreachable or the operation was cut
	// short by the caller's context; either way the transaction rolled back.
	ErrConnection = errors.New("database unreachable")

	// ErrIntegrity means the store rejected the write with a constraint violation.
	ErrIntegrity = errors.New("constraint violation")
)
