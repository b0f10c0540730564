package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates rejected input (empty name, malformed amount).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the friend id does not exist in the ledger.
	ErrNotFound = errors.New("friend not found")

	// ErrInvalidState indicates the operation is not allowed right now,
	// e.g. settling a bill with a friend who is not selected.
	ErrInvalidState = errors.New("invalid state")

	// ErrNoPendingOperation indicates there is no delete awaiting confirmation.
	ErrNoPendingOperation = errors.New("no pending operation")

	// ErrIncomplete indicates a split form missing the bill or own share.
	// It wraps ErrValidation.
	ErrIncomplete = fmt.Errorf("%w: bill and own share are required", ErrValidation)
)
