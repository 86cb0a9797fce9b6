package ledger

import "errors"

// Errors returned by Account and Directory operations. All are recoverable:
// the operation is rejected and no state changes.
var (
	// ErrInvalidAmount is returned for a zero or negative amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance is returned when a debit exceeds the sender's balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrDuplicateAccount is returned when creating an account number already in use.
	ErrDuplicateAccount = errors.New("account number already exists")
	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = errors.New("account not found")
)
