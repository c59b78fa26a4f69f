package ledger

import "errors"

// Sentinel errors returned by ledger operations. The HTTP layer maps each to
// a distinct response category with errors.Is; the ledger itself never logs
// or wraps them.
var (
	// ErrAccountNotFound means the referenced account number does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds means a withdrawal would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount means a non-positive amount reached the ledger.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrAccountAlreadyExists means account creation collided with an
	// existing account number.
	ErrAccountAlreadyExists = errors.New("account already exists")
)
