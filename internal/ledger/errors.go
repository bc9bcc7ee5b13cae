package ledger

import "errors"

// Domain errors. All are recoverable user-input failures: validation runs
// before any mutation, so a failed operation leaves ledger state untouched.
var (
	ErrInvalidType                = errors.New("invalid transaction type, must be D or W")
	ErrInvalidAmount              = errors.New("invalid amount, must be a number")
	ErrNonPositiveAmount          = errors.New("amount must be greater than zero")
	ErrFirstTransactionWithdrawal = errors.New("first transaction cannot be a withdrawal")
	ErrInsufficientFunds          = errors.New("insufficient funds")
	ErrAccountNotFound            = errors.New("account not found")
)
