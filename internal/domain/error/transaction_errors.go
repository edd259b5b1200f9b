// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist or
	// does not belong to the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotFoundForTransaction is returned when the referenced
	// category does not exist, is deleted, or belongs to another user.
	// Cross-user references deliberately surface the same way as missing ones.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrTransactionTypeMismatch is returned when the caller supplies a type
	// that conflicts with the referenced category's type.
	ErrTransactionTypeMismatch = errors.New("transaction type does not match category type")

	// ErrInvalidTransactionAmount is returned when the amount is not strictly
	// positive or has more than two decimal places.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidDescription is returned when the description is empty or
	// exceeds the maximum length after trimming.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrInvalidTags is returned when there are too many tags or a tag
	// contains characters outside lowercase letters and hyphens.
	ErrInvalidTags = errors.New("invalid tags")

	// ErrDailyLimitReached is returned when the user already has the maximum
	// number of transactions on the target calendar date.
	ErrDailyLimitReached = errors.New("daily transaction limit reached")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the class and YYYY the specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidDescription       TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTags              TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	// Conflict errors (02XXXX)
	ErrCodeTypeMismatch             TransactionErrorCode = "TXN-020001"
	ErrCodeDailyLimitReached        TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
