// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist or does
	// not belong to the caller.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrParentCategoryNotFound is returned when the referenced parent
	// category does not exist or does not belong to the caller.
	ErrParentCategoryNotFound = errors.New("parent category not found")

	// ErrCategoryNameExists is returned when a non-deleted category with the
	// same name already exists for the same user and type.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrInvalidCategoryName is returned when the category name is empty or
	// exceeds the maximum length after trimming.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrParentTypeMismatch is returned when the parent category has a
	// different type than the category being created.
	ErrParentTypeMismatch = errors.New("parent category must be of the same type")

	// ErrCategoryDepthExceeded is returned when creating a category would
	// exceed the maximum tree depth.
	ErrCategoryDepthExceeded = errors.New("category tree depth exceeded")

	// ErrCategoryFieldImmutable is returned when an update attempts to change
	// the type, owner or parent of a category.
	ErrCategoryFieldImmutable = errors.New("category field is immutable")

	// ErrInvalidColorFormat is returned when the category color format is invalid.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidMonthlyBudget is returned when the monthly budget is negative
	// or above the configured ceiling.
	ErrInvalidMonthlyBudget = errors.New("invalid monthly budget")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the class and YYYY the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryName   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidColorFormat    CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidMonthlyBudget  CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010005"
	ErrCodeParentNotFound        CategoryErrorCode = "CAT-010006"
	// Conflict errors (02XXXX)
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-020001"
	ErrCodeParentTypeMismatch    CategoryErrorCode = "CAT-020002"
	ErrCodeCategoryDepthExceeded CategoryErrorCode = "CAT-020003"
	ErrCodeCategoryImmutable     CategoryErrorCode = "CAT-020004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
