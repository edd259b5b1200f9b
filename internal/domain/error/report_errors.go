// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidPage is returned when the page number is below 1.
	ErrInvalidPage = errors.New("invalid page number")

	// ErrInvalidPageSize is returned when the page size is not one of the
	// supported values.
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrInvalidSortField is returned when the sort field is not supported.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSortOrder is returned when the sort order is not asc or desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrInvalidMonth is returned when the month is outside 1-12.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDateRange is returned when the range end precedes its start.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidAmountRange is returned when maxAmount is below minAmount.
	ErrInvalidAmountRange = errors.New("invalid amount range")

	// ErrInvalidReportType is returned when the type filter is not a
	// transaction type.
	ErrInvalidReportType = errors.New("invalid report type")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeInvalidPage        ReportErrorCode = "RPT-010001"
	ErrCodeInvalidPageSize    ReportErrorCode = "RPT-010002"
	ErrCodeInvalidSortField   ReportErrorCode = "RPT-010003"
	ErrCodeInvalidSortOrder   ReportErrorCode = "RPT-010004"
	ErrCodeInvalidMonth       ReportErrorCode = "RPT-010005"
	ErrCodeInvalidDateRange   ReportErrorCode = "RPT-010006"
	ErrCodeInvalidAmountRange ReportErrorCode = "RPT-010007"
	ErrCodeInvalidReportType  ReportErrorCode = "RPT-010008"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
