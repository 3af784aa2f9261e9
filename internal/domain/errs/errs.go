package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a business error: it carries a stable code, a human title and
// message, the HTTP status it maps to, and an optional field-error map.
// Anything that is not an *Error is treated as an infrastructure fault and
// wrapped into ErrInternal at the boundary.
type Error struct {
	Code    string            `json:"code"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Status  int               `json:"-"`
	Fields  map[string]string `json:"errors,omitempty"`
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

// Is matches by code so catalog entries work with errors.Is even after
// wrapping with fmt.Errorf("%w", ...).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrUnauthorized = &Error{
		Code:    "UNAUTHORIZED_LOAN_APPLICATION",
		Title:   "Unauthorized Loan Application",
		Message: "You can only apply for a loan on your own behalf.",
		Status:  http.StatusForbidden,
		Fields:  map[string]string{"dni": "The document number does not match the authenticated user."},
	}
	ErrLoanNotFound = &Error{
		Code:    "LOAN_NOT_FOUND",
		Title:   "Loan Not Found",
		Message: "The specified loan does not exist in the system.",
		Status:  http.StatusNotFound,
		Fields:  map[string]string{"loan": "The loan you requested could not be found."},
	}
	ErrLoanTypeNotFound = &Error{
		Code:    "LOAN_TYPE_NOT_FOUND",
		Title:   "Loan Type Not Found",
		Message: "The requested loan type could not be found.",
		Status:  http.StatusNotFound,
		Fields:  map[string]string{"loanType": "The loan type you provided does not exist in the system."},
	}
	ErrLoanStatusNotFound = &Error{
		Code:    "LOAN_STATUS_NOT_FOUND",
		Title:   "Loan Status Not Found",
		Message: "The requested loan status does not exist in the system.",
		Status:  http.StatusNotFound,
		Fields:  map[string]string{"status": "The provided loan status is invalid or missing."},
	}
	ErrAmountOutOfRange = &Error{
		Code:    "LOAN_AMOUNT_OUT_OF_RANGE",
		Title:   "Loan Amount Out of Range",
		Message: "The requested loan amount is not within the allowed range for the selected loan type.",
		Status:  http.StatusBadRequest,
		Fields:  map[string]string{"amount": "The loan amount must be between the minimum and maximum allowed for this loan type."},
	}
	ErrInvalidPage = &Error{
		Code:    "INVALID_PAGE",
		Title:   "Invalid Page Index",
		Message: "The page index must be zero or greater.",
		Status:  http.StatusBadRequest,
		Fields:  map[string]string{"page": "Page index must be >= 0."},
	}
	ErrInvalidPageSize = &Error{
		Code:    "INVALID_PAGE_SIZE",
		Title:   "Invalid Page Size",
		Message: "The page size must be at least one.",
		Status:  http.StatusBadRequest,
		Fields:  map[string]string{"size": "Page size must be >= 1."},
	}
	ErrInvalidTerm = &Error{
		Code:    "INVALID_LOAN_TERM",
		Title:   "Invalid Loan Term",
		Message: "The loan term must be a positive number of months.",
		Status:  http.StatusBadRequest,
		Fields:  map[string]string{"loanTerm": "Term must be a positive integer."},
	}
	ErrLoanDataIncomplete = &Error{
		Code:    "LOAN_DATA_INCOMPLETE",
		Title:   "Loan Data Incomplete",
		Message: "The loan record is missing the amount or interest rate required for calculation.",
		Status:  http.StatusInternalServerError,
	}
	ErrInternal = &Error{
		Code:    "INTERNAL_SERVER_ERROR",
		Title:   "Internal Server Error",
		Message: "Something went wrong on our side. Please try again later.",
		Status:  http.StatusInternalServerError,
		Fields:  map[string]string{"server": "Unexpected error occurred while processing the request."},
	}
)

// Wrap turns an arbitrary failure into the generic internal error while
// keeping the cause in the chain. Business errors pass through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

// AsBusiness extracts the business error from err, or returns ErrInternal.
func AsBusiness(err error) *Error {
	var be *Error
	if errors.As(err, &be) {
		return be
	}
	return ErrInternal
}
