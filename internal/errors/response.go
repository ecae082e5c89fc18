package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"bank-account-manager/internal/models"
	"bank-account-manager/internal/repositories"
	"bank-account-manager/internal/services"
)

// ErrorResponse is the operator-facing form of a failure
type ErrorResponse struct {
	Error ErrorDetail
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string
	Message string
	Details []string
	TraceID string
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code
// and the session trace ID. Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: []string{},
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details,
// sorted by field name
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// FromError maps an error from the core onto its code, with the error text as detail.
// Errors the core does not name go through WrapSystemError.
func FromError(err error, traceID string) *ErrorResponse {
	code, known := codeFor(err)
	if !known {
		response, _ := WrapSystemError(err, traceID)
		return response
	}

	return NewErrorResponse(code, traceID, WithDetails(err.Error()))
}

// WrapSystemError hides the cause behind a generic storage error response and
// returns the cause for logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

func codeFor(err error) (ErrorCode, bool) {
	switch {
	case stderrors.Is(err, models.ErrInvalidAmount):
		return TransactionInvalidAmount, true
	case stderrors.Is(err, services.ErrBelowMinimumBalance):
		return TransactionBelowMinimumBalance, true
	case stderrors.Is(err, models.ErrNegativeBalance):
		return TransactionNegativeBalance, true
	case stderrors.Is(err, models.ErrOverdraftLimitExceeded):
		return TransactionOverdraftLimitExceeded, true
	case stderrors.Is(err, models.ErrUnknownTransactionType):
		return TransactionInvalidType, true
	case stderrors.Is(err, repositories.ErrTransactionIDExists):
		return TransactionDuplicate, true
	case stderrors.Is(err, repositories.ErrAccountNotFound):
		return AccountNotFound, true
	case stderrors.Is(err, repositories.ErrAccountNumberExists):
		return AccountAlreadyExists, true
	case stderrors.Is(err, models.ErrInvalidAccountType):
		return AccountInvalidType, true
	case stderrors.Is(err, services.ErrNegativeDeposit):
		return AccountNegativeDeposit, true
	case stderrors.Is(err, models.ErrCustomerRequired), stderrors.Is(err, services.ErrAccountRequired):
		return AccountCustomerRequired, true
	case stderrors.Is(err, repositories.ErrCustomerNotFound):
		return CustomerNotFound, true
	case stderrors.Is(err, repositories.ErrCustomerExists):
		return CustomerAlreadyExists, true
	case stderrors.Is(err, models.ErrInvalidCustomerType):
		return CustomerInvalidType, true
	default:
		return SystemDatabaseError, false
	}
}

// IsClientError reports whether the operator can fix the failure by
// changing the input
func (er *ErrorResponse) IsClientError() bool {
	return !er.IsServerError()
}

// IsServerError reports a SYSTEM_* failure
func (er *ErrorResponse) IsServerError() bool {
	return strings.HasPrefix(er.Error.Code, "SYSTEM_")
}

// String renders the response as a single console line:
// [CODE] message: detail; detail
func (er *ErrorResponse) String() string {
	if len(er.Error.Details) == 0 {
		return fmt.Sprintf("[%s] %s", er.Error.Code, er.Error.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", er.Error.Code, er.Error.Message, strings.Join(er.Error.Details, "; "))
}
