package errors

// ErrorCode represents a standardized error code shown to the operator
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral              ErrorCode = "VALIDATION_001"
	ValidationRequiredField        ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat        ErrorCode = "VALIDATION_003"
	ValidationOutOfRange           ErrorCode = "VALIDATION_004"
	ValidationInvalidName          ErrorCode = "VALIDATION_005"
	ValidationInvalidContact       ErrorCode = "VALIDATION_006"
	ValidationInvalidAccountNumber ErrorCode = "VALIDATION_007"
	ValidationInvalidSelection     ErrorCode = "VALIDATION_008"
	ValidationRetriesExhausted     ErrorCode = "VALIDATION_009"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound      ErrorCode = "CUSTOMER_001"
	CustomerAlreadyExists ErrorCode = "CUSTOMER_002"
	CustomerInvalidType   ErrorCode = "CUSTOMER_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound         ErrorCode = "ACCOUNT_001"
	AccountAlreadyExists    ErrorCode = "ACCOUNT_002"
	AccountInvalidType      ErrorCode = "ACCOUNT_003"
	AccountMinimumDeposit   ErrorCode = "ACCOUNT_004"
	AccountNegativeDeposit  ErrorCode = "ACCOUNT_005"
	AccountCustomerRequired ErrorCode = "ACCOUNT_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount          ErrorCode = "TRANSACTION_001"
	TransactionBelowMinimumBalance    ErrorCode = "TRANSACTION_002"
	TransactionNegativeBalance        ErrorCode = "TRANSACTION_003"
	TransactionOverdraftLimitExceeded ErrorCode = "TRANSACTION_004"
	TransactionInvalidType            ErrorCode = "TRANSACTION_005"
	TransactionDuplicate              ErrorCode = "TRANSACTION_006"
	TransactionCancelled              ErrorCode = "TRANSACTION_007"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:              "Validation failed",
	ValidationRequiredField:        "Required field is missing",
	ValidationInvalidFormat:        "Invalid format",
	ValidationOutOfRange:           "Value is out of range",
	ValidationInvalidName:          "Name must contain letters only",
	ValidationInvalidContact:       "Contact number must be exactly 10 digits",
	ValidationInvalidAccountNumber: "Account number must look like ACC00<number>",
	ValidationInvalidSelection:     "Please choose one of the listed options",
	ValidationRetriesExhausted:     "Too many invalid attempts. Returning to main menu",

	// Customer errors
	CustomerNotFound:      "Customer not found",
	CustomerAlreadyExists: "Customer already exists",
	CustomerInvalidType:   "Invalid customer type",

	// Account errors
	AccountNotFound:         "Account not found",
	AccountAlreadyExists:    "Account number already exists",
	AccountInvalidType:      "Invalid account type",
	AccountMinimumDeposit:   "Initial deposit is below the required minimum",
	AccountNegativeDeposit:  "Initial deposit cannot be negative",
	AccountCustomerRequired: "An account requires a customer",

	// Transaction errors
	TransactionInvalidAmount:          "Amount must be greater than zero",
	TransactionBelowMinimumBalance:    "Withdrawal would breach the minimum balance",
	TransactionNegativeBalance:        "Withdrawal would make the balance negative",
	TransactionOverdraftLimitExceeded: "Withdrawal exceeds the overdraft limit",
	TransactionInvalidType:            "Unknown transaction type",
	TransactionDuplicate:              "Transaction already recorded",
	TransactionCancelled:              "Transaction cancelled",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "A storage error occurred",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
