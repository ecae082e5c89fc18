package validation

import (
	"reflect"
	"regexp"
	"strings"

	"bank-account-manager/internal/dto"
	"bank-account-manager/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	lettersPattern       = regexp.MustCompile(`^[A-Za-z]+$`)
	contactPattern       = regexp.MustCompile(`^[0-9]{10}$`)
	accountNumberPattern = regexp.MustCompile(`(?i)^ACC00\d+$`)
)

// Opening deposit floors applied when an account is created
var (
	PremiumMinimumDeposit = models.PremiumMinimumBalance
	SavingsMinimumDeposit = models.SavingsMinimumBalance
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("letters", validateLetters)
	_ = v.RegisterValidation("contact", validateContact)
	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("customer_type", validateCustomerType)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)

	v.RegisterStructValidation(validateInitialDeposit, dto.CreateAccountRequest{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a request and returns a message per failing field, or nil
func (v *Validator) Struct(s interface{}) map[string]string {
	return fieldErrors(v.validate.Struct(s))
}

// Var validates a single console answer against a tag list and returns the
// failure keyed by field, or nil
func (v *Validator) Var(field string, value interface{}, tag string) map[string]string {
	errs := fieldErrors(v.validate.Var(value, tag))
	if errs == nil {
		return nil
	}
	// Var reports an empty field name
	return map[string]string{field: errs[""]}
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "letters":
		return "must contain letters only"
	case "contact":
		return "must contain only digits and be 10 digits long"
	case "account_number":
		return "must look like ACC004"
	case "amount":
		return "must be a number"
	case "non_negative_amount":
		return "cannot be negative"
	case "gt":
		return "must be positive"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of " + fe.Param()
	case "customer_type":
		return "must be regular or premium"
	case "account_type":
		return "must be Savings or Checking"
	case "transaction_type":
		return "must be Deposit or Withdrawal"
	case "premium_minimum":
		return "premium customers require a minimum deposit of $" + PremiumMinimumDeposit.StringFixed(2)
	case "savings_minimum":
		return "savings accounts require a minimum deposit of $" + SavingsMinimumDeposit.StringFixed(2)
	default:
		return "is invalid"
	}
}

// Custom validation functions

// validateLetters accepts a single word of ASCII letters
func validateLetters(fl validator.FieldLevel) bool {
	return lettersPattern.MatchString(fl.Field().String())
}

// validateContact accepts exactly 10 digits
func validateContact(fl validator.FieldLevel) bool {
	return contactPattern.MatchString(fl.Field().String())
}

// validateAccountNumber accepts ACC00 followed by digits, in any case
func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNumberPattern.MatchString(fl.Field().String())
}

// validateAmount checks the answer parses as a decimal number
func validateAmount(fl validator.FieldLevel) bool {
	_, err := ParseAmount(fl.Field().String())
	return err == nil
}

// validateNonNegativeAmount rejects negative amounts; unparseable input is left to the amount rule
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, err := ParseAmount(fl.Field().String())
	if err != nil {
		return true
	}
	return !amount.IsNegative()
}

// validateCustomerType validates that customer type is one of the allowed types
func validateCustomerType(fl validator.FieldLevel) bool {
	return models.IsValidCustomerType(models.CustomerType(fl.Field().String()))
}

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(models.AccountType(fl.Field().String()))
}

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	_, err := models.ParseTransactionType(fl.Field().String())
	return err == nil
}

// validateInitialDeposit applies the opening floors: Premium customers deposit
// at least 10000 whatever the account, Savings accounts at least 500
func validateInitialDeposit(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreateAccountRequest)

	deposit, err := ParseAmount(req.InitialDeposit)
	if err != nil || deposit.IsNegative() {
		return
	}

	switch {
	case models.CustomerType(req.CustomerType) == models.CustomerTypePremium && deposit.LessThan(PremiumMinimumDeposit):
		sl.ReportError(req.InitialDeposit, "initial_deposit", "InitialDeposit", "premium_minimum", "")
	case models.AccountType(req.AccountType) == models.AccountTypeSavings && deposit.LessThan(SavingsMinimumDeposit):
		sl.ReportError(req.InitialDeposit, "initial_deposit", "InitialDeposit", "savings_minimum", "")
	}
}

// ParseAmount reads a console amount such as "250" or "99.95"
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
