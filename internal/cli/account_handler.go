package cli

import (
	"context"
	"log/slog"
	"strconv"

	"bank-account-manager/internal/dto"
	apperrors "bank-account-manager/internal/errors"
	"bank-account-manager/internal/models"
	"bank-account-manager/internal/services"
	"bank-account-manager/internal/validation"

	"github.com/shopspring/decimal"
)

// AccountHandler runs the account creation dialogue and the account listing
type AccountHandler struct {
	console         *Console
	validator       *validation.Validator
	customerService services.CustomerServiceInterface
	accountService  services.AccountServiceInterface
	logger          *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	console *Console,
	validator *validation.Validator,
	customerService services.CustomerServiceInterface,
	accountService services.AccountServiceInterface,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		console:         console,
		validator:       validator,
		customerService: customerService,
		accountService:  accountService,
		logger:          logger,
	}
}

var (
	customerTypeOptions = []models.CustomerType{models.CustomerTypeRegular, models.CustomerTypePremium}
	accountTypeOptions  = []models.AccountType{models.AccountTypeSavings, models.AccountTypeChecking}
)

// CreateAccount collects the customer's details and opening deposit, then
// registers the customer and opens the account
func (h *AccountHandler) CreateAccount(ctx context.Context) error {
	traceID := services.CorrelationID(ctx)
	h.console.Println("ACCOUNT CREATION")
	h.console.Println("====================================")

	var req dto.CreateAccountRequest
	var err error

	req.Name, err = h.console.Ask(ctx, "Enter customer name: ", h.fieldCheck("name", "required,letters,max=100", apperrors.ValidationInvalidName, traceID))
	if err != nil {
		return err
	}

	age, err := h.console.Ask(ctx, "Enter customer age: ", func(answer string) *apperrors.ErrorResponse {
		value, convErr := strconv.Atoi(answer)
		if convErr != nil {
			return apperrors.NewErrorResponse(apperrors.ValidationInvalidFormat, traceID, apperrors.WithDetails("age: must be a number"))
		}
		if errs := h.validator.Var("age", value, "gt=0"); errs != nil {
			return apperrors.NewErrorResponse(apperrors.ValidationOutOfRange, traceID, apperrors.WithDetails("age: "+errs["age"]))
		}
		return nil
	})
	if err != nil {
		return err
	}
	req.Age, _ = strconv.Atoi(age)

	req.Contact, err = h.console.Ask(ctx, "Enter customer contact: ", h.fieldCheck("contact", "required,contact", apperrors.ValidationInvalidContact, traceID))
	if err != nil {
		return err
	}

	req.Address, err = h.console.Ask(ctx, "Enter customer address: ", h.fieldCheck("address", "required,max=255", apperrors.ValidationRequiredField, traceID))
	if err != nil {
		return err
	}

	customerChoice, err := h.console.Choose(ctx, "Regular Customer", "Premium Customer")
	if err != nil {
		return err
	}
	req.CustomerType = string(customerTypeOptions[customerChoice])

	accountChoice, err := h.console.Choose(ctx, "Savings Account", "Checking Account")
	if err != nil {
		return err
	}
	req.AccountType = string(accountTypeOptions[accountChoice])

	req.InitialDeposit, err = h.console.Ask(ctx, "Enter initial deposit amount: ", func(answer string) *apperrors.ErrorResponse {
		candidate := req
		candidate.InitialDeposit = answer
		return h.depositRejection(candidate, traceID)
	})
	if err != nil {
		return err
	}

	if errs := h.validator.Struct(req); errs != nil {
		h.console.PrintError(apperrors.NewValidationError(errs, traceID))
		return nil
	}

	deposit, _ := validation.ParseAmount(req.InitialDeposit)
	account, err := h.open(ctx, req, deposit)
	if err != nil {
		printFailure(h.console, h.logger, err, traceID)
		return h.console.Pause()
	}

	h.console.Println("Account created successfully!")
	h.printAccount(account)
	return h.console.Pause()
}

func (h *AccountHandler) open(ctx context.Context, req dto.CreateAccountRequest, deposit decimal.Decimal) (*models.Account, error) {
	customer, err := h.customerService.CreateCustomer(ctx, models.CustomerType(req.CustomerType), req.Name, req.Age, req.Contact, req.Address)
	if err != nil {
		return nil, err
	}
	return h.accountService.OpenAccount(ctx, customer, models.AccountType(req.AccountType), deposit)
}

// fieldCheck validates one answer against a tag list and reports code on failure
func (h *AccountHandler) fieldCheck(field, tag string, code apperrors.ErrorCode, traceID string) func(string) *apperrors.ErrorResponse {
	return func(answer string) *apperrors.ErrorResponse {
		if errs := h.validator.Var(field, answer, tag); errs != nil {
			return apperrors.NewErrorResponse(code, traceID, apperrors.WithDetails(field+": "+errs[field]))
		}
		return nil
	}
}

func (h *AccountHandler) depositRejection(req dto.CreateAccountRequest, traceID string) *apperrors.ErrorResponse {
	message, failed := h.validator.Struct(req)["initial_deposit"]
	if !failed {
		return nil
	}

	detail := apperrors.WithDetails("initial_deposit: " + message)
	amount, err := validation.ParseAmount(req.InitialDeposit)
	switch {
	case err != nil:
		return apperrors.NewErrorResponse(apperrors.ValidationInvalidFormat, traceID, detail)
	case amount.IsNegative():
		return apperrors.NewErrorResponse(apperrors.AccountNegativeDeposit, traceID, detail)
	default:
		return apperrors.NewErrorResponse(apperrors.AccountMinimumDeposit, traceID, detail)
	}
}

func (h *AccountHandler) printAccount(account *models.Account) {
	h.console.Printf("Account Number: %s\n", account.AccountNumber())
	h.console.Printf("Customer: %s (%s, %s)\n", account.Customer(), account.Customer().CustomerID(), account.Customer().DisplayType())
	h.console.Printf("Account Type: %s\n", account.AccountType())
	h.console.Printf("Initial Balance: $%s\n", account.Balance().StringFixed(2))
	h.console.Println(account.SpecificDetails())
	h.console.Printf("Status: %s\n", account.Status())
}

// ViewAccounts prints every account with the registry totals
func (h *AccountHandler) ViewAccounts(ctx context.Context) error {
	traceID := services.CorrelationID(ctx)

	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		printFailure(h.console, h.logger, err, traceID)
		return h.console.Pause()
	}
	total, err := h.accountService.TotalBalance()
	if err != nil {
		printFailure(h.console, h.logger, err, traceID)
		return h.console.Pause()
	}

	h.console.Println("ACCOUNT LISTING")
	h.console.Println("====================================================")
	h.console.Println("ACC NO | CUSTOMER NAME | TYPE | BALANCE | STATUS")
	h.console.Println("====================================================")
	for _, account := range accounts {
		h.console.Printf("%s | %s | %s | $%s | %s | %s\n",
			account.AccountNumber(),
			account.Customer(),
			account.AccountType(),
			account.Balance().StringFixed(2),
			account.Status(),
			account.SpecificDetails())
	}

	h.console.Printf("Total Accounts: %d\nTotal Bank Balance: $%s\n", len(accounts), total.StringFixed(2))
	return h.console.Pause()
}
