package cli

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	"bank-account-manager/internal/dto"
	apperrors "bank-account-manager/internal/errors"
	"bank-account-manager/internal/models"
	"bank-account-manager/internal/services"
	"bank-account-manager/internal/validation"

	"github.com/shopspring/decimal"
)

// TransactionHandler runs the deposit/withdrawal dialogue and the history view
type TransactionHandler struct {
	console            *Console
	validator          *validation.Validator
	accountService     services.AccountServiceInterface
	transactionService services.TransactionServiceInterface
	statementService   services.StatementServiceInterface
	now                func() time.Time
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	console *Console,
	validator *validation.Validator,
	accountService services.AccountServiceInterface,
	transactionService services.TransactionServiceInterface,
	statementService services.StatementServiceInterface,
	now func() time.Time,
	logger *slog.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		console:            console,
		validator:          validator,
		accountService:     accountService,
		transactionService: transactionService,
		statementService:   statementService,
		now:                now,
		logger:             logger,
	}
}

var transactionTypeOptions = []models.TransactionType{models.TransactionTypeDeposit, models.TransactionTypeWithdrawal}

// ProcessTransaction asks for an account, a type and an amount, shows a
// preview and applies the transaction once the operator confirms it
func (h *TransactionHandler) ProcessTransaction(ctx context.Context) error {
	traceID := services.CorrelationID(ctx)
	h.console.Println("PROCESS TRANSACTION")
	h.console.Println("===================")

	account, err := h.askAccount(ctx)
	if err != nil || account == nil {
		return err
	}

	choice, err := h.console.Choose(ctx, "Deposit", "Withdrawal")
	if err != nil {
		return err
	}
	kind := transactionTypeOptions[choice]

	answer, err := h.console.Ask(ctx, "Enter amount: ", func(answer string) *apperrors.ErrorResponse {
		return h.amountRejection(answer, traceID)
	})
	if err != nil {
		return err
	}

	req := dto.TransactionRequest{AccountNumber: account.AccountNumber(), Type: string(kind), Amount: answer}
	if errs := h.validator.Struct(req); errs != nil {
		h.console.PrintError(apperrors.NewValidationError(errs, traceID))
		return nil
	}
	amount, _ := validation.ParseAmount(req.Amount)

	h.printPreview(account, kind, amount)

	confirmed, err := h.confirm(ctx)
	if err != nil {
		return err
	}
	if !confirmed {
		h.console.PrintError(apperrors.NewErrorResponse(apperrors.TransactionCancelled, traceID))
		return nil
	}

	txn, err := h.transactionService.ProcessTransaction(ctx, account, amount, kind)
	if err != nil {
		h.console.Println("Transaction failed! Check balance or account rules.")
		printFailure(h.console, h.logger, err, traceID)
		return h.console.Pause()
	}

	h.console.Println("Transaction successful!")
	h.console.Printf("Transaction ID: %s\nNew Balance: $%s\n", txn.TransactionID(), txn.BalanceAfter().StringFixed(2))
	return h.console.Pause()
}

// ViewTransactionHistory prints an account's ledger entries with totals
func (h *TransactionHandler) ViewTransactionHistory(ctx context.Context) error {
	traceID := services.CorrelationID(ctx)
	h.console.Println("VIEW TRANSACTION HISTORY")
	h.console.Println("========================")

	account, err := h.askAccount(ctx)
	if err != nil || account == nil {
		return err
	}

	statement, err := h.statementService.GetStatement(ctx, account.AccountNumber())
	if err != nil {
		printFailure(h.console, h.logger, err, traceID)
		return h.console.Pause()
	}

	h.console.Printf("Account: %s - %s\nAccount Type: %s\nCurrent Balance: $%s\n\n",
		statement.Account.AccountNumber(), statement.Account.Customer(),
		statement.Account.AccountType(), statement.Account.Balance().StringFixed(2))
	h.console.Println("TRANSACTION HISTORY")
	h.console.Println("=====================================================================")
	h.console.Println("TXN ID | DATE/TIME          | TYPE    | AMOUNT    | BALANCE")
	for _, txn := range statement.Transactions {
		sign := "-"
		if txn.IsDeposit() {
			sign = "+"
		}
		h.console.Printf("%s |%s |%s  |%s$%s  |$%s\n",
			txn.TransactionID(), txn.Timestamp(), txn.Type(), sign,
			txn.Amount().StringFixed(2), txn.BalanceAfter().StringFixed(2))
	}
	h.console.Println("=====================================================================")
	h.console.Println()

	summary := statement.Summary
	h.console.Printf("Total Transactions: %d\n", summary.TransactionCount)
	h.console.Printf("Total Deposits: $%s\n", summary.TotalDeposits.StringFixed(2))
	h.console.Printf("Total Withdrawals: $%s\n", summary.TotalWithdrawals.StringFixed(2))
	h.console.Printf("Net Change: $%s\n", summary.NetChange.StringFixed(2))
	return h.console.Pause()
}

// askAccount reads an account number and looks it up. A nil account with a
// nil error means the lookup missed and the operator was told so.
func (h *TransactionHandler) askAccount(ctx context.Context) (*models.Account, error) {
	traceID := services.CorrelationID(ctx)

	answer, err := h.console.Ask(ctx, "Enter Account Number: ", func(answer string) *apperrors.ErrorResponse {
		if errs := h.validator.Var("account_number", answer, "required,account_number"); errs != nil {
			return apperrors.NewErrorResponse(apperrors.ValidationInvalidAccountNumber, traceID,
				apperrors.WithDetails("account_number: "+errs["account_number"]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	account, err := h.accountService.FindAccount(strings.ToUpper(answer))
	if err != nil {
		if stderrors.Is(err, services.ErrAccountNotFound) {
			h.console.PrintError(apperrors.NewErrorResponse(apperrors.AccountNotFound, traceID,
				apperrors.WithMessage("Account not found. Returning to main menu")))
			return nil, nil
		}
		printFailure(h.console, h.logger, err, traceID)
		return nil, nil
	}
	return account, nil
}

func (h *TransactionHandler) amountRejection(answer, traceID string) *apperrors.ErrorResponse {
	errs := h.validator.Var("amount", answer, "required,amount,non_negative_amount")
	if errs == nil {
		return nil
	}

	detail := apperrors.WithDetails("amount: " + errs["amount"])
	if amount, err := validation.ParseAmount(answer); err == nil && amount.IsNegative() {
		return apperrors.NewErrorResponse(apperrors.TransactionInvalidAmount, traceID, detail)
	}
	return apperrors.NewErrorResponse(apperrors.ValidationInvalidFormat, traceID, detail)
}

// printPreview shows what the transaction would do; the id is the next
// unused one and is only taken if the transaction succeeds
func (h *TransactionHandler) printPreview(account *models.Account, kind models.TransactionType, amount decimal.Decimal) {
	newBalance := account.Balance().Add(amount)
	if kind == models.TransactionTypeWithdrawal {
		newBalance = account.Balance().Sub(amount)
	}

	h.console.Println("TRANSACTION CONFIRMATION")
	h.console.Println("========================")
	h.console.Printf("Transaction ID: %s\n", h.transactionService.NextTransactionID())
	h.console.Printf("Account: %s\n", account.AccountNumber())
	h.console.Printf("Type: %s\n", kind)
	h.console.Printf("Amount: $%s\n", amount.StringFixed(2))
	h.console.Printf("Previous Balance: $%s\n", account.Balance().StringFixed(2))
	h.console.Printf("New Balance: $%s\n", newBalance.StringFixed(2))
	h.console.Printf("Date/Time: %s\n", h.now().Format(models.TimestampLayout))
}

func (h *TransactionHandler) confirm(ctx context.Context) (bool, error) {
	traceID := services.CorrelationID(ctx)

	answer, err := h.console.Ask(ctx, "Confirm transaction? (Y/N): ", func(answer string) *apperrors.ErrorResponse {
		if errs := h.validator.Struct(dto.ConfirmationRequest{Answer: answer}); errs != nil {
			return apperrors.NewErrorResponse(apperrors.ValidationInvalidSelection, traceID,
				apperrors.WithDetails("answer: "+errs["answer"]))
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "Y"), nil
}
