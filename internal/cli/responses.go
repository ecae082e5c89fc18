package cli

import (
	"log/slog"

	apperrors "bank-account-manager/internal/errors"
)

// Errors reach the operator as one "[CODE] message: detail" line.
//
// printFailure is for errors returned by the services. Rule violations are
// printed with their detail; anything the catalogue does not name is shown
// as SYSTEM_002 and its cause only goes to the log.
//
// Answers rejected while prompting are printed by Console.Ask.

func printFailure(console *Console, logger *slog.Logger, err error, traceID string) {
	response := apperrors.FromError(err, traceID)
	if response.IsServerError() {
		logger.Error("Operation failed", "error", err, "correlation_id", traceID)
	}
	console.PrintError(response)
}
