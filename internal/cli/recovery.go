package cli

import (
	"context"
	"fmt"
	"runtime/debug"

	apperrors "bank-account-manager/internal/errors"
	"bank-account-manager/internal/services"
)

// recoverAction runs a menu action and turns a panic into SYSTEM_004, so the
// session returns to the menu instead of crashing
func (a *App) recoverAction(ctx context.Context, action func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			traceID := services.CorrelationID(ctx)
			if traceID == "" {
				traceID = "unknown"
			}

			a.logger.Error("Panic recovered",
				"correlation_id", traceID,
				"panic", fmt.Sprintf("%v", r),
				"stack_trace", string(debug.Stack()),
			)

			a.console.PrintError(apperrors.NewErrorResponse(apperrors.SystemUnexpectedError, traceID))
			err = nil
		}
	}()

	return action(ctx)
}
