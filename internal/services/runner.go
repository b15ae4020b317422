package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/observability"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
)

// Result is the terminal outcome of one runner-wrapped action.
type Result struct {
	OK      bool
	Message string
}

// Runner executes admin mutations and turns their errors into user-facing
// messages. It holds no state between runs.
type Runner struct {
	transactor repository.Transactor
}

func NewRunner(transactor repository.Transactor) *Runner {
	return &Runner{transactor: transactor}
}

// Run invokes action, inside a database transaction when useTx is set. The
// error text of a failed action becomes the result message verbatim; begin and
// commit failures are logged and reported with a fixed message. On success the
// message is successMessage. With useTx exactly one of commit or
// rollback is issued.
func (r *Runner) Run(ctx context.Context, successMessage string, useTx bool, action func(ctx context.Context) error) (result Result) {
	defer func() {
		status := "success"
		if !result.OK {
			status = "failed"
		}
		observability.ActionRuns.WithLabelValues(strconv.FormatBool(useTx), status).Inc()
	}()

	if !useTx {
		if err := action(ctx); err != nil {
			slog.Warn("action failed", "error", err)
			return Result{OK: false, Message: err.Error()}
		}
		return Result{OK: true, Message: successMessage}
	}

	txCtx, tx, err := r.transactor.Begin(ctx)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		return Result{OK: false, Message: MsgFailedBeginTransaction}
	}

	if err := action(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("rollback failed", "error", rbErr, "cause", err)
		}
		slog.Warn("action failed, transaction rolled back", "error", err)
		return Result{OK: false, Message: err.Error()}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		return Result{OK: false, Message: MsgFailedCommitTransaction}
	}
	return Result{OK: true, Message: successMessage}
}
