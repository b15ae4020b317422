package service

import (
	"context"
	"errors"
	"testing"

	repositorymocks "github.com/Antontokarchuk0302/Travelsite/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type txKey struct{}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("without transaction succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactor := repositorymocks.NewMockTransactor(ctrl)
		runner := NewRunner(transactor)

		calls := 0
		result := runner.Run(ctx, "done", false, func(ctx context.Context) error {
			calls++
			return nil
		})

		assert.Equal(t, Result{OK: true, Message: "done"}, result)
		assert.Equal(t, 1, calls)
	})

	t.Run("without transaction failure keeps error text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := NewRunner(repositorymocks.NewMockTransactor(ctrl))

		result := runner.Run(ctx, "done", false, func(ctx context.Context) error {
			return failStep("failed to update transaction", errors.New("connection reset"))
		})

		assert.False(t, result.OK)
		assert.Equal(t, "failed to update transaction", result.Message)
	})

	t.Run("transaction commits once on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactor := repositorymocks.NewMockTransactor(ctrl)
		tx := repositorymocks.NewMockTx(ctrl)
		txCtx := context.WithValue(ctx, txKey{}, "tx")

		transactor.EXPECT().Begin(gomock.Any()).Return(txCtx, tx, nil)
		tx.EXPECT().Commit().Return(nil).Times(1)

		var seen context.Context
		result := NewRunner(transactor).Run(ctx, "saved", true, func(ctx context.Context) error {
			seen = ctx
			return nil
		})

		assert.Equal(t, Result{OK: true, Message: "saved"}, result)
		assert.Equal(t, "tx", seen.Value(txKey{}))
	})

	t.Run("transaction rolls back once on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactor := repositorymocks.NewMockTransactor(ctrl)
		tx := repositorymocks.NewMockTx(ctrl)

		transactor.EXPECT().Begin(gomock.Any()).Return(ctx, tx, nil)
		tx.EXPECT().Rollback().Return(nil).Times(1)

		result := NewRunner(transactor).Run(ctx, "saved", true, func(ctx context.Context) error {
			return errors.New("failed to delete transaction")
		})

		assert.Equal(t, Result{OK: false, Message: "failed to delete transaction"}, result)
	})

	t.Run("rollback error keeps action message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactor := repositorymocks.NewMockTransactor(ctrl)
		tx := repositorymocks.NewMockTx(ctrl)

		transactor.EXPECT().Begin(gomock.Any()).Return(ctx, tx, nil)
		tx.EXPECT().Rollback().Return(errors.New("conn closed"))

		result := NewRunner(transactor).Run(ctx, "saved", true, func(ctx context.Context) error {
			return errors.New("step failed")
		})

		assert.Equal(t, "step failed", result.Message)
	})

	t.Run("begin failure skips action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactor := repositorymocks.NewMockTransactor(ctrl)
		transactor.EXPECT().Begin(gomock.Any()).Return(nil, nil, errors.New("pq: too many connections"))

		called := false
		result := NewRunner(transactor).Run(ctx, "saved", true, func(ctx context.Context) error {
			called = true
			return nil
		})

		assert.False(t, called)
		assert.Equal(t, Result{OK: false, Message: MsgFailedBeginTransaction}, result)
	})

	t.Run("commit failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactor := repositorymocks.NewMockTransactor(ctrl)
		tx := repositorymocks.NewMockTx(ctrl)

		transactor.EXPECT().Begin(gomock.Any()).Return(ctx, tx, nil)
		tx.EXPECT().Commit().Return(errors.New("serialization failure"))

		result := NewRunner(transactor).Run(ctx, "saved", true, func(ctx context.Context) error {
			return nil
		})

		assert.Equal(t, Result{OK: false, Message: MsgFailedCommitTransaction}, result)
		assert.NotContains(t, result.Message, "serialization")
	})
}

func TestStepError_UnwrapsCause(t *testing.T) {
	cause := errors.New("deadlock")
	err := failStep("failed to restore transaction", cause)

	assert.EqualError(t, err, "failed to restore transaction")
	assert.ErrorIs(t, err, cause)
}
