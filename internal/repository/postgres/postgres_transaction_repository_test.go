package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository/postgres"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionColumns = []string{
	"id", "invoice_number", "travel_package_id", "title", "total", "status",
	"deleted_at", "deleted_by", "updated_by", "created_at", "updated_at",
}

func TestPostgresTransactionRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTransactionRepository(db)
	ctx := context.Background()

	t.Run("ActiveScope", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions t JOIN travel_packages tp .* WHERE t\.deleted_at IS NULL AND tp\.title ILIKE \$1`).
			WithArgs("%bali%", "PENDING").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		mock.ExpectQuery(`SELECT t\.travel_package_id, t\.total, t\.invoice_number, t\.status, tp\.title .* WHERE t\.deleted_at IS NULL .* LIMIT \$3 OFFSET \$4`).
			WithArgs("%bali%", "PENDING", models.PerPage, 10).
			WillReturnRows(sqlmock.NewRows([]string{"travel_package_id", "total", "invoice_number", "status", "title"}).
				AddRow(3, 150000, "RelaxArc-010123abc", "PENDING", "Bali Escape"))

		items, total, err := repo.FindAll(ctx, repository.TransactionFilter{
			Keyword: "bali",
			Status:  models.StatusPending,
			Scope:   repository.ScopeActive,
			Page:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, 12, total)
		assert.Equal(t, []models.Transaction{{
			TravelPackageID:    3,
			Total:              150000,
			InvoiceNumber:      "RelaxArc-010123abc",
			Status:             models.StatusPending,
			TravelPackageTitle: "Bali Escape",
		}}, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TrashedScope", func(t *testing.T) {
		mock.ExpectQuery(`WHERE t\.deleted_at IS NOT NULL`).
			WithArgs("%%", "").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`WHERE t\.deleted_at IS NOT NULL`).
			WithArgs("%%", "", models.PerPage, 0).
			WillReturnRows(sqlmock.NewRows([]string{"travel_package_id", "total", "invoice_number", "status", "title"}))

		items, total, err := repo.FindAll(ctx, repository.TransactionFilter{Scope: repository.ScopeTrashed, Page: 1})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT`).WillReturnError(fmt.Errorf("database error"))

		_, _, err := repo.FindAll(ctx, repository.TransactionFilter{Page: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count transactions")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTransactionRepository_FindByInvoiceNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTransactionRepository(db)
	ctx := context.Background()
	created := time.Date(2023, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Active", func(t *testing.T) {
		mock.ExpectQuery(`WHERE t\.invoice_number = \$1 AND t\.deleted_at IS NULL`).
			WithArgs("RelaxArc-1").
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(1, "RelaxArc-1", 3, "Bali Escape", 150000, "PENDING", nil, nil, 7, created, created))

		tx, err := repo.FindByInvoiceNumber(ctx, "RelaxArc-1", repository.ScopeActive)
		require.NoError(t, err)
		assert.Equal(t, int64(1), tx.ID)
		assert.Equal(t, "Bali Escape", tx.TravelPackageTitle)
		assert.Equal(t, models.StatusPending, tx.Status)
		assert.Nil(t, tx.DeletedAt)
		assert.Nil(t, tx.DeletedBy)
		require.NotNil(t, tx.UpdatedBy)
		assert.Equal(t, int64(7), *tx.UpdatedBy)
		assert.Equal(t, models.StateActive, tx.State())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Trashed", func(t *testing.T) {
		deleted := created.Add(time.Hour)
		mock.ExpectQuery(`WHERE t\.invoice_number = \$1 AND t\.deleted_at IS NOT NULL`).
			WithArgs("RelaxArc-1").
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(1, "RelaxArc-1", 3, "Bali Escape", 150000, "CANCEL", deleted, 7, nil, created, deleted))

		tx, err := repo.FindByInvoiceNumber(ctx, "RelaxArc-1", repository.ScopeTrashed)
		require.NoError(t, err)
		tombstone, ok := tx.Tombstone()
		require.True(t, ok)
		assert.Equal(t, deleted, tombstone.At)
		assert.Equal(t, int64(7), *tombstone.By)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TransactionNotFound", func(t *testing.T) {
		mock.ExpectQuery(`WHERE t\.invoice_number = \$1`).
			WithArgs("RelaxArc-missing").
			WillReturnError(sql.ErrNoRows)

		tx, err := repo.FindByInvoiceNumber(ctx, "RelaxArc-missing", repository.ScopeActive)
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, pkgerrors.ErrTransactionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(`WHERE t\.invoice_number = \$1`).
			WithArgs("RelaxArc-1").
			WillReturnError(fmt.Errorf("database error"))

		tx, err := repo.FindByInvoiceNumber(ctx, "RelaxArc-1", repository.ScopeActive)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "failed to get transaction by invoice number")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTransactionRepository_CountDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTransactionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM transaction_details WHERE transaction_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTransactionRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTransactionRepository(db)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE transactions SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 AND deleted_at IS NULL`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("SUCCESS", int64(7), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, 1, repository.TransactionUpdate{Status: models.StatusSuccess, UpdatedBy: 7})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		err := repo.Update(ctx, 1, repository.TransactionUpdate{Status: "REFUNDED", UpdatedBy: 7})
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TrashedRow", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("CANCEL", int64(7), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, 1, repository.TransactionUpdate{Status: models.StatusCancel, UpdatedBy: 7})
		assert.ErrorIs(t, err, pkgerrors.ErrNoRowsAffected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTransactionRepository_Lifecycle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTransactionRepository(db)
	ctx := context.Background()

	t.Run("SetDeletedBy", func(t *testing.T) {
		actorID := int64(7)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET deleted_by = $1, updated_at = NOW() WHERE id = $2`)).
			WithArgs(int64(7), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET deleted_by = $1, updated_at = NOW() WHERE id = $2`)).
			WithArgs(nil, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetDeletedBy(ctx, 1, &actorID))
		assert.NoError(t, repo.SetDeletedBy(ctx, 1, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SoftDelete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SoftDeleteAlreadyTrashed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDelete(ctx, 1), pkgerrors.ErrNoRowsAffected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Restore", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`)).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Restore(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ForceDelete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM transactions WHERE id = $1 AND deleted_at IS NOT NULL`)).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.ForceDelete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ForceDeleteReferenced", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM transactions WHERE id = $1 AND deleted_at IS NOT NULL`)).
			WithArgs(int64(1)).
			WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

		err := repo.ForceDelete(ctx, 1)
		assert.ErrorIs(t, err, pkgerrors.ErrConstraintViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactor_JoinsRepositoryCalls(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTransactionRepository(db)
	transactor := postgres.NewTransactor(db)

	t.Run("Commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET deleted_at = NULL`)).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		txCtx, tx, err := transactor.Begin(context.Background())
		require.NoError(t, err)
		require.NoError(t, repo.Restore(txCtx, 1))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET deleted_by = $1`)).
			WithArgs(nil, int64(1)).
			WillReturnError(fmt.Errorf("lock timeout"))
		mock.ExpectRollback()

		txCtx, tx, err := transactor.Begin(context.Background())
		require.NoError(t, err)
		assert.Error(t, repo.SetDeletedBy(txCtx, 1, nil))
		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginError", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(fmt.Errorf("too many connections"))

		_, tx, err := transactor.Begin(context.Background())
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "failed to begin transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
