package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const transactionTracer = "transaction-repository"

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func scopeClause(scope repository.Scope) string {
	if scope == repository.ScopeTrashed {
		return "t.deleted_at IS NOT NULL"
	}
	return "t.deleted_at IS NULL"
}

func (r *PostgresTransactionRepository) FindAll(ctx context.Context, filter repository.TransactionFilter) (_ []models.Transaction, _ int, err error) {
	ctx, span, done := instrument(ctx, transactionTracer, "FindAllTransactions")
	defer done(&err)
	span.SetAttributes(
		attribute.String("keyword", filter.Keyword),
		attribute.String("status", string(filter.Status)),
		attribute.String("scope", filter.Scope.String()),
		attribute.Int("page", filter.Page),
	)

	where := fmt.Sprintf(`%s AND tp.title ILIKE $1 AND ($2::text = '' OR t.status = $2::text)`, scopeClause(filter.Scope))
	db := conn(ctx, r.db)

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions t JOIN travel_packages tp ON tp.id = t.travel_package_id WHERE ` + where
	if err = db.QueryRowContext(ctx, countQuery, likePattern(filter.Keyword), string(filter.Status)).Scan(&total); err != nil {
		slog.Error("failed to count transactions", "method", "FindAll", "error", err)
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `SELECT t.travel_package_id, t.total, t.invoice_number, t.status, tp.title
		FROM transactions t
		JOIN travel_packages tp ON tp.id = t.travel_package_id
		WHERE ` + where + `
		ORDER BY t.created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := db.QueryContext(ctx, query, likePattern(filter.Keyword), string(filter.Status), models.PerPage, models.Offset(filter.Page))
	if err != nil {
		slog.Error("failed to list transactions", "method", "FindAll", "error", err)
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err = rows.Scan(&tx.TravelPackageID, &tx.Total, &tx.InvoiceNumber, &tx.Status, &tx.TravelPackageTitle); err != nil {
			slog.Error("failed to scan transaction", "method", "FindAll", "error", err)
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	slog.Info("transactions listed", "method", "FindAll", "scope", filter.Scope.String(), "count", len(transactions), "total", total)
	return transactions, total, nil
}

func (r *PostgresTransactionRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string, scope repository.Scope) (_ *models.Transaction, err error) {
	ctx, span, done := instrument(ctx, transactionTracer, "FindTransactionByInvoiceNumber")
	defer done(&err)
	span.SetAttributes(attribute.String("invoice_number", invoiceNumber), attribute.String("scope", scope.String()))

	query := `SELECT t.id, t.invoice_number, t.travel_package_id, tp.title, t.total, t.status,
			t.deleted_at, t.deleted_by, t.updated_by, t.created_at, t.updated_at
		FROM transactions t
		JOIN travel_packages tp ON tp.id = t.travel_package_id
		WHERE t.invoice_number = $1 AND ` + scopeClause(scope)

	var (
		tx        models.Transaction
		deletedAt sql.NullTime
		deletedBy sql.NullInt64
		updatedBy sql.NullInt64
	)
	err = conn(ctx, r.db).QueryRowContext(ctx, query, invoiceNumber).Scan(
		&tx.ID,
		&tx.InvoiceNumber,
		&tx.TravelPackageID,
		&tx.TravelPackageTitle,
		&tx.Total,
		&tx.Status,
		&deletedAt,
		&deletedBy,
		&updatedBy,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Warn("transaction not found", "method", "FindByInvoiceNumber", "invoice_number", invoiceNumber, "scope", scope.String())
		err = pkgerrors.ErrTransactionNotFound
		return nil, err
	}
	if err != nil {
		slog.Error("failed to get transaction", "method", "FindByInvoiceNumber", "invoice_number", invoiceNumber, "error", err)
		return nil, fmt.Errorf("failed to get transaction by invoice number: %w", err)
	}

	tx.DeletedAt = nullableTime(deletedAt)
	tx.DeletedBy = nullableID(deletedBy)
	tx.UpdatedBy = nullableID(updatedBy)
	return &tx, nil
}

func (r *PostgresTransactionRepository) CountDetails(ctx context.Context, transactionID int64) (_ int, err error) {
	ctx, _, done := instrument(ctx, transactionTracer, "CountTransactionDetails")
	defer done(&err)

	var count int
	query := `SELECT COUNT(*) FROM transaction_details WHERE transaction_id = $1`
	if err = conn(ctx, r.db).QueryRowContext(ctx, query, transactionID).Scan(&count); err != nil {
		slog.Error("failed to count transaction details", "method", "CountDetails", "transaction_id", transactionID, "error", err)
		return 0, fmt.Errorf("failed to count transaction details: %w", err)
	}
	return count, nil
}

func (r *PostgresTransactionRepository) Update(ctx context.Context, id int64, fields repository.TransactionUpdate) (err error) {
	ctx, span, done := instrument(ctx, transactionTracer, "UpdateTransaction")
	defer done(&err)
	span.SetAttributes(attribute.Int64("transaction_id", id), attribute.String("status", string(fields.Status)))

	if !fields.Status.Valid() {
		err = pkgerrors.ErrInvalidStatus
		slog.Error("invalid transaction status", "method", "Update", "status", fields.Status, "error", err)
		return err
	}

	query := `UPDATE transactions SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 AND deleted_at IS NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, fields.Status, fields.UpdatedBy, id)
	if err != nil {
		slog.Error("failed to update transaction", "method", "Update", "transaction_id", id, "error", err)
		return writeError("failed to update transaction", err)
	}
	if err = checkAffected("failed to update transaction", res); err != nil {
		return err
	}

	slog.Info("transaction updated", "method", "Update", "transaction_id", id, "status", fields.Status, "updated_by", fields.UpdatedBy)
	return nil
}

func (r *PostgresTransactionRepository) SetDeletedBy(ctx context.Context, id int64, actorID *int64) (err error) {
	ctx, _, done := instrument(ctx, transactionTracer, "SetTransactionDeletedBy")
	defer done(&err)

	query := `UPDATE transactions SET deleted_by = $1, updated_at = NOW() WHERE id = $2`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, actorID, id)
	if err != nil {
		slog.Error("failed to set deleted_by", "method", "SetDeletedBy", "transaction_id", id, "error", err)
		return writeError("failed to set deleted_by", err)
	}
	return checkAffected("failed to set deleted_by", res)
}

func (r *PostgresTransactionRepository) SoftDelete(ctx context.Context, id int64) (err error) {
	ctx, _, done := instrument(ctx, transactionTracer, "SoftDeleteTransaction")
	defer done(&err)

	query := `UPDATE transactions SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		slog.Error("failed to soft delete transaction", "method", "SoftDelete", "transaction_id", id, "error", err)
		return writeError("failed to soft delete transaction", err)
	}
	if err = checkAffected("failed to soft delete transaction", res); err != nil {
		return err
	}

	slog.Info("transaction trashed", "method", "SoftDelete", "transaction_id", id)
	return nil
}

func (r *PostgresTransactionRepository) Restore(ctx context.Context, id int64) (err error) {
	ctx, _, done := instrument(ctx, transactionTracer, "RestoreTransaction")
	defer done(&err)

	query := `UPDATE transactions SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		slog.Error("failed to restore transaction", "method", "Restore", "transaction_id", id, "error", err)
		return writeError("failed to restore transaction", err)
	}
	if err = checkAffected("failed to restore transaction", res); err != nil {
		return err
	}

	slog.Info("transaction restored", "method", "Restore", "transaction_id", id)
	return nil
}

func (r *PostgresTransactionRepository) ForceDelete(ctx context.Context, id int64) (err error) {
	ctx, _, done := instrument(ctx, transactionTracer, "ForceDeleteTransaction")
	defer done(&err)

	query := `DELETE FROM transactions WHERE id = $1 AND deleted_at IS NOT NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		slog.Error("failed to delete transaction permanently", "method", "ForceDelete", "transaction_id", id, "error", err)
		return writeError("failed to delete transaction permanently", err)
	}
	if err = checkAffected("failed to delete transaction permanently", res); err != nil {
		return err
	}

	slog.Info("transaction deleted permanently", "method", "ForceDelete", "transaction_id", id)
	return nil
}
