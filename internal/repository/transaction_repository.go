package repository

import (
	"context"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
)

// Scope selects which side of the soft-delete tombstone a query reads.
type Scope int

const (
	ScopeActive Scope = iota
	ScopeTrashed
)

func (s Scope) String() string {
	if s == ScopeTrashed {
		return "trashed"
	}
	return "active"
}

type TransactionFilter struct {
	Keyword string
	Status  models.TransactionStatus
	Scope   Scope
	Page    int
}

type TransactionUpdate struct {
	Status    models.TransactionStatus
	UpdatedBy int64
}

type TransactionRepository interface {
	FindAll(ctx context.Context, filter TransactionFilter) ([]models.Transaction, int, error)
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string, scope Scope) (*models.Transaction, error)
	CountDetails(ctx context.Context, transactionID int64) (int, error)
	Update(ctx context.Context, id int64, fields TransactionUpdate) error
	SetDeletedBy(ctx context.Context, id int64, actorID *int64) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	ForceDelete(ctx context.Context, id int64) error
}
