package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/kafka"
	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TrashRoles may browse, restore and permanently delete trashed transactions.
var TrashRoles = []models.Role{models.RoleAdmin, models.RoleSuperAdmin}

type TransactionService interface {
	List(ctx context.Context, query TransactionQuery) (models.Page[models.Transaction], error)
	ListTrash(ctx context.Context, actor models.Actor, query TransactionQuery) (models.Page[models.Transaction], error)
	Detail(ctx context.Context, invoiceNumber string) (*models.Transaction, error)
	TrashDetail(ctx context.Context, actor models.Actor, invoiceNumber string) (*models.Transaction, error)
	EditForm(ctx context.Context, invoiceNumber string) (*TransactionEditForm, error)
	NewInvoiceNumber() string
	Update(ctx context.Context, invoiceNumber string, input UpdateTransactionInput, actor models.Actor) (Outcome, error)
	SoftDelete(ctx context.Context, invoiceNumber string, actor models.Actor) (Outcome, error)
	Restore(ctx context.Context, invoiceNumber string, actor models.Actor) (Outcome, error)
	ForceDelete(ctx context.Context, invoiceNumber string, actor models.Actor) (Outcome, error)
}

type TransactionQuery struct {
	Keyword string
	Status  models.TransactionStatus
	Page    int
}

type UpdateTransactionInput struct {
	Status models.TransactionStatus `json:"status" validate:"required,oneof=IN_CART PENDING SUCCESS CANCEL FAILED"`
}

type TransactionEditForm struct {
	Transaction *models.Transaction        `json:"transaction"`
	Statuses    []models.TransactionStatus `json:"status"`
}

type transactionService struct {
	transactions repository.TransactionRepository
	runner       *Runner
	producer     kafka.KafkaProducer
	now          func() time.Time
}

func NewTransactionService(
	transactions repository.TransactionRepository,
	runner *Runner,
	producer kafka.KafkaProducer,
) *transactionService {
	return &transactionService{
		transactions: transactions,
		runner:       runner,
		producer:     producer,
		now:          time.Now,
	}
}

func (s *transactionService) List(ctx context.Context, query TransactionQuery) (models.Page[models.Transaction], error) {
	return s.list(ctx, query, repository.ScopeActive)
}

func (s *transactionService) ListTrash(ctx context.Context, actor models.Actor, query TransactionQuery) (models.Page[models.Transaction], error) {
	if !actor.HasRole(TrashRoles...) {
		return models.Page[models.Transaction]{}, pkgerrors.ErrForbidden
	}
	return s.list(ctx, query, repository.ScopeTrashed)
}

func (s *transactionService) list(ctx context.Context, query TransactionQuery, scope repository.Scope) (models.Page[models.Transaction], error) {
	tracer := otel.Tracer("transaction-service")
	ctx, span := tracer.Start(ctx, "ListTransactions")
	defer span.End()

	if query.Page < 1 {
		query.Page = 1
	}
	items, total, err := s.transactions.FindAll(ctx, repository.TransactionFilter{
		Keyword: query.Keyword,
		Status:  query.Status,
		Scope:   scope,
		Page:    query.Page,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return models.Page[models.Transaction]{}, err
	}
	return models.NewPage(items, total, query.Page), nil
}

func (s *transactionService) Detail(ctx context.Context, invoiceNumber string) (*models.Transaction, error) {
	return s.detail(ctx, invoiceNumber, repository.ScopeActive)
}

func (s *transactionService) TrashDetail(ctx context.Context, actor models.Actor, invoiceNumber string) (*models.Transaction, error) {
	if !actor.HasRole(TrashRoles...) {
		return nil, pkgerrors.ErrForbidden
	}
	return s.detail(ctx, invoiceNumber, repository.ScopeTrashed)
}

func (s *transactionService) detail(ctx context.Context, invoiceNumber string, scope repository.Scope) (*models.Transaction, error) {
	tx, err := s.transactions.FindByInvoiceNumber(ctx, invoiceNumber, scope)
	if err != nil {
		return nil, err
	}
	count, err := s.transactions.CountDetails(ctx, tx.ID)
	if err != nil {
		return nil, err
	}
	tx.DetailsCount = count
	return tx, nil
}

func (s *transactionService) EditForm(ctx context.Context, invoiceNumber string) (*TransactionEditForm, error) {
	tx, err := s.transactions.FindByInvoiceNumber(ctx, invoiceNumber, repository.ScopeActive)
	if err != nil {
		return nil, err
	}
	return &TransactionEditForm{Transaction: tx, Statuses: models.TransactionStatuses}, nil
}

func (s *transactionService) NewInvoiceNumber() string {
	return GenerateInvoiceNumber(s.now())
}

func (s *transactionService) Update(ctx context.Context, invoiceNumber string, input UpdateTransactionInput, actor models.Actor) (Outcome, error) {
	tracer := otel.Tracer("transaction-service")
	ctx, span := tracer.Start(ctx, "UpdateTransaction")
	defer span.End()
	span.SetAttributes(attribute.String("invoice_number", invoiceNumber), attribute.String("status", string(input.Status)))

	if !input.Status.Valid() {
		span.SetStatus(codes.Error, "invalid status")
		return Outcome{}, pkgerrors.ErrInvalidInput
	}

	tx, err := s.transactions.FindByInvoiceNumber(ctx, invoiceNumber, repository.ScopeActive)
	if err != nil {
		span.RecordError(err)
		return Outcome{}, err
	}

	fields := repository.TransactionUpdate{Status: input.Status, UpdatedBy: actor.ID}
	result := s.runner.Run(ctx, MsgTransactionUpdated, false, func(ctx context.Context) error {
		if err := s.transactions.Update(ctx, tx.ID, fields); err != nil {
			return failStep(MsgFailedUpdateTransaction, err)
		}
		return nil
	})

	return s.finish(ctx, RouteTransactionsIndex, result, "transaction.updated", invoiceNumber, actor), nil
}

func (s *transactionService) SoftDelete(ctx context.Context, invoiceNumber string, actor models.Actor) (Outcome, error) {
	tracer := otel.Tracer("transaction-service")
	ctx, span := tracer.Start(ctx, "SoftDeleteTransaction")
	defer span.End()
	span.SetAttributes(attribute.String("invoice_number", invoiceNumber))

	tx, err := s.transactions.FindByInvoiceNumber(ctx, invoiceNumber, repository.ScopeActive)
	if err != nil {
		span.RecordError(err)
		return Outcome{}, err
	}

	actorID := actor.ID
	result := s.runner.Run(ctx, MsgTransactionDeleted, true, func(ctx context.Context) error {
		if err := s.transactions.SetDeletedBy(ctx, tx.ID, &actorID); err != nil {
			return failStep(MsgFailedUpdateTransaction, err)
		}
		if err := s.transactions.SoftDelete(ctx, tx.ID); err != nil {
			return failStep(MsgFailedDeleteTransaction, err)
		}
		return nil
	})

	return s.finish(ctx, RouteTransactionsIndex, result, "transaction.trashed", invoiceNumber, actor), nil
}

func (s *transactionService) Restore(ctx context.Context, invoiceNumber string, actor models.Actor) (Outcome, error) {
	tracer := otel.Tracer("transaction-service")
	ctx, span := tracer.Start(ctx, "RestoreTransaction")
	defer span.End()
	span.SetAttributes(attribute.String("invoice_number", invoiceNumber))

	if !actor.HasRole(TrashRoles...) {
		return Outcome{}, pkgerrors.ErrForbidden
	}

	tx, err := s.transactions.FindByInvoiceNumber(ctx, invoiceNumber, repository.ScopeTrashed)
	if err != nil {
		span.RecordError(err)
		return Outcome{}, err
	}

	result := s.runner.Run(ctx, MsgTransactionRestored, true, func(ctx context.Context) error {
		if err := s.transactions.SetDeletedBy(ctx, tx.ID, nil); err != nil {
			return failStep(MsgFailedUpdateTransaction, err)
		}
		if err := s.transactions.Restore(ctx, tx.ID); err != nil {
			return failStep(MsgFailedRestoreTransaction, err)
		}
		return nil
	})

	return s.finish(ctx, RouteTransactionsTrash, result, "transaction.restored", invoiceNumber, actor), nil
}

func (s *transactionService) ForceDelete(ctx context.Context, invoiceNumber string, actor models.Actor) (Outcome, error) {
	tracer := otel.Tracer("transaction-service")
	ctx, span := tracer.Start(ctx, "ForceDeleteTransaction")
	defer span.End()
	span.SetAttributes(attribute.String("invoice_number", invoiceNumber))

	if !actor.HasRole(TrashRoles...) {
		return Outcome{}, pkgerrors.ErrForbidden
	}

	tx, err := s.transactions.FindByInvoiceNumber(ctx, invoiceNumber, repository.ScopeTrashed)
	if err != nil {
		span.RecordError(err)
		return Outcome{}, err
	}

	result := s.runner.Run(ctx, MsgTransactionDeletedPermanent, false, func(ctx context.Context) error {
		if err := s.transactions.ForceDelete(ctx, tx.ID); err != nil {
			return failStep(MsgFailedDeletePermanentTransaction, err)
		}
		return nil
	})

	return s.finish(ctx, RouteTransactionsTrash, result, "transaction.deleted", invoiceNumber, actor), nil
}

func (s *transactionService) finish(ctx context.Context, destination RouteKey, result Result, eventType, invoiceNumber string, actor models.Actor) Outcome {
	if result.OK {
		slog.Info(result.Message, "invoice_number", invoiceNumber, "actor_id", actor.ID)
		kafka.PublishAudit(ctx, s.producer, kafka.AuditEvent{
			EventType: eventType,
			Subject:   invoiceNumber,
			ActorID:   actor.ID,
			Message:   result.Message,
		})
	}
	return newOutcome(destination, result)
}
