package repository

import (
	"context"
	"errors"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/database"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionStore interface using GORM
type TransactionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  database.NewErrorMapper(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:            transaction.ID,
		OrderID:       transaction.OrderID,
		ProductID:     transaction.ProductID,
		UserID:        transaction.UserID,
		Amount:        transaction.Amount,
		Currency:      transaction.Currency,
		Status:        string(transaction.Status),
		Reference:     transaction.Reference,
		CustomerName:  transaction.CustomerName,
		CustomerEmail: transaction.CustomerEmail,
		CustomerPhone: transaction.CustomerPhone,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		OrderID:       m.OrderID,
		ProductID:     m.ProductID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        entity.TransactionStatus(m.Status),
		Reference:     m.Reference,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		CustomerPhone: m.CustomerPhone,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// Create persists a new transaction under its owning user. Anonymous
// transactions are skipped with a logged warning. The store performs no
// dedup by order ID: replayed created-events append a fresh record.
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.IsAnonymous() {
		r.logger.Warn("Cannot save transaction for anonymous or missing user", map[string]any{
			"order_id": transaction.OrderID,
		})
		return nil
	}

	now := r.timeProvider.Now()
	transaction.ID = uuid.NewString()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"order_id": transaction.OrderID,
			"user_id":  transaction.UserID,
			"error":    result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, "create transaction")
	}

	r.logger.Info("Transaction created successfully", map[string]any{
		"id":       transaction.ID,
		"order_id": transaction.OrderID,
		"user_id":  transaction.UserID,
		"status":   transaction.Status,
	})
	return nil
}

// UpdateStatus overwrites the status and update timestamp of the transaction
// matching the given order ID. When the owner is known the lookup is scoped
// to that user; on a miss, or when the owner is unknown, it falls back to a
// cross-user search kept for events that don't carry ownership. A record
// missing everywhere is a logged no-op, not an error: providers retry
// webhook delivery and a retried update against a never-created record must
// not cause repeated hard failures.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, orderID string, status entity.TransactionStatus, userID string) error {
	if userID != "" && userID != entity.AnonymousUserID {
		found, err := r.updateScoped(ctx, orderID, status, userID)
		if err != nil {
			return err
		}
		if found {
			return nil
		}
	}

	// Last-resort compatibility path for events without ownership info.
	// Unbounded in the number of owners; avoid depending on it.
	r.logger.Warn("Performing cross-user search for order", map[string]any{
		"order_id": orderID,
	})

	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at asc").
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Info("No transaction found to update", map[string]any{
				"order_id": orderID,
			})
			return nil
		}
		r.logger.Error("Failed to look up transaction for update", map[string]any{
			"order_id": orderID,
			"error":    result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, "find transaction")
	}

	return r.applyStatus(ctx, &transactionModel, status)
}

// updateScoped attempts the efficient owner-scoped lookup and update.
// Returns whether a matching record was found.
func (r *TransactionRepository) updateScoped(ctx context.Context, orderID string, status entity.TransactionStatus, userID string) (bool, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		r.logger.Error("Failed to look up transaction for update", map[string]any{
			"order_id": orderID,
			"user_id":  userID,
			"error":    result.Error.Error(),
		})
		return false, r.errorMapper.MapError(result.Error, "find transaction")
	}

	if err := r.applyStatus(ctx, &transactionModel, status); err != nil {
		return true, err
	}
	return true, nil
}

// applyStatus overwrites only the status and update timestamp of the found
// record
func (r *TransactionRepository) applyStatus(ctx context.Context, transactionModel *model.Transaction, status entity.TransactionStatus) error {
	result := r.db.WithContext(ctx).Model(transactionModel).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"order_id": transactionModel.OrderID,
			"error":    result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, "update transaction status")
	}

	r.logger.Info("Transaction status updated", map[string]any{
		"order_id": transactionModel.OrderID,
		"user_id":  transactionModel.UserID,
		"status":   status,
	})
	return nil
}

// ListByUser returns all transactions owned by the given user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, "list transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}
