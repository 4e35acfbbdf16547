package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/easybots/storefront-backend/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for error mapping
type EntityType string

const (
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
	// EntityTypeProduct represents the product entity
	EntityTypeProduct EntityType = "product"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	// Default error
	default:
		return fmt.Errorf("%w: %s", domainErr.ErrDatabaseConnection, err.Error())
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found
// errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		case EntityTypeProduct:
			return domainErr.ErrProductNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
