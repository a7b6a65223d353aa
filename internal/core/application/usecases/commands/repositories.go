// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by status transitions that touch nothing but the order itself.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderTableUoW manages transactions spanning orders and tables.
	// Used by order completion, which may clear the order's dining table.
	OrderTableUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
	}

	// OrderTableUoWFactory creates new order/table unit of work instances.
	OrderTableUoWFactory interface {
		Create() OrderTableUoW
	}

	// UoW manages transactions across orders, menus and tables.
	// Used by order creation, which validates against all three.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   menuRepo := uow.MenuRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		TableRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
