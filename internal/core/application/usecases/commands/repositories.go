// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodcourt/internal/core/ports"
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

	// OrderItemRepoFactory provides access to the order item repository within a transaction.
	OrderItemRepoFactory interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	// CustomItemRepoFactory provides access to the custom item repository within a transaction.
	CustomItemRepoFactory interface {
		CustomItemRepository() ports.CustomItemRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// CreateOrderUoW manages the order-creation transaction: table
	// resolution, the header insert and every line item insert must
	// commit or roll back as a unit.
	CreateOrderUoW interface {
		TxManager
		TableRepoFactory
		OrderRepoFactory
		OrderItemRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ItemUoW manages transactions for item status changes. It spans the
	// standard item repository, the parent order repository (for the
	// transactional rollup) and the custom item repository, so that one
	// handler can serve both item kinds.
	ItemUoW interface {
		TxManager
		OrderRepoFactory
		OrderItemRepoFactory
		CustomItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// CustomItemUoW manages transactions for custom-item-only operations.
	CustomItemUoW interface {
		TxManager
		CustomItemRepoFactory
	}

	// CustomItemUoWFactory creates new custom item unit of work instances.
	CustomItemUoWFactory interface {
		Create() CustomItemUoW
	}

	// OrderUoW manages transactions spanning the order header and its
	// line items. Used by order removal.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderItemRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
