// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
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

	// TenantRepoFactory provides access to tenant repository within a transaction.
	TenantRepoFactory interface {
		TenantRepository() ports.TenantRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// WithdrawalRepoFactory provides access to withdrawal repository within a transaction.
	WithdrawalRepoFactory interface {
		WithdrawalRepository() ports.WithdrawalRepository
	}

	// OwnershipRepoFactory provides access to the ownership index within a transaction.
	OwnershipRepoFactory interface {
		OwnershipRepository() ports.OwnershipRepository
	}

	// TenantUoW manages transactions for tenant-only operations.
	// Used when commands only modify tenant aggregates.
	TenantUoW interface {
		TxManager
		TenantRepoFactory
	}

	// TenantUoWFactory creates new tenant unit of work instances.
	TenantUoWFactory interface {
		Create() TenantUoW
	}

	// CatalogUoW manages transactions over the tenant and its product catalog.
	// Used for catalog writes and for storefront gating reads.
	CatalogUoW interface {
		TxManager
		TenantRepoFactory
		ProductRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CheckoutUoW manages the checkout transaction: tenant gating, item
	// snapshotting, order creation, and the ownership grant.
	CheckoutUoW interface {
		TxManager
		TenantRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		OwnershipRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Covers the tenant gate and the courier settlement on completion.
	OrderUoW interface {
		TxManager
		TenantRepoFactory
		OrderRepoFactory
		CourierRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW manages transactions for courier roster operations.
	CourierUoW interface {
		TxManager
		TenantRepoFactory
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// WithdrawalUoW manages transactions for courier balance withdrawals.
	// The debit and the request row must move together.
	WithdrawalUoW interface {
		TxManager
		CourierRepoFactory
		WithdrawalRepoFactory
	}

	// WithdrawalUoWFactory creates new withdrawal unit of work instances.
	WithdrawalUoWFactory interface {
		Create() WithdrawalUoW
	}
)
