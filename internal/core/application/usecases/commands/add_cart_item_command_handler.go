package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrProductUnavailable is returned when the requested product is currently
// switched off and cannot enter a cart. It belongs to the validation class.
var ErrProductUnavailable = fmt.Errorf("product is unavailable: %w", errs.ErrValueIsInvalid)

// AddCartItemCommandHandler handles adding a product to a session cart.
// Verifies the storefront gate and the product before touching cart state:
// the tenant must be operational and the product must belong to the tenant
// and be available.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(cartStore, uowFactory)
//	cmd, _ := NewAddCartItemCommand(sessionID, tenantID, productID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("adding cart item failed: %w", err)
//	}
type AddCartItemCommandHandler struct {
	cartStore  ports.CartStore
	uowFactory CatalogUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
// Requires the session cart store and a CatalogUoWFactory for the gating reads.
func NewAddCartItemCommandHandler(cartStore ports.CartStore, uowFactory CatalogUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		cartStore:  cartStore,
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Rejects the request before any cart mutation when the tenant is not
// operational, when the product belongs to another tenant, or when the
// product is unavailable. Switching tenants resets the cart to the new
// tenant with just this product.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenant, err := uow.TenantRepository().Get(ctx, cmd.TenantID())
	if err != nil {
		return err
	}
	if err = tenant.EnsureOperational(); err != nil {
		return err
	}

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !product.TenantID().IsEqual(cmd.TenantID()) {
		return errs.NewObjectNotFoundError("productID", cmd.ProductID())
	}
	if !product.IsAvailable() {
		return ErrProductUnavailable
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		return c.AddItem(cmd.TenantID(), cmd.ProductID())
	})
}
