package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout is attempted on a session whose
// cart holds no items. It belongs to the validation class.
var ErrCartIsEmpty = fmt.Errorf("cart is empty: %w", errs.ErrValueIsInvalid)

// CheckoutCommandHandler converts a session cart into a placed order.
// This is the consistency boundary of the storefront: the tenant gate, the
// item snapshot, the total computation, the ownership grant, and the order
// row all happen inside one transaction. The whole flow runs under the
// session's cart lock, so a concurrent cart mutation lands either before the
// snapshot or after the cleared cart is visible. The cart is cleared only
// after the transaction commits.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(cartStore, uowFactory)
//	cmd, _ := NewCheckoutCommand(orderID, sessionID, "Dana", "+5511999990000",
//	    order.FulfillmentPickup, "", order.PaymentPix, nil)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCartIsEmpty):
//	    // Nothing to place
//	case errors.Is(err, errs.ErrAccessDenied):
//	    // Storefront is not accepting orders
//	case err != nil:
//	    // Checkout failed, nothing was written
//	}
type CheckoutCommandHandler struct {
	cartStore  ports.CartStore
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires the session cart store and a CheckoutUoWFactory for the
// transactional write.
func NewCheckoutCommandHandler(cartStore ports.CartStore, uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		cartStore:  cartStore,
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Prices are read from the catalog at this moment and frozen into the order
// item snapshot; later product edits never touch placed orders. Any failure
// leaves the cart and the stores untouched.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		return h.placeOrder(ctx, cmd, c)
	})
}

// placeOrder runs the transactional part of checkout against the locked
// session cart and clears the cart once the transaction commits.
func (h CheckoutCommandHandler) placeOrder(ctx context.Context, cmd CheckoutCommand, c *cart.Cart) error {
	if c.IsEmpty() {
		return ErrCartIsEmpty
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenantID := *c.TenantID()

	tenant, err := uow.TenantRepository().Get(ctx, tenantID)
	if err != nil {
		return err
	}
	if err = tenant.EnsureOperational(); err != nil {
		return err
	}

	items, err := h.snapshotItems(ctx, uow.ProductRepository(), c)
	if err != nil {
		return err
	}

	payment, err := h.buildPayment(cmd)
	if err != nil {
		return err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(), tenantID,
		cmd.Customer(), cmd.Phone(),
		cmd.Fulfillment(), cmd.Address(),
		payment, items,
		tenant.DeliveryFee(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	if err = uow.OwnershipRepository().Grant(ctx, cmd.SessionID(), placed.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	c.Clear()
	return nil
}

// snapshotItems resolves every cart line against the catalog and freezes
// name and unit price into order items. A missing or unavailable product
// aborts the checkout.
func (h CheckoutCommandHandler) snapshotItems(
	ctx context.Context,
	products ports.ProductRepository,
	cart *cart.Cart,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(cart.Items()))
	for _, line := range cart.Items() {
		ids = append(ids, line.ProductID)
	}

	found, err := products.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]int, len(found))
	for i, p := range found {
		byID[p.ID()] = i
	}

	items := make([]order.Item, 0, len(cart.Items()))
	for _, line := range cart.Items() {
		i, ok := byID[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productID", line.ProductID)
		}

		p := found[i]
		if !p.IsAvailable() {
			return nil, ErrProductUnavailable
		}

		item, err := order.NewItem(p.ID(), p.Name(), p.Price(), line.Qty, p.Note())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (h CheckoutCommandHandler) buildPayment(cmd CheckoutCommand) (order.Payment, error) {
	if cmd.Method() == order.PaymentCash {
		return order.NewCashPayment(cmd.ChangeFor()), nil
	}

	return order.NewPayment(cmd.Method())
}
