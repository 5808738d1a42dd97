package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler executes staff transitions on the order
// lifecycle: accepting, canceling, marking ready, and completing. Dispatch to
// a courier is a separate command because it binds a second aggregate.
//
// Completing a delivery order settles the assigned courier in the same
// transaction: the courier's active binding is released, the counters bump,
// and the delivery fee is credited to the courier balance.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for coordinating order and courier updates.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// The tenant must be operational and must own the order; orders of other
// tenants behave as if they do not exist. Illegal transitions are rejected
// with a state transition error and nothing is written.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ord.TenantID().IsEqual(cmd.TenantID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = h.applyTransition(ctx, uow, ord, cmd.Target()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h ChangeOrderStatusCommandHandler) applyTransition(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
	target order.Status,
) error {
	switch target {
	case order.StatusPreparing:
		return ord.Accept()
	case order.StatusCanceled:
		return ord.Cancel()
	case order.StatusReady:
		return ord.MarkReady()
	case order.StatusCompleted:
		return h.complete(ctx, uow, ord)
	default:
		// in_transit is reachable only through courier dispatch.
		return errs.NewInvalidStateTransitionError("order", ord.Status().String(), target.String())
	}
}

// complete closes the order and, for delivery orders, settles the courier
// that carried it.
func (h ChangeOrderStatusCommandHandler) complete(ctx context.Context, uow OrderUoW, ord *order.Order) error {
	courierID := ord.Courier()

	if err := ord.Complete(); err != nil {
		return err
	}

	if ord.Fulfillment().IsPickup() || courierID == nil {
		return nil
	}

	courier, err := uow.CourierRepository().Get(ctx, *courierID)
	if err != nil {
		return err
	}

	if err = courier.CompleteDelivery(ord.ID(), ord.DeliveryFee()); err != nil {
		return err
	}

	return uow.CourierRepository().Update(ctx, courier)
}
