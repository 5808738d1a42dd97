package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/require"
)

// Aggregate builders shared by the handler tests.

func activeTenant(t *testing.T, id kernel.UUID) *tenant.Tenant {
	t.Helper()

	aggregate, err := tenant.NewTenant(id, "Mario's Pizza", "marios-pizza", kernel.MustNewMoney(400))
	require.NoError(t, err)
	require.NoError(t, aggregate.Approve(time.Now()))

	return aggregate
}

func pendingTenant(t *testing.T, id kernel.UUID) *tenant.Tenant {
	t.Helper()

	aggregate, err := tenant.NewTenant(id, "Mario's Pizza", "marios-pizza", kernel.MustNewMoney(400))
	require.NoError(t, err)

	return aggregate
}

func availableProduct(t *testing.T, id, tenantID kernel.UUID) *product.Product {
	t.Helper()

	aggregate, err := product.NewProduct(id, tenantID, "Margherita", kernel.MustNewMoney(2500), "Pizzas")
	require.NoError(t, err)

	return aggregate
}

func cartWith(t *testing.T, sessionID string, tenantID kernel.UUID, productIDs ...kernel.UUID) *cart.Cart {
	t.Helper()

	c, err := cart.NewCart(sessionID)
	require.NoError(t, err)
	for _, productID := range productIDs {
		require.NoError(t, c.AddItem(tenantID, productID))
	}

	return c
}

func pendingOrder(t *testing.T, id, tenantID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Margherita", kernel.MustNewMoney(2500), 1, "")
	require.NoError(t, err)

	payment, err := order.NewPayment(order.PaymentCard)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		id, tenantID,
		"Dana", "+5511999990000",
		order.FulfillmentDelivery, "12 Main St",
		payment,
		[]order.Item{item},
		kernel.MustNewMoney(400),
		time.Now(),
	)
	require.NoError(t, err)

	return aggregate
}

func readyOrder(t *testing.T, id, tenantID kernel.UUID) *order.Order {
	t.Helper()

	aggregate := pendingOrder(t, id, tenantID)
	require.NoError(t, aggregate.Accept())
	require.NoError(t, aggregate.MarkReady())

	return aggregate
}

func freeCourier(t *testing.T, id, tenantID kernel.UUID) *courier.Courier {
	t.Helper()

	aggregate, err := courier.NewCourier(id, tenantID, "Alice")
	require.NoError(t, err)

	return aggregate
}
