package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCheckoutCommand(t *testing.T, orderID kernel.UUID) commands.CheckoutCommand {
	t.Helper()

	cmd, err := commands.NewCheckoutCommand(
		orderID, "sess-1", "Dana", "+5511999990000",
		order.FulfillmentDelivery, "12 Main St",
		order.PaymentCard, nil,
	)
	require.NoError(t, err)

	return cmd
}

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("should reject missing customer fields", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(
			kernel.NewUUID(), "sess-1", "", "",
			order.FulfillmentPickup, "",
			order.PaymentPix, nil,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCustomerIsRequired)
	})

	t.Run("should reject unknown fulfillment and payment", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(
			kernel.NewUUID(), "sess-1", "Dana", "+5511999990000",
			order.FulfillmentType(0), "",
			order.PaymentMethod(0), nil,
		)
		require.Error(t, err)
	})
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	tenantID := kernel.NewUUID()
	productID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd := validCheckoutCommand(t, orderID)

	testTenant := activeTenant(t, tenantID)
	testProduct := availableProduct(t, productID, tenantID)
	testCart := cartWith(t, "sess-1", tenantID, productID)

	tenantRepo := new(MockTenantRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	ownershipRepo := new(MockOwnershipRepository)
	cartStore := new(MockCartStore)
	uow := new(MockUoW)

	var placed *order.Order

	mock.InOrder(
		cartStore.On("Update", ctx, "sess-1").Return(testCart, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", ctx, tenantID).Return(testTenant, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{productID}).
			Return([]*product.Product{testProduct}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("OwnershipRepository").Return(ownershipRepo).Once(),
		ownershipRepo.On("Grant", ctx, "sess-1", orderID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(cartStore, factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.StatusPending, placed.Status())
	assert.Equal(t, int64(2900), placed.Total().Cents())
	assert.Equal(t, 1, placed.Version())
	assert.True(t, testCart.IsEmpty())
	tenantRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	ownershipRepo.AssertExpectations(t)
	cartStore.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd := validCheckoutCommand(t, kernel.NewUUID())

	emptyCart, err := cart.NewCart("sess-1")
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Update", ctx, "sess-1").Return(emptyCart, nil).Once()

	factory := new(MockCheckoutUoWFactory)

	handler := commands.NewCheckoutCommandHandler(cartStore, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutCommandHandler_Handle_TenantNotOperational(t *testing.T) {
	ctx := t.Context()

	tenantID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd := validCheckoutCommand(t, kernel.NewUUID())

	testTenant := pendingTenant(t, tenantID)
	testCart := cartWith(t, "sess-1", tenantID, productID)

	tenantRepo := new(MockTenantRepository)
	cartStore := new(MockCartStore)
	uow := new(MockUoW)

	mock.InOrder(
		cartStore.On("Update", ctx, "sess-1").Return(testCart, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", ctx, tenantID).Return(testTenant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(cartStore, factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, 1, testCart.TotalQty())
}

func TestCheckoutCommandHandler_Handle_ProductVanished(t *testing.T) {
	ctx := t.Context()

	tenantID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd := validCheckoutCommand(t, kernel.NewUUID())

	testTenant := activeTenant(t, tenantID)
	testCart := cartWith(t, "sess-1", tenantID, productID)

	tenantRepo := new(MockTenantRepository)
	productRepo := new(MockProductRepository)
	cartStore := new(MockCartStore)
	uow := new(MockUoW)

	mock.InOrder(
		cartStore.On("Update", ctx, "sess-1").Return(testCart, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", ctx, tenantID).Return(testTenant, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{productID}).
			Return([]*product.Product{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(cartStore, factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 1, testCart.TotalQty())
}

func TestCheckoutCommandHandler_Handle_InsufficientCashChange(t *testing.T) {
	ctx := t.Context()

	tenantID := kernel.NewUUID()
	productID := kernel.NewUUID()

	changeFor := kernel.MustNewMoney(2000) // total will be 2900
	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), "sess-1", "Dana", "+5511999990000",
		order.FulfillmentDelivery, "12 Main St",
		order.PaymentCash, &changeFor,
	)
	require.NoError(t, err)

	testTenant := activeTenant(t, tenantID)
	testProduct := availableProduct(t, productID, tenantID)
	testCart := cartWith(t, "sess-1", tenantID, productID)

	tenantRepo := new(MockTenantRepository)
	productRepo := new(MockProductRepository)
	cartStore := new(MockCartStore)
	uow := new(MockUoW)

	mock.InOrder(
		cartStore.On("Update", ctx, "sess-1").Return(testCart, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", ctx, tenantID).Return(testTenant, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{productID}).
			Return([]*product.Product{testProduct}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(cartStore, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInsufficientChange)
	assert.Equal(t, 1, testCart.TotalQty())
}
