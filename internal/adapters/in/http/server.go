package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const sessionHeader = "X-Session-ID"

// Server handles the HTTP API. It binds requests into commands and queries,
// delegates to the application handlers, and maps failures onto HTTP status
// codes. Session identity is carried in the X-Session-ID header.
type Server struct {
	cartStore ports.CartStore

	// Command handlers
	addCartItemHandler        commands.AddCartItemCommandHandler
	adjustCartQuantityHandler commands.AdjustCartQuantityCommandHandler
	setCartQuantityHandler    commands.SetCartQuantityCommandHandler
	clearCartHandler          commands.ClearCartCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	dispatchCourierHandler    commands.DispatchCourierCommandHandler
	createTenantHandler       commands.CreateTenantCommandHandler
	approveTenantHandler      commands.ApproveTenantCommandHandler
	rejectTenantHandler       commands.RejectTenantCommandHandler
	createCourierHandler      commands.CreateCourierCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	requestWithdrawalHandler  commands.RequestWithdrawalCommandHandler
	resolveWithdrawalHandler  commands.ResolveWithdrawalCommandHandler

	// Query handlers
	tenantOrderBoardHandler  queries.GetTenantOrderBoardQueryHandler
	sessionOrdersHandler     queries.GetSessionOrdersQueryHandler
	trackOrderHandler        queries.TrackOrderQueryHandler
	candidateCouriersHandler queries.GetCandidateCouriersQueryHandler
	storefrontStatusHandler  queries.GetStorefrontStatusQueryHandler
}

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	AddCartItem        commands.AddCartItemCommandHandler
	AdjustCartQuantity commands.AdjustCartQuantityCommandHandler
	SetCartQuantity    commands.SetCartQuantityCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler
	DispatchCourier    commands.DispatchCourierCommandHandler
	CreateTenant       commands.CreateTenantCommandHandler
	ApproveTenant      commands.ApproveTenantCommandHandler
	RejectTenant       commands.RejectTenantCommandHandler
	CreateCourier      commands.CreateCourierCommandHandler
	CreateProduct      commands.CreateProductCommandHandler
	RequestWithdrawal  commands.RequestWithdrawalCommandHandler
	ResolveWithdrawal  commands.ResolveWithdrawalCommandHandler

	TenantOrderBoard  queries.GetTenantOrderBoardQueryHandler
	SessionOrders     queries.GetSessionOrdersQueryHandler
	TrackOrder        queries.TrackOrderQueryHandler
	CandidateCouriers queries.GetCandidateCouriersQueryHandler
	StorefrontStatus  queries.GetStorefrontStatusQueryHandler
}

// NewServer creates the HTTP server with its application handlers.
func NewServer(cartStore ports.CartStore, handlers Handlers) *Server {
	return &Server{
		cartStore: cartStore,

		addCartItemHandler:        handlers.AddCartItem,
		adjustCartQuantityHandler: handlers.AdjustCartQuantity,
		setCartQuantityHandler:    handlers.SetCartQuantity,
		clearCartHandler:          handlers.ClearCart,
		checkoutHandler:           handlers.Checkout,
		changeOrderStatusHandler:  handlers.ChangeOrderStatus,
		dispatchCourierHandler:    handlers.DispatchCourier,
		createTenantHandler:       handlers.CreateTenant,
		approveTenantHandler:      handlers.ApproveTenant,
		rejectTenantHandler:       handlers.RejectTenant,
		createCourierHandler:      handlers.CreateCourier,
		createProductHandler:      handlers.CreateProduct,
		requestWithdrawalHandler:  handlers.RequestWithdrawal,
		resolveWithdrawalHandler:  handlers.ResolveWithdrawal,

		tenantOrderBoardHandler:  handlers.TenantOrderBoard,
		sessionOrdersHandler:     handlers.SessionOrders,
		trackOrderHandler:        handlers.TrackOrder,
		candidateCouriersHandler: handlers.CandidateCouriers,
		storefrontStatusHandler:  handlers.StorefrontStatus,
	}
}

// RegisterRoutes attaches all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Shopper surface
	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:productID", s.AdjustCartQuantity)
	api.PUT("/cart/items/:productID", s.SetCartQuantity)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/checkout", s.Checkout)
	api.GET("/orders", s.GetSessionOrders)
	api.GET("/track/:orderID", s.TrackOrder)
	api.GET("/storefronts/:slug", s.GetStorefrontStatus)

	// Staff surface
	api.GET("/tenants/:tenantID/orders", s.GetTenantOrderBoard)
	api.POST("/tenants/:tenantID/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/tenants/:tenantID/orders/:orderID/dispatch", s.DispatchCourier)
	api.GET("/tenants/:tenantID/couriers/candidates", s.GetCandidateCouriers)
	api.POST("/tenants/:tenantID/couriers", s.CreateCourier)
	api.POST("/tenants/:tenantID/products", s.CreateProduct)

	// Platform surface
	api.POST("/tenants", s.CreateTenant)
	api.POST("/tenants/:tenantID/approve", s.ApproveTenant)
	api.POST("/tenants/:tenantID/reject", s.RejectTenant)

	// Courier surface
	api.POST("/couriers/:courierID/withdrawals", s.RequestWithdrawal)
	api.POST("/withdrawals/:withdrawalID/resolve", s.ResolveWithdrawal)
}

// GetCart handles GET /api/v1/cart - returns the session's working cart.
func (s *Server) GetCart(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	sessionCart, err := s.cartStore.Get(ctx.Request().Context(), sessionID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := cartResponse{
		Items:    make([]cartItemResponse, 0, len(sessionCart.Items())),
		TotalQty: sessionCart.TotalQty(),
	}
	if tenantID := sessionCart.TenantID(); tenantID != nil {
		id := tenantID.String()
		response.TenantID = &id
	}
	for _, item := range sessionCart.Items() {
		response.Items = append(response.Items, cartItemResponse{
			ProductID: item.ProductID.String(),
			Qty:       item.Qty,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items - adds one unit of a product.
func (s *Server) AddCartItem(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request addCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	tenantID, err := kernel.UUIDFromString(request.TenantID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(sessionID, tenantID, productID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdjustCartQuantity handles PATCH /api/v1/cart/items/:productID - shifts a
// line's quantity by a signed delta.
func (s *Server) AdjustCartQuantity(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request adjustCartQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	cmd, err := commands.NewAdjustCartQuantityCommand(sessionID, productID, request.Delta)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.adjustCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCartQuantity handles PUT /api/v1/cart/items/:productID - sets a line's
// quantity outright; zero removes the line.
func (s *Server) SetCartQuantity(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request setCartQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	cmd, err := commands.NewSetCartQuantityCommand(sessionID, productID, request.Qty)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.setCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the session's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(sessionID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the session's cart into an
// order and returns the new order's id.
func (s *Server) Checkout(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request checkoutRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	fulfillment, err := order.FulfillmentTypeFromString(request.Fulfillment)
	if err != nil {
		return s.respondError(ctx, err)
	}
	method, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var changeFor *kernel.Money
	if request.ChangeForCents != nil {
		amount, err := kernel.NewMoney(*request.ChangeForCents)
		if err != nil {
			return s.respondError(ctx, err)
		}
		changeFor = &amount
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(
		orderID, sessionID,
		request.Customer, request.Phone,
		fulfillment, request.Address,
		method, changeFor,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponse{OrderID: orderID.String()})
}

// GetSessionOrders handles GET /api/v1/orders - lists the session's orders
// across all stores, most recent first.
func (s *Server) GetSessionOrders(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetSessionOrdersQuery(sessionID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.sessionOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]sessionOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = sessionOrderResponse{
			ID:         o.ID.String(),
			TenantID:   o.TenantID.String(),
			TenantName: o.TenantName,
			Status:     o.Status,
			TotalCents: o.Total,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackOrder handles GET /api/v1/track/:orderID - the shopper's view of one
// order. Orders the session does not own read as missing.
func (s *Server) TrackOrder(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewTrackOrderQuery(sessionID, orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := trackOrderResponse{
		ID:               view.ID.String(),
		TenantName:       view.TenantName,
		Status:           view.Status,
		Fulfillment:      view.Fulfillment,
		Address:          view.Address,
		Items:            make([]trackOrderItemResponse, len(view.Items)),
		DeliveryFeeCents: view.DeliveryFee,
		TotalCents:       view.Total,
		ChangeDueCents:   view.ChangeDue,
		CreatedAt:        view.CreatedAt,
	}
	for i, item := range view.Items {
		response.Items[i] = trackOrderItemResponse{
			Name:           item.Name,
			UnitPriceCents: item.UnitPrice,
			Qty:            item.Qty,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStorefrontStatus handles GET /api/v1/storefronts/:slug - the public
// storefront header.
func (s *Server) GetStorefrontStatus(ctx echo.Context) error {
	query, err := queries.NewGetStorefrontStatusQuery(ctx.Param("slug"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	status, err := s.storefrontStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, storefrontStatusResponse{
		ID:               status.ID.String(),
		Name:             status.Name,
		Slug:             status.Slug,
		Operational:      status.Operational,
		OpenNow:          status.OpenNow,
		DeliveryFeeCents: status.DeliveryFee,
		Categories:       status.Categories,
	})
}

// GetTenantOrderBoard handles GET /api/v1/tenants/:tenantID/orders - the
// staff board of non-terminal orders.
func (s *Server) GetTenantOrderBoard(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetTenantOrderBoardQuery(tenantID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.tenantOrderBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]boardOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = boardOrderResponse{
			ID:          o.ID.String(),
			Customer:    o.Customer,
			Phone:       o.Phone,
			Fulfillment: o.Fulfillment,
			Address:     o.Address,
			Status:      o.Status,
			TotalCents:  o.Total,
			CreatedAt:   o.CreatedAt,
		}
		if o.CourierID != nil {
			id := o.CourierID.String()
			response[i].CourierID = &id
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/tenants/:tenantID/orders/:orderID/status -
// moves an order along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request changeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, tenantID, target)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchCourier handles POST /api/v1/tenants/:tenantID/orders/:orderID/dispatch -
// assigns a courier to a ready delivery order.
func (s *Server) DispatchCourier(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request dispatchCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDispatchCourierCommand(orderID, tenantID, courierID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.dispatchCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCandidateCouriers handles GET /api/v1/tenants/:tenantID/couriers/candidates -
// couriers eligible for dispatch, least-loaded first.
func (s *Server) GetCandidateCouriers(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetCandidateCouriersQuery(tenantID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	couriers, err := s.candidateCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]candidateCourierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = candidateCourierResponse{
			ID:              c.ID.String(),
			Name:            c.Name,
			DeliveriesToday: c.DeliveriesToday,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTenant handles POST /api/v1/tenants - registers a store, pending
// approval.
func (s *Server) CreateTenant(ctx echo.Context) error {
	var request createTenantRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	deliveryFee, err := kernel.NewMoney(request.DeliveryFeeCents)
	if err != nil {
		return s.respondError(ctx, err)
	}

	tenantID := kernel.NewUUID()
	cmd, err := commands.NewCreateTenantCommand(tenantID, request.Name, request.Slug, deliveryFee)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.createTenantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: tenantID.String()})
}

// ApproveTenant handles POST /api/v1/tenants/:tenantID/approve.
func (s *Server) ApproveTenant(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewApproveTenantCommand(tenantID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.approveTenantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectTenant handles POST /api/v1/tenants/:tenantID/reject.
func (s *Server) RejectTenant(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRejectTenantCommand(tenantID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.rejectTenantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCourier handles POST /api/v1/tenants/:tenantID/couriers - enrolls a
// courier with the store.
func (s *Server) CreateCourier(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request createCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, tenantID, request.Name)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: courierID.String()})
}

// CreateProduct handles POST /api/v1/tenants/:tenantID/products - adds a
// catalog product under one of the store's categories.
func (s *Server) CreateProduct(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request createProductRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	price, err := kernel.NewMoney(request.PriceCents)
	if err != nil {
		return s.respondError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, tenantID, request.Name, price, request.Category)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: productID.String()})
}

// RequestWithdrawal handles POST /api/v1/couriers/:courierID/withdrawals -
// opens a payout request, debiting the courier's balance.
func (s *Server) RequestWithdrawal(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request requestWithdrawalRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	amount, err := kernel.NewMoney(request.AmountCents)
	if err != nil {
		return s.respondError(ctx, err)
	}

	withdrawalID := kernel.NewUUID()
	cmd, err := commands.NewRequestWithdrawalCommand(withdrawalID, courierID, amount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.requestWithdrawalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: withdrawalID.String()})
}

// ResolveWithdrawal handles POST /api/v1/withdrawals/:withdrawalID/resolve -
// approves or rejects a pending payout request.
func (s *Server) ResolveWithdrawal(ctx echo.Context) error {
	withdrawalID, err := kernel.UUIDFromString(ctx.Param("withdrawalID"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request resolveWithdrawalRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBindError(ctx)
	}

	cmd, err := commands.NewResolveWithdrawalCommand(withdrawalID, request.Approve)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.resolveWithdrawalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// sessionID extracts the browsing session identifier from the request.
func sessionID(ctx echo.Context) (string, error) {
	id := ctx.Request().Header.Get(sessionHeader)
	if id == "" {
		return "", errs.NewValueIsRequiredError(sessionHeader + " header")
	}
	return id, nil
}

// respondError maps an application error onto an HTTP status code and writes
// the error body. Mapping is purely by error class: every application
// sentinel wraps one of the taxonomy roots, so new sentinels need no case
// here.
func (s *Server) respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

func (s *Server) respondBindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
