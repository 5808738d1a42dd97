package http

import "time"

// Request and response bodies of the HTTP API. Monetary amounts travel as
// integer cents.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type cartItemResponse struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type cartResponse struct {
	TenantID *string            `json:"tenant_id"`
	Items    []cartItemResponse `json:"items"`
	TotalQty int                `json:"total_qty"`
}

type addCartItemRequest struct {
	TenantID  string `json:"tenant_id"`
	ProductID string `json:"product_id"`
}

type adjustCartQuantityRequest struct {
	Delta int `json:"delta"`
}

type setCartQuantityRequest struct {
	Qty int `json:"qty"`
}

type checkoutRequest struct {
	Customer       string `json:"customer"`
	Phone          string `json:"phone"`
	Fulfillment    string `json:"fulfillment"`
	Address        string `json:"address"`
	PaymentMethod  string `json:"payment_method"`
	ChangeForCents *int64 `json:"change_for_cents"`
}

type checkoutResponse struct {
	OrderID string `json:"order_id"`
}

type sessionOrderResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type trackOrderItemResponse struct {
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Qty            int    `json:"qty"`
}

type trackOrderResponse struct {
	ID               string                   `json:"id"`
	TenantName       string                   `json:"tenant_name"`
	Status           string                   `json:"status"`
	Fulfillment      string                   `json:"fulfillment"`
	Address          string                   `json:"address"`
	Items            []trackOrderItemResponse `json:"items"`
	DeliveryFeeCents int64                    `json:"delivery_fee_cents"`
	TotalCents       int64                    `json:"total_cents"`
	ChangeDueCents   *int64                   `json:"change_due_cents"`
	CreatedAt        time.Time                `json:"created_at"`
}

type storefrontStatusResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Operational      bool     `json:"operational"`
	OpenNow          bool     `json:"open_now"`
	DeliveryFeeCents int64    `json:"delivery_fee_cents"`
	Categories       []string `json:"categories"`
}

type boardOrderResponse struct {
	ID          string    `json:"id"`
	Customer    string    `json:"customer"`
	Phone       string    `json:"phone"`
	Fulfillment string    `json:"fulfillment"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	CourierID   *string   `json:"courier_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type candidateCourierResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DeliveriesToday int    `json:"deliveries_today"`
}

type createTenantRequest struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	DeliveryFeeCents int64  `json:"delivery_fee_cents"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type dispatchCourierRequest struct {
	CourierID string `json:"courier_id"`
}

type createCourierRequest struct {
	Name string `json:"name"`
}

type createProductRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Category   string `json:"category"`
}

type resolveWithdrawalRequest struct {
	Approve bool `json:"approve"`
}

type requestWithdrawalRequest struct {
	AmountCents int64 `json:"amount_cents"`
}
