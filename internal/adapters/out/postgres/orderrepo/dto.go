// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The item snapshot taken at checkout is stored as a jsonb
// column, so later catalog edits cannot alter a placed order.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs optimistic concurrency control on updates.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	Version       int        `gorm:"not null"`
	Customer      string     `gorm:"not null"`
	Phone         string     `gorm:"not null"`
	Fulfillment   int        `gorm:"not null"`
	Address       string
	PaymentMethod int        `gorm:"not null"`
	ChangeFor     *int64
	Items         []ItemDTO  `gorm:"serializer:json;type:jsonb;not null"`
	DeliveryFee   int64      `gorm:"not null"`
	Total         int64      `gorm:"not null"`
	Status        int        `gorm:"not null;index"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one snapshotted order line inside the items jsonb column.
type ItemDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Qty       int    `json:"qty"`
	Note      string `json:"note"`
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var changeFor *int64
	if cf := o.Payment().ChangeFor(); cf != nil {
		cents := cf.Cents()
		changeFor = &cents
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Cents(),
			Qty:       item.Qty(),
			Note:      item.Note(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		TenantID:      o.TenantID().Bytes(),
		Version:       o.Version(),
		Customer:      o.Customer(),
		Phone:         o.Phone(),
		Fulfillment:   int(o.Fulfillment()),
		Address:       o.Address(),
		PaymentMethod: int(o.Payment().Method()),
		ChangeFor:     changeFor,
		Items:         items,
		DeliveryFee:   o.DeliveryFee().Cents(),
		Total:         o.Total().Cents(),
		Status:        int(o.Status()),
		CourierID:     courierID,
		CreatedAt:     o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromString(itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, unitPrice, itemDTO.Qty, itemDTO.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payment, err := restorePayment(dto)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		tenantID,
		dto.Version,
		dto.Customer,
		dto.Phone,
		order.FulfillmentType(dto.Fulfillment),
		dto.Address,
		payment,
		items,
		deliveryFee,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
		courierID,
	)
}

func restorePayment(dto OrderDTO) (order.Payment, error) {
	method := order.PaymentMethod(dto.PaymentMethod)
	if method == order.PaymentCash {
		var changeFor *kernel.Money
		if dto.ChangeFor != nil {
			cf, err := kernel.NewMoney(*dto.ChangeFor)
			if err != nil {
				return order.Payment{}, err
			}
			changeFor = &cf
		}
		return order.NewCashPayment(changeFor), nil
	}

	return order.NewPayment(method)
}
