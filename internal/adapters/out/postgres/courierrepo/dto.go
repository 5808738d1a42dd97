// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// A non-null active order marks a courier mid-delivery.
type CourierDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID  `gorm:"type:uuid;index;not null"`
	Name               string     `gorm:"not null"`
	Status             int        `gorm:"not null;index"`
	DeliveriesToday    int        `gorm:"not null"`
	LifetimeDeliveries int        `gorm:"not null"`
	Balance            int64      `gorm:"not null"`
	ActiveOrderID      *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	var activeOrderID *uuid.UUID
	if id := c.ActiveOrder(); id != nil {
		raw := id.Bytes()
		activeOrderID = &raw
	}

	return CourierDTO{
		ID:                 c.ID().Bytes(),
		TenantID:           c.TenantID().Bytes(),
		Name:               c.Name(),
		Status:             int(c.Status()),
		DeliveriesToday:    c.DeliveriesToday(),
		LifetimeDeliveries: c.LifetimeDeliveries(),
		Balance:            c.Balance().Cents(),
		ActiveOrderID:      activeOrderID,
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var activeOrderID *kernel.UUID
	if dto.ActiveOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.ActiveOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		activeOrderID = &oID
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		tenantID,
		dto.Name,
		courier.Status(dto.Status),
		dto.DeliveriesToday,
		dto.LifetimeDeliveries,
		balance,
		activeOrderID,
	)
}
