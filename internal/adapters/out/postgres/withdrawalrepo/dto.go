// Package withdrawalrepo provides data transfer objects and mapping functions
// for withdrawal request persistence.
package withdrawalrepo

import (
	"time"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// WithdrawalDTO represents the database structure for persisting withdrawal requests.
type WithdrawalDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount      int64     `gorm:"not null"`
	Status      int       `gorm:"not null;index"`
	RequestedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for withdrawal requests.
func (WithdrawalDTO) TableName() string {
	return "withdrawal_requests"
}

func fromDomain(w *courier.WithdrawalRequest) WithdrawalDTO {
	return WithdrawalDTO{
		ID:          w.ID().Bytes(),
		CourierID:   w.CourierID().Bytes(),
		Amount:      w.Amount().Cents(),
		Status:      int(w.Status()),
		RequestedAt: w.RequestedAt(),
	}
}

func toDomain(dto WithdrawalDTO) (*courier.WithdrawalRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return courier.RestoreWithdrawalRequest(
		id,
		courierID,
		amount,
		courier.WithdrawalStatus(dto.Status),
		dto.RequestedAt,
	)
}
