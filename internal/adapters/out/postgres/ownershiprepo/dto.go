// Package ownershiprepo persists the session-to-order ownership grants that
// gate customer visibility. A grant is an append-only fact, never updated.
package ownershiprepo

import (
	"time"

	"github.com/google/uuid"
)

// GrantDTO represents one ownership grant row. The composite primary key
// makes repeated grants for the same pair idempotent.
type GrantDTO struct {
	SessionID string    `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	GrantedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for ownership grants.
func (GrantDTO) TableName() string {
	return "ownership_grants"
}
