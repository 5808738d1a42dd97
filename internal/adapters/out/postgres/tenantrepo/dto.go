// Package tenantrepo provides data transfer objects and mapping functions for
// tenant persistence. It converts between the tenant domain aggregate and its
// relational representation, with the vocabulary, weekly schedule and holiday
// list stored as jsonb columns.
package tenantrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

const holidayLayout = "2006-01-02"

// TenantDTO represents the database structure for persisting tenant aggregates.
type TenantDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"not null"`
	Slug            string     `gorm:"uniqueIndex;not null"`
	Status          int        `gorm:"not null"`
	DeliveryFee     int64      `gorm:"not null"`
	NextBillingDate time.Time  `gorm:"not null"`
	Categories      []string   `gorm:"serializer:json;type:jsonb;not null"`
	Hours           []HoursDTO `gorm:"serializer:json;type:jsonb;not null"`
	Holidays        []string   `gorm:"serializer:json;type:jsonb;not null"`
	Excluded        bool       `gorm:"not null;index"`
}

// TableName specifies the database table name for tenant entities.
func (TenantDTO) TableName() string {
	return "tenants"
}

// HoursDTO is one explicitly configured weekday window inside the hours
// jsonb column. Days a tenant never configured are not stored, so the
// always-open default survives a round trip.
type HoursDTO struct {
	Day         int  `json:"day"`
	OpenMinute  int  `json:"open_minute"`
	CloseMinute int  `json:"close_minute"`
	Closed      bool `json:"closed"`
}

func fromDomain(t *tenant.Tenant) TenantDTO {
	hours := make([]HoursDTO, 0)
	for day := time.Sunday; day <= time.Saturday; day++ {
		window, ok := t.Hours().ConfiguredDay(day)
		if !ok {
			continue
		}
		hours = append(hours, HoursDTO{
			Day:         int(day),
			OpenMinute:  window.OpenMinute,
			CloseMinute: window.CloseMinute,
			Closed:      window.Closed,
		})
	}

	holidays := make([]string, 0, len(t.Holidays()))
	for _, h := range t.Holidays() {
		holidays = append(holidays, h.Format(holidayLayout))
	}

	categories := t.Categories()
	if categories == nil {
		categories = make([]string, 0)
	}

	return TenantDTO{
		ID:              t.ID().Bytes(),
		Name:            t.Name(),
		Slug:            t.Slug(),
		Status:          int(t.Status()),
		DeliveryFee:     t.DeliveryFee().Cents(),
		NextBillingDate: t.NextBillingDate(),
		Categories:      categories,
		Hours:           hours,
		Holidays:        holidays,
		Excluded:        t.IsExcluded(),
	}
}

func toDomain(dto TenantDTO) (*tenant.Tenant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	var hours tenant.OperatingHours
	for _, window := range dto.Hours {
		hours.SetDay(time.Weekday(window.Day), tenant.DayHours{
			OpenMinute:  window.OpenMinute,
			CloseMinute: window.CloseMinute,
			Closed:      window.Closed,
		})
	}

	holidays := make([]time.Time, 0, len(dto.Holidays))
	for _, key := range dto.Holidays {
		day, parseErr := time.Parse(holidayLayout, key)
		if parseErr != nil {
			return nil, parseErr
		}
		holidays = append(holidays, day)
	}

	return tenant.RestoreTenant(
		id,
		dto.Name,
		dto.Slug,
		tenant.SubscriptionStatus(dto.Status),
		fee,
		dto.NextBillingDate,
		dto.Categories,
		hours,
		holidays,
		dto.Excluded,
	)
}
