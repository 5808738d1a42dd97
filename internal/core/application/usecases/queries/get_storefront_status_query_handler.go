package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/tenant"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStorefrontStatusQueryHandler resolves a storefront by slug and computes
// its live open/closed state from the stored schedule and holidays.
type GetStorefrontStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetStorefrontStatusQueryHandler creates a handler for storefront lookups.
func NewGetStorefrontStatusQueryHandler(db *gorm.DB) GetStorefrontStatusQueryHandler {
	return GetStorefrontStatusQueryHandler{db: db}
}

type storefrontHoursRow struct {
	Day         int  `json:"day"`
	OpenMinute  int  `json:"open_minute"`
	CloseMinute int  `json:"close_minute"`
	Closed      bool `json:"closed"`
}

// Handle executes the lookup. Returns ObjectNotFoundError when no storefront
// carries the slug or when the storefront is excluded from the platform.
func (h GetStorefrontStatusQueryHandler) Handle(
	ctx context.Context,
	query GetStorefrontStatusQuery,
) (*GetStorefrontStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			slug,
			status,
			delivery_fee,
			next_billing_date,
			categories,
			hours,
			holidays,
			excluded
		FROM tenants
		WHERE slug = ? AND excluded = false
	`, query.Slug()).Row()

	var id uuid.UUID
	var name, slug string
	var status int
	var deliveryFee int64
	var nextBillingDate time.Time
	var categoriesJSON, hoursJSON, holidaysJSON []byte
	var excluded bool

	err := row.Scan(
		&id,
		&name,
		&slug,
		&status,
		&deliveryFee,
		&nextBillingDate,
		&categoriesJSON,
		&hoursJSON,
		&holidaysJSON,
		&excluded,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("slug", query.Slug())
		}
		return nil, err
	}

	store, err := restoreStorefront(
		id, name, slug, status, deliveryFee, nextBillingDate,
		categoriesJSON, hoursJSON, holidaysJSON, excluded,
	)
	if err != nil {
		return nil, err
	}

	return &GetStorefrontStatusQueryResponse{
		ID:          store.ID(),
		Name:        store.Name(),
		Slug:        store.Slug(),
		Operational: store.IsOperational(),
		OpenNow:     store.IsOpenAt(time.Now()),
		DeliveryFee: store.DeliveryFee().Cents(),
		Categories:  store.Categories(),
	}, nil
}

func restoreStorefront(
	id uuid.UUID,
	name, slug string,
	status int,
	deliveryFee int64,
	nextBillingDate time.Time,
	categoriesJSON, hoursJSON, holidaysJSON []byte,
	excluded bool,
) (*tenant.Tenant, error) {
	tenantID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(deliveryFee)
	if err != nil {
		return nil, err
	}

	var categories []string
	if err = json.Unmarshal(categoriesJSON, &categories); err != nil {
		return nil, err
	}

	var hoursRows []storefrontHoursRow
	if err = json.Unmarshal(hoursJSON, &hoursRows); err != nil {
		return nil, err
	}
	var hours tenant.OperatingHours
	for _, r := range hoursRows {
		day := tenant.DayHours{OpenMinute: r.OpenMinute, CloseMinute: r.CloseMinute, Closed: r.Closed}
		hours.SetDay(time.Weekday(r.Day), day)
	}

	var holidayKeys []string
	if err = json.Unmarshal(holidaysJSON, &holidayKeys); err != nil {
		return nil, err
	}
	holidays := make([]time.Time, 0, len(holidayKeys))
	for _, key := range holidayKeys {
		day, parseErr := time.Parse("2006-01-02", key)
		if parseErr != nil {
			return nil, parseErr
		}
		holidays = append(holidays, day)
	}

	return tenant.RestoreTenant(
		tenantID,
		name,
		slug,
		tenant.SubscriptionStatus(status),
		fee,
		nextBillingDate,
		categories,
		hours,
		holidays,
		excluded,
	)
}
