package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// migration is one versioned schema change. Versions are applied in order
// and recorded in schema_migrations, so a restart only runs what is new.
type migration struct {
	version int
	name    string
	up      func(tx *gorm.DB) error
}

type migrationRecord struct {
	Version   int `gorm:"primaryKey"`
	Name      string
	AppliedAt time.Time
}

func (migrationRecord) TableName() string {
	return "schema_migrations"
}

// Migrate brings the database schema up to date. Each pending migration runs
// in its own transaction together with its schema_migrations record.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&migrationRecord{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations: %w", err)
	}

	for _, m := range migrations() {
		var count int64
		err := db.Model(&migrationRecord{}).Where("version = ?", m.version).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if upErr := m.up(tx); upErr != nil {
				return upErr
			}
			return tx.Create(&migrationRecord{
				Version:   m.version,
				Name:      m.name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
	}

	return nil
}

func migrations() []migration {
	return []migration{
		{
			version: 1,
			name:    "storefront core tables",
			up: func(tx *gorm.DB) error {
				statements := []string{
					`CREATE TABLE tenants (
						id uuid PRIMARY KEY,
						name text NOT NULL,
						slug text NOT NULL,
						status integer NOT NULL,
						delivery_fee bigint NOT NULL,
						next_billing_date timestamptz NOT NULL,
						categories jsonb NOT NULL DEFAULT '[]',
						hours jsonb NOT NULL DEFAULT '[]',
						holidays jsonb NOT NULL DEFAULT '[]',
						excluded boolean NOT NULL DEFAULT false
					)`,
					`CREATE UNIQUE INDEX idx_tenants_slug ON tenants (slug)`,
					`CREATE INDEX idx_tenants_excluded ON tenants (excluded)`,
					`CREATE TABLE products (
						id uuid PRIMARY KEY,
						tenant_id uuid NOT NULL,
						name text NOT NULL,
						price bigint NOT NULL,
						category text NOT NULL,
						note text NOT NULL DEFAULT '',
						available boolean NOT NULL DEFAULT true
					)`,
					`CREATE INDEX idx_products_tenant_id ON products (tenant_id)`,
					`CREATE TABLE orders (
						id uuid PRIMARY KEY,
						tenant_id uuid NOT NULL,
						version integer NOT NULL DEFAULT 1,
						customer text NOT NULL,
						phone text NOT NULL,
						fulfillment integer NOT NULL,
						address text NOT NULL DEFAULT '',
						payment_method integer NOT NULL,
						change_for bigint,
						items jsonb NOT NULL DEFAULT '[]',
						delivery_fee bigint NOT NULL,
						total bigint NOT NULL,
						status integer NOT NULL,
						courier_id uuid,
						created_at timestamptz NOT NULL
					)`,
					`CREATE INDEX idx_orders_tenant_id ON orders (tenant_id)`,
					`CREATE INDEX idx_orders_status ON orders (status)`,
					`CREATE INDEX idx_orders_courier_id ON orders (courier_id)`,
					`CREATE TABLE couriers (
						id uuid PRIMARY KEY,
						tenant_id uuid NOT NULL,
						name text NOT NULL,
						status integer NOT NULL,
						deliveries_today integer NOT NULL DEFAULT 0,
						lifetime_deliveries integer NOT NULL DEFAULT 0,
						balance bigint NOT NULL DEFAULT 0,
						active_order_id uuid
					)`,
					`CREATE INDEX idx_couriers_tenant_id ON couriers (tenant_id)`,
					`CREATE INDEX idx_couriers_status ON couriers (status)`,
					`CREATE INDEX idx_couriers_active_order_id ON couriers (active_order_id)`,
					`CREATE TABLE ownership_grants (
						session_id text NOT NULL,
						order_id uuid NOT NULL,
						granted_at timestamptz NOT NULL,
						PRIMARY KEY (session_id, order_id)
					)`,
				}
				for _, stmt := range statements {
					if err := tx.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			version: 2,
			name:    "courier withdrawal requests",
			up: func(tx *gorm.DB) error {
				statements := []string{
					`CREATE TABLE withdrawal_requests (
						id uuid PRIMARY KEY,
						courier_id uuid NOT NULL,
						amount bigint NOT NULL,
						status integer NOT NULL,
						requested_at timestamptz NOT NULL
					)`,
					`CREATE INDEX idx_withdrawal_requests_courier_id ON withdrawal_requests (courier_id)`,
					`CREATE INDEX idx_withdrawal_requests_status ON withdrawal_requests (status)`,
				}
				for _, stmt := range statements {
					if err := tx.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
