package tenantrepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/tenantrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/tenant"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// TenantRepositoryIntegrationTestSuite provides integration tests for
// TenantRepository using PostgreSQL containers.
type TenantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tenantrepo.GormTenantRepository
	tracker    *MockAggregateTracker
}

func (suite *TenantRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.Migrate(db))
}

func (suite *TenantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tenants").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = tenantrepo.NewGormTenantRepository(suite.db, suite.tracker)
}

func (suite *TenantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TenantRepositoryIntegrationTestSuite) createTestTenant(slug string) *tenant.Tenant {
	testTenant, err := tenant.NewTenant(kernel.NewUUID(), "Mario's Pizza", slug, kernel.MustNewMoney(400))
	suite.Require().NoError(err)
	return testTenant
}

func (suite *TenantRepositoryIntegrationTestSuite) TestRoundTrip_PreservesScheduleAndVocabulary() {
	ctx := context.Background()
	testTenant := suite.createTestTenant("marios-pizza")

	suite.Require().NoError(testTenant.Approve(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	suite.Require().NoError(testTenant.AddCategory("Pizzas"))
	suite.Require().NoError(testTenant.AddCategory("Drinks"))

	window, err := tenant.NewDayHours(18*60, 23*60)
	suite.Require().NoError(err)
	testTenant.SetOperatingHours(time.Monday, window)
	testTenant.SetOperatingHours(time.Sunday, tenant.ClosedDay())
	testTenant.AddHoliday(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTenant))

	restored, err := suite.repository.Get(ctx, testTenant.ID())
	suite.Require().NoError(err)

	suite.Equal("Mario's Pizza", restored.Name())
	suite.Equal("marios-pizza", restored.Slug())
	suite.Equal(tenant.SubscriptionActive, restored.Status())
	suite.Equal(int64(400), restored.DeliveryFee().Cents())
	suite.ElementsMatch([]string{"Pizzas", "Drinks"}, restored.Categories())

	monday, configured := restored.Hours().ConfiguredDay(time.Monday)
	suite.True(configured)
	suite.Equal(18*60, monday.OpenMinute)
	suite.Equal(23*60, monday.CloseMinute)

	sunday, configured := restored.Hours().ConfiguredDay(time.Sunday)
	suite.True(configured)
	suite.True(sunday.Closed)

	// Tuesday was never configured, so the always-open default applies.
	_, configured = restored.Hours().ConfiguredDay(time.Tuesday)
	suite.False(configured)
	suite.True(restored.IsOpenAt(time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)))

	// Christmas is a holiday regardless of the weekly schedule.
	suite.False(restored.IsOpenAt(time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC)))
}

func (suite *TenantRepositoryIntegrationTestSuite) TestGetBySlug() {
	ctx := context.Background()
	testTenant := suite.createTestTenant("marios-pizza")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTenant))

	restored, err := suite.repository.GetBySlug(ctx, "marios-pizza")
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testTenant.ID()))

	_, err = suite.repository.GetBySlug(ctx, "unknown-store")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TenantRepositoryIntegrationTestSuite) TestExcludedTenant_NeverReturned() {
	ctx := context.Background()
	testTenant := suite.createTestTenant("marios-pizza")
	testTenant.Exclude()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTenant))

	_, err := suite.repository.Get(ctx, testTenant.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetBySlug(ctx, "marios-pizza")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TenantRepositoryIntegrationTestSuite) TestGetAllBillingOverdue() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	overdue := suite.createTestTenant("overdue-store")
	suite.Require().NoError(overdue.Approve(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
	suite.Require().NoError(suite.repository.Add(ctx, overdue))

	current := suite.createTestTenant("current-store")
	suite.Require().NoError(current.Approve(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)))
	suite.Require().NoError(suite.repository.Add(ctx, current))

	pending := suite.createTestTenant("pending-store")
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tenants, err := suite.repository.GetAllBillingOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(tenants, 1)
	suite.True(tenants[0].ID().IsEqual(overdue.ID()))
}

func (suite *TenantRepositoryIntegrationTestSuite) TestUpdate_PersistsSuspension() {
	ctx := context.Background()
	testTenant := suite.createTestTenant("marios-pizza")
	suite.Require().NoError(testTenant.Approve(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTenant))

	suite.Require().NoError(testTenant.Suspend())
	suite.Require().NoError(suite.repository.Update(ctx, testTenant))

	restored, err := suite.repository.Get(ctx, testTenant.ID())
	suite.Require().NoError(err)
	suite.Equal(tenant.SubscriptionCanceled, restored.Status())
}

func TestTenantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryIntegrationTestSuite))
}
