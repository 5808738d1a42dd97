package queries_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/tenant"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TrackOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresadapter.GormUnitOfWorkFactory
	handler   queries.TrackOrderQueryHandler
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupSuite() {
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
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewTrackOrderQueryHandler(db)
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tenants, orders, ownership_grants").Error)
}

func (suite *TrackOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) seedTrackedOrder(sessionID string, changeFor *kernel.Money) *order.Order {
	ctx := context.Background()

	store, err := tenant.NewTenant(kernel.NewUUID(), "Mario's Pizza", "marios-pizza", kernel.MustNewMoney(400))
	suite.Require().NoError(err)
	suite.Require().NoError(store.Approve(time.Now()))
	suite.Require().NoError(suite.factory.Create().TenantRepository().Add(ctx, store))

	item, err := order.NewItem(kernel.NewUUID(), "Margherita", kernel.MustNewMoney(2500), 1, "no basil")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		store.ID(),
		"Ana",
		"+5511999990000",
		order.FulfillmentDelivery,
		"Rua das Flores 10",
		order.NewCashPayment(changeFor),
		[]order.Item{item},
		kernel.MustNewMoney(400),
		time.Now(),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OwnershipRepository().Grant(ctx, sessionID, o.ID()))
	return o
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_OwnedOrder_ReturnsFullView() {
	changeFor := kernel.MustNewMoney(5000)
	o := suite.seedTrackedOrder("session-1", &changeFor)

	query, err := queries.NewTrackOrderQuery("session-1", o.ID())
	suite.Require().NoError(err)

	tracked, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(tracked.ID.IsEqual(o.ID()))
	suite.Equal("Mario's Pizza", tracked.TenantName)
	suite.Equal("Pending", tracked.Status)
	suite.Equal("Delivery", tracked.Fulfillment)
	suite.Equal("Rua das Flores 10", tracked.Address)
	suite.Equal(int64(400), tracked.DeliveryFee)
	suite.Equal(int64(2900), tracked.Total)

	suite.Require().Len(tracked.Items, 1)
	suite.Equal("Margherita", tracked.Items[0].Name)
	suite.Equal(int64(2500), tracked.Items[0].UnitPrice)
	suite.Equal(1, tracked.Items[0].Qty)

	suite.Require().NotNil(tracked.ChangeDue)
	suite.Equal(int64(2100), *tracked.ChangeDue)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_ForeignSession_ReturnsNotFound() {
	o := suite.seedTrackedOrder("session-1", nil)

	query, err := queries.NewTrackOrderQuery("session-2", o.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewTrackOrderQuery("session-1", kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_NoChangeRequested_OmitsChangeDue() {
	o := suite.seedTrackedOrder("session-1", nil)

	query, err := queries.NewTrackOrderQuery("session-1", o.ID())
	suite.Require().NoError(err)

	tracked, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Nil(tracked.ChangeDue)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TrackOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrTrackOrderQueryIsNotConstructed)
}

func TestTrackOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackOrderQueryHandlerTestSuite))
}
