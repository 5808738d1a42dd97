package withdrawalrepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/withdrawalrepo"
	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
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

// WithdrawalRepositoryIntegrationTestSuite provides integration tests for
// WithdrawalRepository using PostgreSQL containers.
type WithdrawalRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *withdrawalrepo.GormWithdrawalRepository
	tracker    *MockAggregateTracker
}

func (suite *WithdrawalRepositoryIntegrationTestSuite) SetupSuite() {
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

func (suite *WithdrawalRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE withdrawal_requests").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = withdrawalrepo.NewGormWithdrawalRepository(suite.db, suite.tracker)
}

func (suite *WithdrawalRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WithdrawalRepositoryIntegrationTestSuite) createTestRequest() *courier.WithdrawalRequest {
	request, err := courier.RestoreWithdrawalRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.MustNewMoney(1500),
		courier.WithdrawalRequested,
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return request
}

func (suite *WithdrawalRepositoryIntegrationTestSuite) TestRoundTrip() {
	ctx := context.Background()
	request := suite.createTestRequest()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, request))

	restored, err := suite.repository.Get(ctx, request.ID())
	suite.Require().NoError(err)

	suite.True(restored.CourierID().IsEqual(request.CourierID()))
	suite.Equal(int64(1500), restored.Amount().Cents())
	suite.Equal(courier.WithdrawalRequested, restored.Status())
	suite.True(restored.RequestedAt().Equal(request.RequestedAt()))
}

func (suite *WithdrawalRepositoryIntegrationTestSuite) TestUpdate_PersistsResolution() {
	ctx := context.Background()
	request := suite.createTestRequest()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, request))

	suite.Require().NoError(request.Approve())
	suite.Require().NoError(suite.repository.Update(ctx, request))

	restored, err := suite.repository.Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.WithdrawalApproved, restored.Status())
}

func (suite *WithdrawalRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestWithdrawalRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalRepositoryIntegrationTestSuite))
}
