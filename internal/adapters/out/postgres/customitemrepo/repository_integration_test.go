package customitemrepo_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/customitemrepo"
	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CustomItemRepositoryIntegrationTestSuite provides integration tests for
// CustomItemRepository using PostgreSQL containers.
type CustomItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customitemrepo.GormCustomItemRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customitemrepo.CustomItemDTO{}))
}

func (suite *CustomItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE custom_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customitemrepo.NewGormCustomItemRepository(suite.db, suite.tracker)
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomItemRepositoryIntegrationTestSuite) createTestItem(guestID *kernel.UUID) *customitem.CustomItem {
	price, err := kernel.NewMoney(800)
	suite.Require().NoError(err)

	entity, err := customitem.NewCustomItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), guestID,
		"off-menu satay", 3, price, "extra peanut sauce",
	)
	suite.Require().NoError(err)
	return entity
}

func (suite *CustomItemRepositoryIntegrationTestSuite) addItem(entity *customitem.CustomItem) {
	suite.tracker.On("TrackAggregate", entity.ID(), entity).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), entity))
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	guestID := kernel.NewUUID()
	original := suite.createTestItem(&guestID)
	suite.addItem(original)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.StallID(), retrieved.StallID())
	suite.Equal(original.TableID(), retrieved.TableID())
	suite.Require().NotNil(retrieved.GuestID())
	suite.Equal(guestID, *retrieved.GuestID())
	suite.Equal("off-menu satay", retrieved.Name())
	suite.Equal(item.Incoming, retrieved.Status())
	suite.Equal(3, retrieved.Quantity())
	suite.True(original.Price().IsEqual(retrieved.Price()))
	suite.Equal("extra peanut sauce", retrieved.Remarks())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TestAddAndGet_NoGuest() {
	ctx := context.Background()
	original := suite.createTestItem(nil)
	suite.addItem(original)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.GuestID())
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TestGetStatus() {
	ctx := context.Background()
	entity := suite.createTestItem(nil)
	suite.addItem(entity)

	status, err := suite.repository.GetStatus(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.Equal(item.Incoming, status)
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TestGetStatus_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetStatus(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TestSetStatus_PersistsNewStatus() {
	ctx := context.Background()
	entity := suite.createTestItem(nil)
	suite.addItem(entity)

	suite.Require().NoError(suite.repository.SetStatus(ctx, entity.ID(), item.Cancelled))

	status, err := suite.repository.GetStatus(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.Equal(item.Cancelled, status)
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TestSetStatus_NotFound() {
	ctx := context.Background()

	err := suite.repository.SetStatus(ctx, kernel.NewUUID(), item.Preparing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CustomItemRepositoryIntegrationTestSuite) TestRemove() {
	ctx := context.Background()
	entity := suite.createTestItem(nil)
	suite.addItem(entity)

	suite.Require().NoError(suite.repository.Remove(ctx, entity.ID()))

	_, err := suite.repository.Get(ctx, entity.ID())
	suite.Require().Error(err)

	err = suite.repository.Remove(ctx, entity.ID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestCustomItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomItemRepositoryIntegrationTestSuite))
}
