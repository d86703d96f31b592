package queries_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/customitemrepo"
	"foodcourt/internal/adapters/out/postgres/itemrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetKitchenQueueQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetKitchenQueueQueryHandler
	orderRepo  *orderrepo.GormOrderRepository
	itemRepo   *itemrepo.GormOrderItemRepository
	customRepo *customitemrepo.GormCustomItemRepository
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{}, &customitemrepo.CustomItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetKitchenQueueQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.itemRepo = itemrepo.NewGormOrderItemRepository(db, &mockAggregateTracker{})
	suite.customRepo = customitemrepo.NewGormCustomItemRepository(db, &mockAggregateTracker{})
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, custom_items").Error)
}

// addOrder seeds a pending parent order placed at the given time.
func (suite *GetKitchenQueueQueryHandlerTestSuite) addOrder(placedAt time.Time) kernel.UUID {
	price, err := kernel.NewMoney(900)
	suite.Require().NoError(err)

	ord, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Pending, price, placedAt, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), ord))
	return ord.ID()
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) addStandardItem(
	orderID kernel.UUID, status item.Status,
) *order.Item {
	ctx := context.Background()

	price, err := kernel.NewMoney(450)
	suite.Require().NoError(err)

	entity, err := order.NewItem(kernel.NewUUID(), orderID, kernel.NewUUID(), 1, price, "spicy")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.itemRepo.Add(ctx, entity))

	if status != item.Incoming {
		suite.Require().NoError(suite.itemRepo.SetStatus(ctx, entity.ID(), status))
	}
	return entity
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) addCustomItem(status item.Status) *customitem.CustomItem {
	ctx := context.Background()

	price, err := kernel.NewMoney(700)
	suite.Require().NoError(err)

	entity, err := customitem.NewCustomItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"off-menu porridge", 1, price, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customRepo.Add(ctx, entity))

	if status != item.Incoming {
		suite.Require().NoError(suite.customRepo.SetStatus(ctx, entity.ID(), status))
	}
	return entity
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) addCustomItemPlacedAt(
	placedAt time.Time, status item.Status,
) kernel.UUID {
	price, err := kernel.NewMoney(700)
	suite.Require().NoError(err)

	entity, err := customitem.RestoreCustomItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"off-menu porridge", status, 1, price, placedAt, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customRepo.Add(context.Background(), entity))
	return entity.ID()
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_MixedKinds_ReturnsUnifiedQueue() {
	orderID := suite.addOrder(time.Now())
	standard := suite.addStandardItem(orderID, item.Incoming)
	custom := suite.addCustomItem(item.Preparing)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Incoming sorts before preparing.
	suite.Equal("standard", result[0].Kind)
	suite.Equal(standard.ID(), result[0].ItemID)
	suite.Require().NotNil(result[0].OrderID)
	suite.Equal(orderID, *result[0].OrderID)
	suite.Equal("Incoming", result[0].Status)
	suite.Equal("spicy", result[0].Notes)
	suite.Empty(result[0].Name)

	suite.Equal("custom", result[1].Kind)
	suite.Equal(custom.ID(), result[1].ItemID)
	suite.Nil(result[1].OrderID)
	suite.Equal("off-menu porridge", result[1].Name)
	suite.Equal("Preparing", result[1].Status)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_TerminalItemsExcluded() {
	suite.addStandardItem(suite.addOrder(time.Now()), item.Served)
	suite.addStandardItem(suite.addOrder(time.Now()), item.Cancelled)
	suite.addCustomItem(item.Served)
	queued := suite.addCustomItem(item.Incoming)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(queued.ID(), result[0].ItemID)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_OldestFirstWithinStatus() {
	now := time.Now()
	oldest := suite.addStandardItem(suite.addOrder(now.Add(-30*time.Minute)), item.Incoming)
	newest := suite.addStandardItem(suite.addOrder(now.Add(-10*time.Minute)), item.Incoming)
	middle := suite.addCustomItemPlacedAt(now.Add(-20*time.Minute), item.Incoming)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(oldest.ID(), result[0].ItemID)
	suite.Equal(middle, result[1].ItemID)
	suite.Equal(newest.ID(), result[2].ItemID)
}

func (suite *GetKitchenQueueQueryHandlerTestSuite) TestHandle_NotConstructedQuery_Fails() {
	var query queries.GetKitchenQueueQuery

	_, err := suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
}

func TestGetKitchenQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetKitchenQueueQueryHandlerTestSuite))
}
