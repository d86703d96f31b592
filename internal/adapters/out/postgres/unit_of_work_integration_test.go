package postgres_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/postgres/customitemrepo"
	"foodcourt/internal/adapters/out/postgres/itemrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/tablerepo"
	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/dining"
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the transactional behavior of the
// GORM unit of work across all four repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&itemrepo.ItemDTO{},
		&customitemrepo.CustomItemDTO{},
		&tablerepo.TableDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, custom_items, tables").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	price, err := kernel.NewMoney(1500)
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, "")
	suite.Require().NoError(err)
	return ord
}

func (suite *UnitOfWorkIntegrationTestSuite) newItem(orderID kernel.UUID) *order.Item {
	price, err := kernel.NewMoney(750)
	suite.Require().NoError(err)

	entity, err := order.NewItem(kernel.NewUUID(), orderID, kernel.NewUUID(), 2, price, "")
	suite.Require().NoError(err)
	return entity
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) itemCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&itemrepo.ItemDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_ReturnsIsolatedInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin on an already-open transaction is a no-op.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit and rollback without a transaction fail.
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepositoryTransaction_Commit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	ord := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.OrderItemRepository().Add(ctx, suite.newItem(ord.ID())))
	suite.Require().NoError(uow.OrderItemRepository().Add(ctx, suite.newItem(ord.ID())))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
	suite.Equal(int64(2), suite.itemCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepositoryTransaction_Rollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	ord := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.OrderItemRepository().Add(ctx, suite.newItem(ord.ID())))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())
	suite.Equal(int64(0), suite.itemCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_ImmediateExecution() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Without Begin, repository operations run on the main connection.
	ord := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestItemStatusChangeWorkflow() {
	ctx := context.Background()

	// Seed an order with two items.
	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	ord := suite.newOrder()
	first := suite.newItem(ord.ID())
	second := suite.newItem(ord.ID())
	suite.Require().NoError(setup.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(setup.OrderItemRepository().Add(ctx, first))
	suite.Require().NoError(setup.OrderItemRepository().Add(ctx, second))
	suite.Require().NoError(setup.Commit(ctx))

	// Serve both items and roll the order up in one transaction, the way
	// the status change handlers do.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderItemRepository().SetStatus(ctx, first.ID(), item.Served))
	suite.Require().NoError(uow.OrderItemRepository().SetStatus(ctx, second.ID(), item.Served))

	locked, err := uow.OrderRepository().GetForUpdate(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.ApplyRollup(order.Completed))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	final, err := verify.OrderRepository().Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, final.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTableAndCustomItemRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	table, err := dining.NewTable(kernel.NewUUID(), "A1")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TableRepository().Add(ctx, table))

	resolved, err := uow.TableRepository().GetActiveByNumber(ctx, "A1")
	suite.Require().NoError(err)
	suite.Equal(table.ID(), resolved.ID())

	price, err := kernel.NewMoney(900)
	suite.Require().NoError(err)
	custom, err := customitem.NewCustomItem(
		kernel.NewUUID(), kernel.NewUUID(), table.ID(), nil, "off-menu satay", 1, price, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CustomItemRepository().Add(ctx, custom))

	status, err := uow.CustomItemRepository().GetStatus(ctx, custom.ID())
	suite.Require().NoError(err)
	suite.Equal(item.Incoming, status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRowLockSerializesConcurrentRollups() {
	ctx := context.Background()

	setup := suite.factory.Create()
	ord := suite.newOrder()
	suite.Require().NoError(setup.OrderRepository().Add(ctx, ord))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	_, err := first.OrderRepository().GetForUpdate(ctx, ord.ID())
	suite.Require().NoError(err)

	// A second transaction trying to lock the same row blocks until the
	// first commits.
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))

	acquired := make(chan error, 1)
	go func() {
		_, lockErr := second.OrderRepository().GetForUpdate(ctx, ord.ID())
		acquired <- lockErr
		_ = second.Rollback(ctx)
	}()

	select {
	case <-acquired:
		suite.Fail("second transaction acquired the row lock while the first still held it")
	case <-time.After(200 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit(ctx))

	select {
	case lockErr := <-acquired:
		suite.Require().NoError(lockErr)
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never acquired the row lock")
	}
}

var _ ports.UnitOfWork = (*postgres.GormUnitOfWork)(nil)

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
