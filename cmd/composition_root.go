package cmd

import (
	"log/slog"

	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	rollup     *services.OrderRollup
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		rollup:     services.NewOrderRollup(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAdvanceItemCommandHandler() commands.AdvanceItemCommandHandler {
	return commands.NewAdvanceItemCommandHandler(c.itemUoWFactory(), c.rollup, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRevertItemCommandHandler() commands.RevertItemCommandHandler {
	return commands.NewRevertItemCommandHandler(c.itemUoWFactory(), c.rollup, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelItemCommandHandler() commands.CancelItemCommandHandler {
	return commands.NewCancelItemCommandHandler(c.itemUoWFactory(), c.rollup, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateCustomItemCommandHandler() commands.CreateCustomItemCommandHandler {
	var f commands.CustomItemUoWFactory = FuncCustomItemUoWFactory(func() commands.CustomItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomItemCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRemoveCustomItemCommandHandler() commands.RemoveCustomItemCommandHandler {
	var f commands.CustomItemUoWFactory = FuncCustomItemUoWFactory(func() commands.CustomItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCustomItemCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenQueueQueryHandler() queries.GetKitchenQueueQueryHandler {
	return queries.NewGetKitchenQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleItemsQueryHandler() queries.GetStaleItemsQueryHandler {
	return queries.NewGetStaleItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncCustomItemUoWFactory func() commands.CustomItemUoW

func (f FuncCustomItemUoWFactory) Create() commands.CustomItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
