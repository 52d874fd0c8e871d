package cmd

import (
	"supermarket/internal/adapters/out/postgres"
	"supermarket/internal/core/application/usecases/commands"
	"supermarket/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveDriverCommandHandler() commands.RemoveDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDriversQueryHandler() queries.GetActiveDriversQueryHandler {
	return queries.NewGetActiveDriversQueryHandler(c.gormDB)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
