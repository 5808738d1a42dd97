package cmd

import (
	"log/slog"
	"os"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/memory"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. One instance is
// built at startup; every Create method returns a ready-to-use handler that
// shares the root's database handle and cart store.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  *memory.SessionCartStore
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  memory.NewSessionCartStore(),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(c.cartStore, f)
}

func (c *CompositionRoot) CreateAdjustCartQuantityCommandHandler() commands.AdjustCartQuantityCommandHandler {
	return commands.NewAdjustCartQuantityCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateSetCartQuantityCommandHandler() commands.SetCartQuantityCommandHandler {
	return commands.NewSetCartQuantityCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(c.cartStore, f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchCourierCommandHandler() commands.DispatchCourierCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTenantCommandHandler() commands.CreateTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTenantCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveTenantCommandHandler() commands.ApproveTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveTenantCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectTenantCommandHandler() commands.RejectTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectTenantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestWithdrawalCommandHandler() commands.RequestWithdrawalCommandHandler {
	var f commands.WithdrawalUoWFactory = FuncWithdrawalUoWFactory(func() commands.WithdrawalUoW {
		return c.uowFactory.Create()
	})
	minimum := kernel.MustNewMoney(c.config.WithdrawalMinimumCents)
	return commands.NewRequestWithdrawalCommandHandler(f, minimum)
}

func (c *CompositionRoot) CreateResolveWithdrawalCommandHandler() commands.ResolveWithdrawalCommandHandler {
	var f commands.WithdrawalUoWFactory = FuncWithdrawalUoWFactory(func() commands.WithdrawalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveWithdrawalCommandHandler(f)
}

func (c *CompositionRoot) CreateResetDailyCountersCommandHandler() commands.ResetDailyCountersCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetDailyCountersCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepOverdueSubscriptionsCommandHandler() commands.SweepOverdueSubscriptionsCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepOverdueSubscriptionsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTenantOrderBoardQueryHandler() queries.GetTenantOrderBoardQueryHandler {
	return queries.NewGetTenantOrderBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSessionOrdersQueryHandler() queries.GetSessionOrdersQueryHandler {
	return queries.NewGetSessionOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCandidateCouriersQueryHandler() queries.GetCandidateCouriersQueryHandler {
	return queries.NewGetCandidateCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStorefrontStatusQueryHandler() queries.GetStorefrontStatusQueryHandler {
	return queries.NewGetStorefrontStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the API server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.cartStore, httpin.Handlers{
		AddCartItem:        c.CreateAddCartItemCommandHandler(),
		AdjustCartQuantity: c.CreateAdjustCartQuantityCommandHandler(),
		SetCartQuantity:    c.CreateSetCartQuantityCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),
		Checkout:           c.CreateCheckoutCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		DispatchCourier:    c.CreateDispatchCourierCommandHandler(),
		CreateTenant:       c.CreateCreateTenantCommandHandler(),
		ApproveTenant:      c.CreateApproveTenantCommandHandler(),
		RejectTenant:       c.CreateRejectTenantCommandHandler(),
		CreateCourier:      c.CreateCreateCourierCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		RequestWithdrawal:  c.CreateRequestWithdrawalCommandHandler(),
		ResolveWithdrawal:  c.CreateResolveWithdrawalCommandHandler(),

		TenantOrderBoard:  c.CreateGetTenantOrderBoardQueryHandler(),
		SessionOrders:     c.CreateGetSessionOrdersQueryHandler(),
		TrackOrder:        c.CreateTrackOrderQueryHandler(),
		CandidateCouriers: c.CreateGetCandidateCouriersQueryHandler(),
		StorefrontStatus:  c.CreateGetStorefrontStatusQueryHandler(),
	})
}

// CreateJobManager assembles the scheduled maintenance jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateResetDailyCountersCommandHandler(),
		c.CreateSweepOverdueSubscriptionsCommandHandler(),
		c.logger,
	)
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncWithdrawalUoWFactory func() commands.WithdrawalUoW

func (f FuncWithdrawalUoWFactory) Create() commands.WithdrawalUoW {
	return f()
}
