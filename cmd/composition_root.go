package cmd

import (
	"context"
	"errors"
	"log/slog"

	"shiptrack/internal/adapters/out/notifier"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/access"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/jobs"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  notifier.NewSlogPublisher(logger),
		logger:     logger,
	}
}

// EnsureAccessControl seeds the access-control aggregate with the initial
// administrator when the store is empty. Idempotent: a populated store is
// left untouched, whatever administrator it currently names.
func (c *CompositionRoot) EnsureAccessControl(ctx context.Context, adminToken string) error {
	admin, err := kernel.NewIdentity(adminToken)
	if err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	_, err = uow.AccessRepository().Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := access.NewAccessControl(admin)
	if err != nil {
		return err
	}

	if err = uow.AccessRepository().Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (c *CompositionRoot) CreateTransferOwnershipCommandHandler() commands.TransferOwnershipCommandHandler {
	return commands.NewTransferOwnershipCommandHandler(c.accessUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAcceptOwnershipCommandHandler() commands.AcceptOwnershipCommandHandler {
	return commands.NewAcceptOwnershipCommandHandler(c.accessUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddManagerCommandHandler() commands.AddManagerCommandHandler {
	return commands.NewAddManagerCommandHandler(c.accessUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateFireManagerCommandHandler() commands.FireManagerCommandHandler {
	return commands.NewFireManagerCommandHandler(c.accessUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddEmployeeCommandHandler() commands.AddEmployeeCommandHandler {
	return commands.NewAddEmployeeCommandHandler(c.accessUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateFireEmployeeCommandHandler() commands.FireEmployeeCommandHandler {
	return commands.NewFireEmployeeCommandHandler(c.accessUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddShipmentCommandHandler() commands.AddShipmentCommandHandler {
	return commands.NewAddShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	return commands.NewChangeShipmentStatusCommandHandler(c.shipmentUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCheckShipmentStatusQueryHandler() queries.CheckShipmentStatusQueryHandler {
	return queries.NewCheckShipmentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveShipmentsQueryHandler() queries.GetActiveShipmentsQueryHandler {
	return queries.NewGetActiveShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetActiveShipmentsQueryHandler(), c.configs.AuditCronSpec, c.logger)
}

func (c *CompositionRoot) accessUoWFactory() commands.AccessUoWFactory {
	return FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncAccessUoWFactory func() commands.AccessUoW

func (f FuncAccessUoWFactory) Create() commands.AccessUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
