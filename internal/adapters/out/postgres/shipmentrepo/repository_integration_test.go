package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/shipmentrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// GormShipmentRepository using PostgreSQL containers.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.CounterDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_counter").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(id kernel.ShipmentID) *shipment.Shipment {
	location, err := kernel.NewLocation("Origin depot")
	suite.Require().NoError(err)
	record, err := shipment.NewShipment(id, location)
	suite.Require().NoError(err)
	return record
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestNextID_FirstAllocationIsOne() {
	ctx := context.Background()

	id, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.ShipmentID(1), id)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestNextID_MonotonicallyIncreases() {
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		id, err := suite.repository.NextID(ctx)
		suite.Require().NoError(err)
		suite.Equal(kernel.ShipmentID(want), id)
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestNextID_RollbackReturnsID() {
	ctx := context.Background()

	// Allocate inside a transaction and roll it back.
	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	txRepo := shipmentrepo.NewGormShipmentRepository(tx, suite.tracker)

	id, err := txRepo.NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.ShipmentID(1), id)
	suite.Require().NoError(tx.Rollback().Error)

	// The id goes back to the counter: the next allocation gets it again.
	id, err = suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.ShipmentID(1), id)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()
	record := suite.createTestShipment(1)

	suite.tracker.On("TrackAggregate", "1", record).Once()

	suite.Require().NoError(suite.repository.Add(ctx, record))

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_NotConstructed_Fails() {
	ctx := context.Background()
	var record shipment.Shipment

	err := suite.repository.Add(ctx, &record)
	suite.Require().Error(err)
	suite.assertShipmentCount(0)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	record := suite.createTestShipment(3)
	suite.tracker.On("TrackAggregate", "3", record).Once()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.Get(ctx, 3)
	suite.Require().NoError(err)
	suite.Equal(kernel.ShipmentID(3), loaded.ID())
	suite.Equal(shipment.Added, loaded.Status())
	suite.True(loaded.Location().IsEqual(record.Location()))
	suite.Empty(loaded.DomainEvents())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 99)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NeverAssignedID_NotFound() {
	ctx := context.Background()

	// Id 0 is never assigned; the lookup fails the same way as any other
	// missing record.
	_, err := suite.repository.Get(ctx, 0)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndLocation() {
	ctx := context.Background()
	record := suite.createTestShipment(2)
	suite.tracker.On("TrackAggregate", "2", record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	port, err := kernel.NewLocation("Port of Hamburg")
	suite.Require().NoError(err)
	suite.Require().NoError(record.ChangeStatus(shipment.Shipped, &port))

	suite.Require().NoError(suite.repository.Update(ctx, record))

	loaded, err := suite.repository.Get(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal(shipment.Shipped, loaded.Status())
	suite.True(loaded.Location().IsEqual(port))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_UnknownID_NotFound() {
	ctx := context.Background()
	location, err := kernel.NewLocation("Nowhere")
	suite.Require().NoError(err)
	record, err := shipment.RestoreShipment(55, shipment.Shipped, location)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, record)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
