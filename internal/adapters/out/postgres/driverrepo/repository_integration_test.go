package driverrepo_test

import (
	"context"
	"testing"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	d := suite.createTestDriver("Lucia", "caba")
	loc, err := kernel.NewLocation(-34.60, -58.38)
	suite.Require().NoError(err)
	suite.Require().NoError(d.UpdateLocation(loc))

	suite.Require().NoError(suite.repository.Add(ctx, d))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", d.ID(), d)

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(d))
	suite.Equal(driver.Offline, loaded.Availability())
	suite.Equal("5.00", loaded.Rating().StringFixed(2))
	suite.Require().NotNil(loaded.Location())
	suite.InDelta(-34.60, loaded.Location().Latitude(), 1e-9)
	suite.Equal(d.Version(), loaded.PersistedVersion())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_BusyDriverKeepsOrder() {
	ctx := context.Background()
	d := suite.createTestDriver("Lucia", "caba")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	orderID := kernel.NewUUID()
	suite.Require().NoError(d.GoOnline())
	suite.Require().NoError(d.MarkBusy(orderID))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.Busy, loaded.Availability())
	suite.Require().NotNil(loaded.CurrentOrderID())
	suite.Equal(orderID, *loaded.CurrentOrderID())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_StaleVersion() {
	ctx := context.Background()
	d := suite.createTestDriver("Lucia", "caba")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	first, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.GoOnline())
	suite.Require().NoError(suite.repository.Update(ctx, first))
	suite.Require().NoError(second.GoOnline())

	err = suite.repository.Update(ctx, second)
	var cme *ports.ConcurrentModificationError
	suite.Require().ErrorAs(err, &cme)
	suite.Equal(ports.AggregateDriver, cme.Aggregate)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_MissingDriver() {
	d := suite.createTestDriver("Lucia", "caba")
	suite.Require().NoError(d.GoOnline())

	err := suite.repository.Update(context.Background(), d)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestListAvailable_FiltersByScope() {
	ctx := context.Background()
	caba := suite.createTestDriver("Ana", "caba")
	rosario := suite.createTestDriver("Bruno", "rosario")
	offline := suite.createTestDriver("Carla", "caba")
	suite.Require().NoError(caba.GoOnline())
	suite.Require().NoError(rosario.GoOnline())
	for _, d := range []*driver.Driver{caba, rosario, offline} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	scoped, err := suite.repository.ListAvailable(ctx, "caba")
	suite.Require().NoError(err)
	suite.Require().Len(scoped, 1)
	suite.True(scoped[0].IsEqual(caba))

	all, err := suite.repository.ListAvailable(ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(name, scope string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), name, "+5491100000000", driver.Bicycle, scope)
	suite.Require().NoError(err)
	return d
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
