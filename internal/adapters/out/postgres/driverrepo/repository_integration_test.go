package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"supermarket/internal/adapters/out/postgres/driverrepo"
	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/errs"

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

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify persistence, the unique email constraint
// and the soft delete filtering.
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

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ValidDriver_Success() {
	ctx := context.Background()

	testDriver := suite.createTestDriver("ali@example.com")
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()

	err := suite.repository.Add(ctx, testDriver)
	suite.Require().NoError(err)

	suite.assertDriverCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsValidationError() {
	ctx := context.Background()

	first := suite.createTestDriver("ali@example.com")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestDriver("ali@example.com")

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Contains(err.Error(), "email")

	suite.assertDriverCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_ExistingDriver_ReturnsDriver() {
	ctx := context.Background()

	original := suite.createTestDriver("ali@example.com")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Details(), retrieved.Details())
	suite.Equal(driver.Active, retrieved.Status())
	suite.Equal(0, retrieved.Deliveries())
	suite.False(retrieved.IsDeleted())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_SoftDeletedDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	testDriver := suite.createTestDriver("ali@example.com")
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	testDriver.MarkDeleted()
	suite.Require().NoError(suite.repository.Update(ctx, testDriver))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// The row survives the removal so historical orders keep resolving.
	suite.assertDriverCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllActive_ReturnsLeastLoadedFirst() {
	ctx := context.Background()

	busy := suite.createRestoredDriver("busy@example.com", driver.Active, 7, false)
	idle := suite.createRestoredDriver("idle@example.com", driver.Active, 1, false)
	inactive := suite.createRestoredDriver("off@example.com", driver.Inactive, 0, false)
	deleted := suite.createRestoredDriver("gone@example.com", driver.Active, 0, true)

	for _, d := range []*driver.Driver{busy, idle, inactive, deleted} {
		suite.tracker.On("TrackAggregate", d.ID(), d).Once()
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(active, 2)
	suite.Equal(idle.ID(), active[0].ID())
	suite.Equal(busy.ID(), active[1].ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllActive_NoActiveDrivers_ReturnsEmptySlice() {
	ctx := context.Background()

	inactive := suite.createRestoredDriver("off@example.com", driver.Inactive, 0, false)
	suite.tracker.On("TrackAggregate", inactive.ID(), inactive).Once()
	suite.Require().NoError(suite.repository.Add(ctx, inactive))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Empty(active)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestIncrementDeliveries_ExistingDriver_AddsOne() {
	ctx := context.Background()

	testDriver := suite.createRestoredDriver("ali@example.com", driver.Active, 3, false)
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	suite.Require().NoError(suite.repository.IncrementDeliveries(ctx, testDriver.ID()))
	suite.Require().NoError(suite.repository.IncrementDeliveries(ctx, testDriver.ID()))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(5, retrieved.Deliveries())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestIncrementDeliveries_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.IncrementDeliveries(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestDriver("ali@example.com"))
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestDriver creates a new active driver with the given email.
func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(email string) *driver.Driver {
	testDriver, err := driver.NewDriver(kernel.NewUUID(), suite.testDetails(email))
	suite.Require().NoError(err)
	return testDriver
}

// createRestoredDriver creates a driver with explicit status, delivery count and deletion flag.
func (suite *DriverRepositoryIntegrationTestSuite) createRestoredDriver(
	email string, status driver.Status, deliveries int, deleted bool,
) *driver.Driver {
	testDriver, err := driver.RestoreDriver(kernel.NewUUID(), suite.testDetails(email), status, deliveries, deleted)
	suite.Require().NoError(err)
	return testDriver
}

func (suite *DriverRepositoryIntegrationTestSuite) testDetails(email string) driver.Details {
	return driver.Details{
		Name:          "Ali Hassan",
		Email:         email,
		Phone:         "+923001234567",
		LicenseNumber: "LHR-556677",
		VehicleNumber: "ABC-123",
		Address:       "14 Mall Road, Lahore",
		CNICNumber:    "35202-1234567-1",
	}
}

// assertDriverCount verifies the number of driver rows in the database.
func (suite *DriverRepositoryIntegrationTestSuite) assertDriverCount(expected int) {
	var count int64
	err := suite.db.Model(&driverrepo.DriverDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
