package commands_test

import (
	"context"
	"errors"
	"testing"

	"supermarket/internal/core/application/usecases/commands"
	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/core/ports"
	"supermarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignOrderRepository struct{ mock.Mock }

func (m *MockAssignOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAssignOrderRepository) GetFirstUnassigned(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAssignDriverRepository struct{ mock.Mock }

func (m *MockAssignDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockAssignDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockAssignDriverRepository) IncrementDeliveries(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssignUoW struct{ mock.Mock }

func (m *MockAssignUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

func TestAssignOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should assign the least loaded driver to the oldest unassigned order", func(t *testing.T) {
		ctx := context.Background()

		testOrder := statusTestOrder(t, order.Pending, nil)
		driverID := kernel.NewUUID()
		testDriver := statusTestDriver(t, driverID)

		orderRepo := new(MockAssignOrderRepository)
		driverRepo := new(MockAssignDriverRepository)
		uow := new(MockAssignUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			uow.On("DriverRepository").Return(driverRepo).Once(),
			orderRepo.On("GetFirstUnassigned", ctx).Return(testOrder, nil).Once(),
			driverRepo.On("GetAllActive", ctx).Return([]*driver.Driver{testDriver}, nil).Once(),
			orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewAssignOrderCommandHandler(factory)
		err := handler.Handle(ctx, commands.NewAssignOrderCommand())

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, testOrder.Status())
		require.NotNil(t, testOrder.AssignedTo())
		assert.True(t, testOrder.AssignedTo().IsEqual(driverID))
		orderRepo.AssertExpectations(t)
		driverRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should report when no orders await dispatch", func(t *testing.T) {
		ctx := context.Background()

		orderRepo := new(MockAssignOrderRepository)
		driverRepo := new(MockAssignDriverRepository)
		uow := new(MockAssignUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			uow.On("DriverRepository").Return(driverRepo).Once(),
			orderRepo.On("GetFirstUnassigned", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewAssignOrderCommandHandler(factory)
		err := handler.Handle(ctx, commands.NewAssignOrderCommand())

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrNoUnassignedOrdersFound)
		driverRepo.AssertNotCalled(t, "GetAllActive", mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should report when no drivers are on duty", func(t *testing.T) {
		ctx := context.Background()

		testOrder := statusTestOrder(t, order.Pending, nil)

		orderRepo := new(MockAssignOrderRepository)
		driverRepo := new(MockAssignDriverRepository)
		uow := new(MockAssignUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			uow.On("DriverRepository").Return(driverRepo).Once(),
			orderRepo.On("GetFirstUnassigned", ctx).Return(testOrder, nil).Once(),
			driverRepo.On("GetAllActive", ctx).Return([]*driver.Driver{}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewAssignOrderCommandHandler(factory)
		err := handler.Handle(ctx, commands.NewAssignOrderCommand())

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrNoActiveDriversFound)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should fail when the transaction cannot start", func(t *testing.T) {
		ctx := context.Background()

		beginErr := errors.New("connection refused")

		uow := new(MockAssignUoW)
		uow.On("Begin", ctx).Return(beginErr).Once()

		factory := new(MockAssignUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewAssignOrderCommandHandler(factory)
		err := handler.Handle(ctx, commands.NewAssignOrderCommand())

		require.Error(t, err)
		assert.ErrorIs(t, err, beginErr)
		uow.AssertNotCalled(t, "OrderRepository")
	})
}
