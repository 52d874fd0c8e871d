package commands_test

import (
	"context"
	"testing"

	"supermarket/internal/core/application/usecases/commands"
	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/core/domain/model/product"
	"supermarket/internal/core/ports"
	"supermarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusOrderRepository struct{ mock.Mock }

func (m *MockStatusOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockStatusOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockStatusOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockStatusOrderRepository) GetFirstUnassigned(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockStatusDriverRepository struct{ mock.Mock }

func (m *MockStatusDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStatusDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStatusDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockStatusDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockStatusDriverRepository) IncrementDeliveries(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatusUoW struct{ mock.Mock }

func (m *MockStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockStatusUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

func statusTestOrder(t *testing.T, status order.Status, driverID *kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), "Milk", product.UnitLitre, 2.49, 1)
	require.NoError(t, err)
	pricing, err := order.NewPricing(2.49, false, 0, 1.50, 3.99)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "14 Mall Road",
		[]order.LineItem{item}, pricing, "", status, driverID,
	)
	require.NoError(t, err)
	return o
}

func statusTestDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(id, driver.Details{
		Name:          "Ali Hassan",
		Email:         "ali@example.com",
		Phone:         "+923001234567",
		LicenseNumber: "LHR-556677",
		VehicleNumber: "ABC-123",
		Address:       "14 Mall Road, Lahore",
		CNICNumber:    "35202-1234567-1",
	})
	require.NoError(t, err)
	return d
}

func TestSetOrderStatusCommandHandler_Handle_Assign(t *testing.T) {
	ctx := context.Background()

	testOrder := statusTestOrder(t, order.Created, nil)
	driverID := kernel.NewUUID()
	testDriver := statusTestDriver(t, driverID)

	cmd, err := commands.NewSetOrderStatusCommand(testOrder.ID(), order.Assigned, &driverID)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	driverRepo := new(MockStatusDriverRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Assigned, updated.Status())
	require.NotNil(t, updated.AssignedTo())
	assert.True(t, updated.AssignedTo().IsEqual(driverID))
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_MoveAssignedOrderBack(t *testing.T) {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	testOrder := statusTestOrder(t, order.Assigned, &driverID)

	cmd, err := commands.NewSetOrderStatusCommand(testOrder.ID(), order.Pending, nil)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	driverRepo := new(MockStatusDriverRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, updated.Status())
	// The driver must be released or the persisted row could never be restored.
	assert.Nil(t, updated.AssignedTo())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_Deliver(t *testing.T) {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	testOrder := statusTestOrder(t, order.Assigned, &driverID)

	cmd, err := commands.NewSetOrderStatusCommand(testOrder.ID(), order.Delivered, nil)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	driverRepo := new(MockStatusDriverRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		driverRepo.On("IncrementDeliveries", ctx, driverID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, updated.Status())
	driverRepo.AssertNumberOfCalls(t, "IncrementDeliveries", 1)
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetOrderStatusCommandHandler_Handle_DeliverUnassigned(t *testing.T) {
	ctx := context.Background()

	testOrder := statusTestOrder(t, order.Pending, nil)

	cmd, err := commands.NewSetOrderStatusCommand(testOrder.ID(), order.Delivered, nil)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	driverRepo := new(MockStatusDriverRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrDriverNotAssigned)
	assert.Nil(t, updated)
	driverRepo.AssertNotCalled(t, "IncrementDeliveries", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetOrderStatusCommandHandler_Handle_DeliverTwice(t *testing.T) {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	testOrder := statusTestOrder(t, order.Delivered, &driverID)

	cmd, err := commands.NewSetOrderStatusCommand(testOrder.ID(), order.Delivered, nil)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	driverRepo := new(MockStatusDriverRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid status to deliver")
	assert.Nil(t, updated)
	driverRepo.AssertNotCalled(t, "IncrementDeliveries", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetOrderStatusCommandHandler_Handle_AssignUnknownDriver(t *testing.T) {
	ctx := context.Background()

	testOrder := statusTestOrder(t, order.Created, nil)
	driverID := kernel.NewUUID()

	cmd, err := commands.NewSetOrderStatusCommand(testOrder.ID(), order.Assigned, &driverID)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	driverRepo := new(MockStatusDriverRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, driverID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), order.Pending, nil)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	driverRepo := new(MockStatusDriverRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
}
