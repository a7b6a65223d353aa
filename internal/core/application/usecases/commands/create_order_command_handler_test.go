package commands_test

import (
	"context"
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/diningtable"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsActiveByTable(
	ctx context.Context, tableID kernel.UUID, excludeOrderID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, tableID, excludeOrderID)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*diningtable.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*diningtable.Table), args.Error(1)
}

func (m *MockTableRepository) Update(ctx context.Context, table *diningtable.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func mustMenu(t *testing.T, id kernel.UUID, priceCents int64, displayed bool) *menu.Menu {
	t.Helper()
	m, err := menu.RestoreMenu(id, kernel.NewMoney(priceCents), displayed)
	require.NoError(t, err)
	return m
}

func mustLineItem(t *testing.T, menuID kernel.UUID, quantity int64, priceCents int64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(menuID, quantity, kernel.NewMoney(priceCents))
	require.NoError(t, err)
	return item
}

func TestCreateOrderCommandHandler_Handle_TakeoutSuccess(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, menuID, 2, 1500)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, items, "", nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{mustMenu(t, menuID, 1500, true)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_EatInSuccess(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, menuID, 1, 900)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.EatIn, items, "", &tableID)
	require.NoError(t, err)

	occupiedTable, err := diningtable.RestoreTable(tableID, true, 4)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{mustMenu(t, menuID, 900, true)}, nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).Return(occupiedTable, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_EatInTableNotOccupied(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, menuID, 1, 900)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.EatIn, items, "", &tableID)
	require.NoError(t, err)

	emptyTable, err := diningtable.RestoreTable(tableID, false, 0)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{mustMenu(t, menuID, 900, true)}, nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).Return(emptyTable, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_HiddenMenu(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, menuID, 1, 700)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, items, "", nil)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{mustMenu(t, menuID, 700, false)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnresolvedMenu(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, menuID, 1, 700)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, items, "", nil)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PriceMismatch(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, menuID, 1, 700)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, items, "", nil)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{mustMenu(t, menuID, 800, true)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 1, 700)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, items, "", nil)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, menuID, 1, 700)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, items, "", nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{mustMenu(t, menuID, 700, true)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
