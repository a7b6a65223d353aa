package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := mustOrder(t, order.Delivery)
	require.NoError(t, o.Accept())
	require.NoError(t, o.Serve())
	require.NoError(t, o.StartDelivery())

	cmd, err := commands.NewCompleteOrderDeliveryCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Delivered, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderDeliveryCommandHandler_Handle_NotDelivering(t *testing.T) {
	ctx := t.Context()
	o := mustOrder(t, order.Delivery)
	require.NoError(t, o.Accept())
	require.NoError(t, o.Serve())

	cmd, err := commands.NewCompleteOrderDeliveryCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Equal(t, order.Served, o.Status())
	uow.AssertExpectations(t)
}
