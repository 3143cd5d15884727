package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	loc := mustLocation(t, -34.6, -58.4)
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Ana", "+54", driver.Car, "caba", &loc, true)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockDriverUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	d, err := commands.NewCreateDriverCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.Available, d.Availability())
	require.NotNil(t, d.Location())
	assert.Equal(t, "5.00", d.Rating().StringFixed(2))
	uow.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_OfflineByDefault(t *testing.T) {
	h := newHarness(t)
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Luis", "+54", driver.Van, "caba", nil, false)
	require.NoError(t, err)

	d, err := commands.NewCreateDriverCommandHandler(driverUoWFactory{h.factory}).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.Offline, h.driver(t, d).Availability())
}

func TestCreateDriverCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Ana", "+54", driver.Car, "caba", nil, false)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockDriverUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewCreateDriverCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateDriverLocationCommandHandler_Handle(t *testing.T) {
	h := newHarness(t)
	d := onlineDriver(t, "caba", mustLocation(t, 0, 0))
	h.save(t, nil, []*driver.Driver{d})

	target := mustLocation(t, -34.6, -58.4)
	cmd, err := commands.NewUpdateDriverLocationCommand(d.ID(), target)
	require.NoError(t, err)

	_, err = commands.NewUpdateDriverLocationCommandHandler(driverUoWFactory{h.factory}, h.driverLocks).Handle(t.Context(), cmd)
	require.NoError(t, err)

	stored := h.driver(t, d)
	require.NotNil(t, stored.Location())
	equal, err := stored.Location().IsEqual(target)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestUpdateDriverLocationCommandHandler_Handle_UnknownDriver(t *testing.T) {
	h := newHarness(t)
	cmd, err := commands.NewUpdateDriverLocationCommand(kernel.NewUUID(), mustLocation(t, 1, 1))
	require.NoError(t, err)

	_, err = commands.NewUpdateDriverLocationCommandHandler(driverUoWFactory{h.factory}, h.driverLocks).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSetDriverAvailabilityCommandHandler_Handle(t *testing.T) {
	h := newHarness(t)
	handler := commands.NewSetDriverAvailabilityCommandHandler(driverUoWFactory{h.factory}, h.driverLocks)
	d := onlineDriver(t, "caba", mustLocation(t, 0, 0))
	h.save(t, nil, []*driver.Driver{d})

	offline, err := commands.NewSetDriverAvailabilityCommand(d.ID(), false)
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), offline)
	require.NoError(t, err)
	assert.Equal(t, driver.Offline, h.driver(t, d).Availability())

	online, err := commands.NewSetDriverAvailabilityCommand(d.ID(), true)
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), online)
	require.NoError(t, err)
	assert.Equal(t, driver.Available, h.driver(t, d).Availability())
}

func TestSetDriverAvailabilityCommandHandler_Handle_BusyDriver(t *testing.T) {
	h := newHarness(t)
	handler := commands.NewSetDriverAvailabilityCommandHandler(driverUoWFactory{h.factory}, h.driverLocks)

	origin := mustLocation(t, 0, 0)
	o := storedOrder(t, "caba", &origin)
	walk(t, o, order.Accepted, order.Preparing, order.Ready)
	d := onlineDriver(t, "caba", origin)
	h.save(t, []*order.Order{o}, []*driver.Driver{d})

	result, err := h.dispatch.Handle(t.Context(), dispatchCommand(t, o))
	require.NoError(t, err)
	require.Equal(t, commands.DispatchAssigned, result.Dispatch)

	offline, err := commands.NewSetDriverAvailabilityCommand(d.ID(), false)
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), offline)

	require.ErrorIs(t, err, driver.ErrDriverIsBusy)
	assert.Equal(t, driver.Busy, h.driver(t, d).Availability())
}
