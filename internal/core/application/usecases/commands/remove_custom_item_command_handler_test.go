package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveCustomItemCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRemoveCustomItemCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CustomItemID())

	_, err = commands.NewRemoveCustomItemCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestRemoveCustomItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRemoveCustomItemCommand(id)

	customRepo := new(MockCustomItemRepository)
	notifier := new(MockNotifier)
	uow := new(MockCustomItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomItemRepository").Return(customRepo).Once(),
		customRepo.On("Remove", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, commands.TopicCustomItemRemoved,
			commands.CustomItemRemovedEvent{CustomItemID: id.String()}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCustomItemCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	customRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveCustomItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRemoveCustomItemCommand(id)

	customRepo := new(MockCustomItemRepository)
	notifier := new(MockNotifier)
	uow := new(MockCustomItemUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CustomItemRepository").Return(customRepo)
	customRepo.On("Remove", mock.Anything, id).
		Return(errs.NewObjectNotFoundError("custom item", id.String()))
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockCustomItemUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRemoveCustomItemCommandHandler(factory, notifier, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}
