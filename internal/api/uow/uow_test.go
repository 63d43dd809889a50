package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/datakeep/communities-service/internal/api/uow"
	"github.com/datakeep/communities-service/internal/shared/logging"
	"github.com/datakeep/communities-service/internal/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWorkExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("ops run in registration order", func(t *testing.T) {
		var calls []string
		store := mocks.NewMockRecordsStore().
			WithRemoveCommunitiesFunc(func(_ context.Context, recordID int64, communityIDs []string) error {
				calls = append(calls, "remove")
				assert.Equal(t, int64(7), recordID)
				assert.Equal(t, []string{"c1", "c2"}, communityIDs)
				return nil
			})
		indexer := mocks.NewMockSearchIndex().
			WithIndexRecordFunc(func(_ context.Context, recordID string, refresh bool) error {
				calls = append(calls, "index")
				assert.Equal(t, "N:record:xyz", recordID)
				assert.True(t, refresh)
				return nil
			})

		unitOfWork := uow.New(logging.Default)
		unitOfWork.Register(uow.NewRecordCommitOp(store, 7, []string{"c1", "c2"}))
		unitOfWork.Register(uow.NewRecordIndexOp(indexer, "N:record:xyz", true))
		require.Equal(t, 2, unitOfWork.Size())

		require.NoError(t, unitOfWork.Execute(ctx))
		assert.Equal(t, []string{"remove", "index"}, calls)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		expectedErr := errors.New("commit failed")
		store := mocks.NewMockRecordsStore().
			WithRemoveCommunitiesFunc(func(_ context.Context, _ int64, _ []string) error {
				return expectedErr
			})
		indexCalled := false
		indexer := mocks.NewMockSearchIndex().
			WithIndexRecordFunc(func(_ context.Context, _ string, _ bool) error {
				indexCalled = true
				return nil
			})

		unitOfWork := uow.New(logging.Default)
		unitOfWork.Register(uow.NewRecordCommitOp(store, 7, []string{"c1"}))
		unitOfWork.Register(uow.NewRecordIndexOp(indexer, "N:record:xyz", true))

		err := unitOfWork.Execute(ctx)
		require.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "RecordCommitOp")
		assert.False(t, indexCalled)
	})

	t.Run("empty unit of work is a no-op", func(t *testing.T) {
		unitOfWork := uow.New(logging.Default)
		assert.Equal(t, 0, unitOfWork.Size())
		require.NoError(t, unitOfWork.Execute(ctx))
	})

	t.Run("refresh op", func(t *testing.T) {
		refreshed := false
		indexer := mocks.NewMockSearchIndex().
			WithRefreshIndexFunc(func(_ context.Context) error {
				refreshed = true
				return nil
			})

		unitOfWork := uow.New(logging.Default)
		unitOfWork.Register(uow.NewIndexRefreshOp(indexer))
		require.NoError(t, unitOfWork.Execute(ctx))
		assert.True(t, refreshed)
	})
}
