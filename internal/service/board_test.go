package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"go-board-api/internal/domain"
)

func TestCreate_DefaultsPublic(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)

	b, err := svc.Create(context.Background(), CreateBoardInput{
		Title:       "first",
		Description: "hello",
	}, "owner-a")
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	require.Equal(t, domain.BoardStatusPublic, b.Status)
	require.Equal(t, "owner-a", b.OwnerID)
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewBoardService(newFakeBoardRepo())
	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrBoardNotFound)
}

func TestGetByID_NotOwnerScoped(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)

	b, err := svc.Create(context.Background(), CreateBoardInput{Title: "t", Description: "d"}, "owner-a")
	require.NoError(t, err)

	// 单条直查对任何已登录用户开放（与 list/delete 不同）
	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)
}

func TestListMine_OnlyOwnRecordsInCreationOrder(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		b, err := svc.Create(ctx, CreateBoardInput{
			Title:       fmt.Sprintf("mine-%d", i),
			Description: "d",
		}, "owner-a")
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}
	_, err := svc.Create(ctx, CreateBoardInput{Title: "theirs", Description: "d"}, "owner-b")
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for i, b := range mine {
		require.Equal(t, ids[i], b.ID)
		require.Equal(t, "owner-a", b.OwnerID)
	}
}

func TestListMine_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewBoardService(newFakeBoardRepo())
	mine, err := svc.ListMine(context.Background(), "owner-a")
	require.NoError(t, err)
	require.NotNil(t, mine)
	require.Empty(t, mine)
}

func TestDelete_OtherOwnerGetsNotFoundAndRecordSurvives(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateBoardInput{Title: "t", Description: "d"}, "owner-a")
	require.NoError(t, err)

	err = svc.Delete(ctx, b.ID, "owner-b")
	require.ErrorIs(t, err, domain.ErrBoardNotFound)

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BoardStatusPublic, got.Status)
}

func TestDelete_Twice(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateBoardInput{Title: "t", Description: "d"}, "owner-a")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID, "owner-a"))
	err = svc.Delete(ctx, b.ID, "owner-a")
	require.ErrorIs(t, err, domain.ErrBoardNotFound)
}

func TestSetStatus_PersistsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateBoardInput{Title: "t", Description: "d"}, "owner-a")
	require.NoError(t, err)

	for i := 0; i < 2; i++ { // 重复设置结果一致
		updated, err := svc.SetStatus(ctx, b.ID, domain.BoardStatusPrivate, "owner-a")
		require.NoError(t, err)
		require.Equal(t, domain.BoardStatusPrivate, updated.Status)

		got, err := svc.GetByID(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, domain.BoardStatusPrivate, got.Status)
	}
}

func TestSetStatus_OtherOwnerGetsNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateBoardInput{Title: "t", Description: "d"}, "owner-a")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, b.ID, domain.BoardStatusPrivate, "owner-b")
	require.ErrorIs(t, err, domain.ErrBoardNotFound)

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BoardStatusPublic, got.Status)
}

func TestSetStatus_RejectsUnknownValue(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	svc := NewBoardService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateBoardInput{Title: "t", Description: "d"}, "owner-a")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, b.ID, domain.BoardStatus("ARCHIVED"), "owner-a")
	require.Error(t, err)
}

func TestBoardService_StorageFailurePropagates(t *testing.T) {
	t.Parallel()

	repo := newFakeBoardRepo()
	repo.err = domain.ErrStorageUnavailable
	svc := NewBoardService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBoardInput{Title: "t", Description: "d"}, "owner-a")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = svc.ListMine(ctx, "owner-a")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	err = svc.Delete(ctx, "any", "owner-a")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
