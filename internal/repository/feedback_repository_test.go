package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedboard/internal/repository"
	"feedboard/internal/repository/testutil"
)

func TestFeedbackRepository_InsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()

	created, err := repo.Insert(ctx, "Great!", 5)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	entries, err := repo.List(ctx, repository.FeedbackListFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, created.ID, entries[0].ID)
	require.Equal(t, "Great!", entries[0].Message)
	require.Equal(t, 5, entries[0].Rating)
	require.WithinDuration(t, created.CreatedAt, entries[0].CreatedAt, time.Millisecond)
}

func TestFeedbackRepository_List_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedbackRepository(db)

	entries, err := repo.List(context.Background(), repository.FeedbackListFilter{})
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFeedbackRepository_List_FilterByRating(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "Decent", 3)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "Great", 5)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "Also great", 5)
	require.NoError(t, err)

	rating := 5
	entries, err := repo.List(ctx, repository.FeedbackListFilter{Rating: &rating})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		require.Equal(t, 5, entry.Rating)
	}
}

func TestFeedbackRepository_List_SortOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()

	first, err := repo.Insert(ctx, "Post A", 1)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := repo.Insert(ctx, "Post B", 2)
	require.NoError(t, err)

	require.False(t, second.CreatedAt.Before(first.CreatedAt))

	entries, err := repo.List(ctx, repository.FeedbackListFilter{Sort: repository.SortDesc})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Post B", entries[0].Message)
	require.Equal(t, "Post A", entries[1].Message)

	entries, err = repo.List(ctx, repository.FeedbackListFilter{Sort: repository.SortAsc})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Post A", entries[0].Message)
	require.Equal(t, "Post B", entries[1].Message)
}

// Identical timestamps must fall back to the id, in the same direction.
func TestFeedbackRepository_List_TieBreakByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()

	const createdAt = "2026-01-02T03:04:05.000000Z"
	for id, message := range map[int64]string{1: "older id", 2: "newer id"} {
		_, err := db.ExecContext(
			ctx,
			`INSERT INTO feedback (id, message, rating, created_at) VALUES (?, ?, ?, ?)`,
			id, message, 3, createdAt,
		)
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, repository.FeedbackListFilter{Sort: repository.SortAsc})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, int64(1), entries[0].ID)
	require.Equal(t, int64(2), entries[1].ID)

	entries, err = repo.List(ctx, repository.FeedbackListFilter{Sort: repository.SortDesc})
	require.NoError(t, err)
	require.Equal(t, int64(2), entries[0].ID)
	require.Equal(t, int64(1), entries[1].ID)
}

func TestFeedbackRepository_CreatedAtMonotonic(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Insert(ctx, "entry", i)
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, repository.FeedbackListFilter{Sort: repository.SortAsc})
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for i := 1; i < len(entries); i++ {
		require.False(t, entries[i].CreatedAt.Before(entries[i-1].CreatedAt))
		require.Greater(t, entries[i].ID, entries[i-1].ID)
	}
}
