package renders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteRepository(db)
	clock := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return r, db
}

func TestInsertAndGet(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	rec := &models.Render{
		ID: "r1", VideoID: 7, UserEmail: "a@b.c", Title: "Promo", Template: "Promo",
		Quality: "HD", LengthType: "short", Lang: "hi", Status: "done",
		DownloadURL: "/outputs/video_7.mp4",
	}
	require.NoError(t, r.Insert(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := r.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.VideoID)
	assert.Equal(t, "Promo", got.Title)
	assert.Equal(t, "/outputs/video_7.mp4", got.DownloadURL)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.Downloaded())

	byVideo, err := r.GetByVideoID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "r1", byVideo.ID)
}

func TestGet_NotFound(t *testing.T) {
	r, _ := setupRepo(t)

	_, err := r.Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetByVideoID(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList_NewestFirstAndFiltered(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		email := "a@b.c"
		if i == 3 {
			email = "other@b.c"
		}
		require.NoError(t, r.Insert(ctx, &models.Render{ID: fmt.Sprintf("r%d", i), UserEmail: email, Title: "t", Status: "done"}))
	}

	all, err := r.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "r4", all[0].ID)

	mine, err := r.List(ctx, "a@b.c", 2)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "r4", mine[0].ID)
	assert.Equal(t, "r2", mine[1].ID)
}

func TestMarkDownloadedAndArchive(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, &models.Render{ID: "r1", UserEmail: "a@b.c", Title: "t", Status: "done"}))
	require.NoError(t, r.MarkDownloaded(ctx, "r1", "/tmp/video_1.mp4", "abc123"))
	require.NoError(t, r.SetArchiveKey(ctx, "r1", "renders/r1.mp4"))

	got, err := r.Get(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, got.Downloaded())
	assert.Equal(t, "abc123", got.Checksum)
	assert.Equal(t, "renders/r1.mp4", got.ArchiveKey)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	require.ErrorIs(t, r.MarkDownloaded(ctx, "missing", "p", "c"), common.ErrorNotFound)
}

func TestErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("database is locked")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO renders`)).WillReturnError(boom)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM renders`)).WillReturnError(boom)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE renders SET archive_key = ?`)).WillReturnError(boom)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE renders SET local_path = ?`)).WillReturnResult(sqlmock.NewErrorResult(boom))

	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.ErrorIs(t, r.Insert(ctx, &models.Render{ID: "x"}), boom)
	_, err = r.List(ctx, "", 10)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, r.SetArchiveKey(ctx, "x", "k"), boom)
	require.ErrorIs(t, r.MarkDownloaded(ctx, "x", "p", "c"), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
