package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-app/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) (sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sys.Configs.Database.OperationTimeout = time.Second
	sys.Configs.Cache.OperationTimeout = time.Second
	sys.Configs.Cache.CacheTTL = time.Minute
	sys.R.Log = zap.NewNop().Sugar()
	sys.R.Cache = rdb
	sys.R.Database = db

	return mock, s
}

func TestFindServedFromCache(t *testing.T) {
	mock, s := setup(t)

	cached := Note{Id: 7, Title: "cached", Content: "from redis", UserId: "u1"}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, s.Set(fmt.Sprintf(noteKey, 7), string(data)))

	found, err := Find(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "cached", found.Title)
	assert.Equal(t, "u1", found.UserId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindMissingNote(t *testing.T) {
	mock, s := setup(t)

	mock.ExpectPrepare("SELECT .* FROM notes WHERE id = ?").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "completed", "userId", "updatedAt", "createdAt"}))

	found, err := Find(context.Background(), 3)
	require.NoError(t, err)
	assert.Zero(t, found.Id)
	assert.False(t, s.Exists(fmt.Sprintf(noteKey, 3)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPrepareFailure(t *testing.T) {
	mock, _ := setup(t)

	mock.ExpectPrepare("INSERT INTO notes").WillReturnError(errors.New("connection reset"))

	_, err := Insert(context.Background(), NewNote{Title: "t", Content: "c", UserId: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prepare insert stmt")
}

func TestInsertReturnsId(t *testing.T) {
	mock, _ := setup(t)

	mock.ExpectPrepare("INSERT INTO notes").
		ExpectExec().
		WithArgs("t", "c", int64(0), "u1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	n, err := Insert(context.Background(), NewNote{Title: "t", Content: "c", UserId: "u1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n.Id)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvictsCache(t *testing.T) {
	mock, s := setup(t)
	key := fmt.Sprintf(noteKey, 9)
	require.NoError(t, s.Set(key, "{}"))

	mock.ExpectPrepare("DELETE FROM notes WHERE id = ?").
		ExpectExec().
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, Delete(context.Background(), 9))
	assert.False(t, s.Exists(key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateExecFailure(t *testing.T) {
	mock, s := setup(t)
	key := fmt.Sprintf(noteKey, 5)
	require.NoError(t, s.Set(key, "{}"))

	mock.ExpectPrepare("UPDATE notes SET").
		ExpectExec().
		WillReturnError(errors.New("deadlock"))

	_, err := Update(context.Background(), Note{Id: 5, Title: "t", Content: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to exec update stmt")
	assert.True(t, s.Exists(key))
}
