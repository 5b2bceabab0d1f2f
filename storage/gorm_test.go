package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cppla/miniblog/models"
)

func newGormStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewGormStore(gdb, "BlogPosts"), mock
}

var postColumns = []string{"id", "title", "content", "created_at"}

func TestGormStoreScanAll(t *testing.T) {
	store, mock := newGormStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `BlogPosts`")).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow("p1", "T1", "C1", "s1").
			AddRow("p2", "T2", "C2", ""))

	posts, err := store.ScanAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Post{
		{ID: "p1", Title: "T1", Content: "C1", ModifiedAt: "s1"},
		{ID: "p2", Title: "T2", Content: "C2"},
	}, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreGet(t *testing.T) {
	store, mock := newGormStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `BlogPosts` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow("p1", "T", "C", "s1"))

	got, err := store.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "T", got.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreGetMissing(t *testing.T) {
	store, mock := newGormStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `BlogPosts` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(postColumns))

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorePutUpserts(t *testing.T) {
	store, mock := newGormStore(t)
	mock.ExpectExec("INSERT INTO `BlogPosts` .* ON DUPLICATE KEY UPDATE").
		WithArgs("p1", "T", "C", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Put(context.Background(), models.Post{ID: "p1", Title: "T", Content: "C", ModifiedAt: "s1"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreDelete(t *testing.T) {
	store, mock := newGormStore(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `BlogPosts` WHERE id = ?")).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreWrapsErrors(t *testing.T) {
	store, mock := newGormStore(t)
	boom := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `BlogPosts`")).WillReturnError(boom)

	_, err := store.ScanAll(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "sql scan BlogPosts")
}
