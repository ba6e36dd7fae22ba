package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// 重名检查大小写不敏感，"Work" 与 "work" 视为同名
func TestExistsNameCaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCategories(db)

	mock.ExpectQuery("LOWER\\(name\\) = LOWER\\(\\?\\)").
		WithArgs(int64(1), "Work").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	dup, err := d.ExistsName(context.Background(), 1, "Work", 0)
	require.NoError(t, err)
	assert.True(t, dup)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsNameExcludesSelf(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCategories(db)

	mock.ExpectQuery("id <> \\?").
		WithArgs(int64(1), "Work", int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	dup, err := d.ExistsName(context.Background(), 1, "Work", 42)
	require.NoError(t, err)
	assert.False(t, dup)
}
