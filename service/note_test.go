package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"notely/dao"
	"notely/models"
	"notely/pkg/validate"
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

func TestApplyFlags(t *testing.T) {
	var n models.Note

	applyFlags(&n, true, false)
	assert.True(t, n.IsPinned)
	assert.False(t, n.IsArchived)

	// 归档压制置顶，更新已置顶的笔记时同样生效
	applyFlags(&n, true, true)
	assert.False(t, n.IsPinned)
	assert.True(t, n.IsArchived)

	applyFlags(&n, false, true)
	assert.False(t, n.IsPinned)
	assert.True(t, n.IsArchived)
}

func TestDedupIDs(t *testing.T) {
	assert.Empty(t, dedupIDs(nil))
	assert.Equal(t, []int64{3, 1, 2}, dedupIDs([]int64{3, 1, 3, 2, 1}))
}

func TestResolveTagsDedupsBeforeCap(t *testing.T) {
	db, mock := newMockDB(t)
	s := &NoteService{tags: dao.NewTags(db)}

	// 12 项但只含 3 个不同标签，不应触发数量上限
	ids := make([]int64, 0, 12)
	for i := 0; i < 12; i++ {
		ids = append(ids, int64(i%3+1))
	}
	rows := sqlmock.NewRows([]string{"id", "name", "user_id"}).
		AddRow(1, "go", 9).
		AddRow(2, "web", 9).
		AddRow(3, "db", 9)
	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE user_id = \\? AND id IN").
		WillReturnRows(rows)

	tags, err := s.resolveTags(context.Background(), 9, ids)
	require.NoError(t, err)
	assert.Len(t, tags, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveTagsRejectsTooManyDistinct(t *testing.T) {
	db, _ := newMockDB(t)
	s := &NoteService{tags: dao.NewTags(db)}

	ids := make([]int64, 0, models.MaxTagsPerNote+1)
	for i := 1; i <= models.MaxTagsPerNote+1; i++ {
		ids = append(ids, int64(i))
	}

	_, err := s.resolveTags(context.Background(), 9, ids)
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "too_many_tags", fe.Code)
}

func TestValidateBody(t *testing.T) {
	s := &NoteService{}

	content, err := s.validateBody("Valid title", "hello <b>world</b> content")
	require.NoError(t, err)
	assert.Equal(t, "hello world content", content)

	_, err = s.validateBody("ab", "valid content here")
	require.Error(t, err)
	fe, ok := err.(*validate.FieldError)
	require.True(t, ok)
	assert.Equal(t, "title", fe.Field)

	// 清洗后正文被掏空也要拒绝
	_, err = s.validateBody("Valid title", "<b></b>hi")
	require.Error(t, err)
	fe, ok = err.(*validate.FieldError)
	require.True(t, ok)
	assert.Equal(t, "text_too_short", fe.Code)
}
