package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notely/dao"
	"notely/pkg/validate"
)

func TestCountExceededBoundary(t *testing.T) {
	assert.False(t, countExceeded(MaxNotesPerUser-1, MaxNotesPerUser))
	assert.True(t, countExceeded(MaxNotesPerUser, MaxNotesPerUser))
	assert.True(t, countExceeded(MaxNotesPerUser+1, MaxNotesPerUser))

	assert.False(t, countExceeded(MaxCategoriesPerUser-1, MaxCategoriesPerUser))
	assert.True(t, countExceeded(MaxCategoriesPerUser, MaxCategoriesPerUser))
}

func TestBytesExceededBoundary(t *testing.T) {
	// 恰好写满不算超
	assert.False(t, bytesExceeded(MaxContentBytes-1, 1, MaxContentBytes))
	assert.True(t, bytesExceeded(MaxContentBytes-1, 2, MaxContentBytes))
	assert.True(t, bytesExceeded(MaxContentBytes, 1, MaxContentBytes))

	// 缩减正文的更新永远放行
	assert.False(t, bytesExceeded(MaxContentBytes, -1, MaxContentBytes))

	assert.False(t, bytesExceeded(0, MaxContentBytes, MaxContentBytes))
	assert.True(t, bytesExceeded(0, MaxContentBytes+1, MaxContentBytes))
}

func TestCheckNoteCountBoundary(t *testing.T) {
	db, mock := newMockDB(t)
	q := &QuotaService{notes: dao.NewNotes(db)}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `notes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(MaxNotesPerUser - 1))
	require.NoError(t, q.CheckNoteCount(context.Background(), 1))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `notes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(MaxNotesPerUser))
	err := q.CheckNoteCount(context.Background(), 1)
	var qe *validate.QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, int64(MaxNotesPerUser), qe.Current)
	assert.Equal(t, int64(MaxNotesPerUser), qe.Max)
}

func TestCheckContentBytesDeltaAware(t *testing.T) {
	db, mock := newMockDB(t)
	q := &QuotaService{notes: dao.NewNotes(db)}

	// 存量 10MB，等量替换不超限
	mock.ExpectQuery("COALESCE\\(SUM\\(LENGTH\\(content\\)\\), 0\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(MaxContentBytes))
	require.NoError(t, q.CheckContentBytes(context.Background(), 1, 0))

	mock.ExpectQuery("COALESCE\\(SUM\\(LENGTH\\(content\\)\\), 0\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(MaxContentBytes))
	err := q.CheckContentBytes(context.Background(), 1, 1)
	var qe *validate.QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "content_bytes", qe.Field)
}
