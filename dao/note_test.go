package dao

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"notely/models"
	"notely/types"
)

// newDryRunDB 只生成 SQL 不执行，用于断言语句形态
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestSearchTerms(t *testing.T) {
	assert.Nil(t, SearchTerms("", false))
	assert.Nil(t, SearchTerms("   ", false))
	assert.Equal(t, []string{"hello", "world"}, SearchTerms("hello world", false))
	assert.Equal(t, []string{"hello world"}, SearchTerms("hello world", true))
	assert.Equal(t, []string{"hello world"}, SearchTerms("  hello world  ", true))
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "notes.updated_at desc", OrderClause(types.SortUpdatedDesc))
	assert.Equal(t, "notes.title asc", OrderClause(types.SortTitleAsc))
	// 默认排序置顶优先
	assert.Equal(t, "notes.is_pinned desc, notes.updated_at desc", OrderClause(""))
	assert.Equal(t, "notes.is_pinned desc, notes.updated_at desc", OrderClause(types.SortDefault))
	assert.Equal(t, "notes.is_pinned desc, notes.updated_at desc", OrderClause("bogus"))
}

func TestTermConditions(t *testing.T) {
	cond, args := termConditions(nil, types.SearchInBoth)
	assert.Empty(t, cond)
	assert.Nil(t, args)

	cond, args = termConditions([]string{"alpha"}, types.SearchInTitle)
	assert.Equal(t, "notes.title LIKE ?", cond)
	assert.Equal(t, []interface{}{"%alpha%"}, args)

	// 多词取并集而非交集
	cond, args = termConditions([]string{"alpha", "beta"}, types.SearchInContent)
	assert.Equal(t, "notes.content LIKE ? OR notes.content LIKE ?", cond)
	assert.Equal(t, []interface{}{"%alpha%", "%beta%"}, args)

	cond, args = termConditions([]string{"alpha", "beta"}, types.SearchInBoth)
	assert.Equal(t,
		"(notes.title LIKE ? OR notes.content LIKE ?) OR (notes.title LIKE ? OR notes.content LIKE ?)",
		cond)
	assert.Equal(t, []interface{}{"%alpha%", "%alpha%", "%beta%", "%beta%"}, args)
}

func TestSearchSQLMatchesAnyTerm(t *testing.T) {
	db := newDryRunDB(t)
	s := &NoteSearch{
		UserID:   1,
		Terms:    []string{"alpha", "beta"},
		SearchIn: types.SearchInContent,
	}

	var list []*models.Note
	stmt := searchConditions(db, s).Find(&list).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "notes.content LIKE ? OR notes.content LIKE ?")
	assert.NotContains(t, sql, "notes.content LIKE ? AND")
	assert.Equal(t, []interface{}{int64(1), false, "%alpha%", "%beta%"}, stmt.Vars)
}

func TestSearchCountDistinctOnID(t *testing.T) {
	db := newDryRunDB(t)
	s := &NoteSearch{UserID: 1, TagIDs: []int64{7, 8}}

	var total int64
	stmt := searchCountQuery(db, s).Count(&total).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "COUNT(DISTINCT(`notes`.`id`))")
	assert.NotContains(t, sql, "`notes`.`*`")
	assert.Contains(t, sql, "JOIN note_tags ON note_tags.note_id = notes.id")
}

func TestSearchRowsDedupOnTagFilter(t *testing.T) {
	db := newDryRunDB(t)
	s := &NoteSearch{UserID: 1, TagIDs: []int64{7}}

	var list []*models.Note
	stmt := searchRowsQuery(db, s).Find(&list).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "SELECT DISTINCT notes.*")
	assert.Contains(t, sql, "notes.is_pinned desc, notes.updated_at desc")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", EscapeLike("plain"))
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `back\\slash`, EscapeLike(`back\slash`))
}
