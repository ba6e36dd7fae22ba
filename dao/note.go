package dao

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"notely/models"
	"notely/types"
)

type Notes struct {
	*Repo[models.Note]
}

func NewNotes(db *gorm.DB) *Notes {
	return &Notes{Repo: NewRepo[models.Note](db)}
}

// FindDetail 取笔记及分类、标签
func (d *Notes) FindDetail(ctx context.Context, id int64) (*models.Note, error) {
	var note models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *Notes) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Note{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (d *Notes) CountArchived(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Note{}).
		Where("user_id = ? AND is_archived = ?", userID, true).
		Count(&count).Error
	return count, err
}

// SumContentBytes 所有者全部笔记正文的字节数之和
func (d *Notes) SumContentBytes(ctx context.Context, userID int64) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).Model(&models.Note{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(LENGTH(content)), 0)").
		Scan(&total).Error
	return total, err
}

// Remove 删除笔记并清理标签关联，共享与附件记录由外键级联
func (d *Notes) Remove(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Note{}, id).Error
	})
}

// ReplaceTags 整体替换笔记的标签集合
func (d *Notes) ReplaceTags(ctx context.Context, note *models.Note, tags []*models.Tag) error {
	return d.Db.WithContext(ctx).Model(note).Association("Tags").Replace(tags)
}

// Recent 按更新时间取最近的笔记
func (d *Notes) Recent(ctx context.Context, userID int64, limit int) ([]*models.Note, error) {
	var list []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (d *Notes) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Note{}).Count(&count).Error
	return count, err
}

// FindByOwner 取某用户的全部笔记，置顶优先
func (d *Notes) FindByOwner(ctx context.Context, userID int64) ([]*models.Note, error) {
	var list []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("is_pinned desc, updated_at desc").
		Find(&list).Error
	return list, err
}

// UserNoteCount 按用户聚合的笔记数
type UserNoteCount struct {
	UserID     int64
	Username   string
	NotesCount int64
}

// CountPerUser 笔记数最多的前 limit 个用户
func (d *Notes) CountPerUser(ctx context.Context, limit int) ([]*UserNoteCount, error) {
	var rows []*UserNoteCount
	err := d.Db.WithContext(ctx).Model(&models.Note{}).
		Select("users.id AS user_id, users.username, COUNT(notes.id) AS notes_count").
		Joins("JOIN users ON users.id = notes.user_id").
		Group("users.id, users.username").
		Order("notes_count DESC, users.username ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// NoteSearch 组装好的检索条件，日期已解析
type NoteSearch struct {
	UserID          int64
	SharedNoteIDs   []int64 // 共享给该用户的笔记，空则不并入
	Terms           []string
	SearchIn        string
	CategoryID      int64
	TagIDs          []int64
	IncludeArchived bool
	DateFrom        *time.Time
	DateTo          *time.Time
	SortBy          string
	Page            int
	PageSize        int
}

// Search 执行检索，返回当前页与总数
func (d *Notes) Search(ctx context.Context, s *NoteSearch) ([]*models.Note, int64, error) {
	var total int64
	if err := searchCountQuery(d.Db.WithContext(ctx), s).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []*models.Note
	err := searchRowsQuery(d.Db.WithContext(ctx), s).
		Offset((s.Page - 1) * s.PageSize).
		Limit(s.PageSize).
		Find(&list).Error
	return list, total, err
}

// searchConditions 组装过滤条件，不含去重与排序
func searchConditions(db *gorm.DB, s *NoteSearch) *gorm.DB {
	q := db.Model(&models.Note{})

	if len(s.SharedNoteIDs) > 0 {
		q = q.Where("notes.user_id = ? OR notes.id IN ?", s.UserID, s.SharedNoteIDs)
	} else {
		q = q.Where("notes.user_id = ?", s.UserID)
	}
	if !s.IncludeArchived {
		q = q.Where("notes.is_archived = ?", false)
	}
	if s.CategoryID > 0 {
		q = q.Where("notes.category_id = ?", s.CategoryID)
	}
	if len(s.TagIDs) > 0 {
		q = q.Joins("JOIN note_tags ON note_tags.note_id = notes.id").
			Where("note_tags.tag_id IN ?", s.TagIDs)
	}
	if s.DateFrom != nil {
		q = q.Where("notes.updated_at >= ?", *s.DateFrom)
	}
	if s.DateTo != nil {
		q = q.Where("notes.updated_at < ?", *s.DateTo)
	}
	if cond, args := termConditions(s.Terms, s.SearchIn); cond != "" {
		q = q.Where(cond, args...)
	}
	return q
}

// searchCountQuery 标签过滤会放大行数，计数一律对 id 去重
func searchCountQuery(db *gorm.DB, s *NoteSearch) *gorm.DB {
	return searchConditions(db, s).Distinct("notes.id")
}

func searchRowsQuery(db *gorm.DB, s *NoteSearch) *gorm.DB {
	q := searchConditions(db, s)
	if len(s.TagIDs) > 0 {
		q = q.Distinct("notes.*")
	}
	return q.Preload("Category").
		Preload("Tags").
		Order(OrderClause(s.SortBy))
}

// termConditions 多词取并集：任一词命中即算匹配
func termConditions(terms []string, searchIn string) (string, []interface{}) {
	if len(terms) == 0 {
		return "", nil
	}
	var groups []string
	var args []interface{}
	for _, term := range terms {
		pattern := "%" + EscapeLike(term) + "%"
		switch searchIn {
		case types.SearchInTitle:
			groups = append(groups, "notes.title LIKE ?")
			args = append(args, pattern)
		case types.SearchInContent:
			groups = append(groups, "notes.content LIKE ?")
			args = append(args, pattern)
		default:
			groups = append(groups, "(notes.title LIKE ? OR notes.content LIKE ?)")
			args = append(args, pattern, pattern)
		}
	}
	return strings.Join(groups, " OR "), args
}

// SearchTerms 把查询串拆成匹配词，整词匹配时不拆分
func SearchTerms(query string, exact bool) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if exact {
		return []string{query}
	}
	return strings.Fields(query)
}

// OrderClause 排序方式到 SQL 的映射，未知值按默认处理
func OrderClause(sortBy string) string {
	switch sortBy {
	case types.SortUpdatedDesc:
		return "notes.updated_at desc"
	case types.SortUpdatedAsc:
		return "notes.updated_at asc"
	case types.SortCreatedDesc:
		return "notes.created_at desc"
	case types.SortCreatedAsc:
		return "notes.created_at asc"
	case types.SortTitleAsc:
		return "notes.title asc"
	case types.SortTitleDesc:
		return "notes.title desc"
	default:
		return "notes.is_pinned desc, notes.updated_at desc"
	}
}

// EscapeLike 转义 LIKE 模式中的通配符
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
