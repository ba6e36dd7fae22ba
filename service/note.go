package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"notely/dao"
	"notely/models"
	"notely/pkg/authz"
	"notely/pkg/response"
	"notely/pkg/sanitize"
	"notely/pkg/snowflake"
	"notely/pkg/validate"
	"notely/types"
)

type NoteService struct {
	notes      *dao.Notes
	categories *dao.Categories
	tags       *dao.Tags
	sharings   *dao.Sharings
	quota      *QuotaService
}

func NewNoteService(notes *dao.Notes, categories *dao.Categories, tags *dao.Tags,
	sharings *dao.Sharings, quota *QuotaService) *NoteService {
	return &NoteService{notes: notes, categories: categories, tags: tags, sharings: sharings, quota: quota}
}

// Get 取单条笔记。未共享给请求者的笔记按不存在处理，不暴露其存在性。
func (s *NoteService) Get(ctx context.Context, userID, id int64) (*models.Note, error) {
	note, _, err := s.findViewable(ctx, userID, id)
	return note, err
}

// Create 创建笔记：校验、归属检查、配额、清洗，最后落库
func (s *NoteService) Create(ctx context.Context, userID int64, req *types.CreateNoteRequest) (*models.Note, error) {
	content, err := s.validateBody(req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, userID, req.CategoryID); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, userID, req.TagIDs)
	if err != nil {
		return nil, err
	}
	if err := s.quota.CheckNoteCount(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.quota.CheckContentBytes(ctx, userID, int64(len(content))); err != nil {
		return nil, err
	}

	note := &models.Note{
		ID:         snowflake.GenID(),
		Title:      req.Title,
		Content:    content,
		CategoryID: req.CategoryID,
		UserID:     userID,
	}
	applyFlags(note, req.IsPinned, req.IsArchived)
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := s.notes.ReplaceTags(ctx, note, tags); err != nil {
			return nil, err
		}
	}
	return s.notes.FindDetail(ctx, note.ID)
}

// Update 整体更新。归属者与 edit 级共享者可改，分类与标签始终取自归属者名下。
func (s *NoteService) Update(ctx context.Context, userID, id int64, req *types.UpdateNoteRequest) (*models.Note, error) {
	note, err := s.findEditable(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	content, err := s.validateBody(req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, note.UserID, req.CategoryID); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, note.UserID, req.TagIDs)
	if err != nil {
		return nil, err
	}
	delta := int64(len(content)) - int64(len(note.Content))
	if err := s.quota.CheckContentBytes(ctx, note.UserID, delta); err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Content = content
	note.CategoryID = req.CategoryID
	applyFlags(note, req.IsPinned, req.IsArchived)
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, err
	}
	if err := s.notes.ReplaceTags(ctx, note, tags); err != nil {
		return nil, err
	}
	return s.notes.FindDetail(ctx, note.ID)
}

// Delete 仅归属者可删，附件与共享授权级联清理
func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	note, _, err := s.findViewable(ctx, userID, id)
	if err != nil {
		return err
	}
	if note.UserID != userID {
		return response.Forbidden("only the owner can delete a note")
	}
	return s.notes.Remove(ctx, id)
}

// SetPinned 置顶开关，归档中的笔记不可置顶
func (s *NoteService) SetPinned(ctx context.Context, userID, id int64, pinned bool) (*models.Note, error) {
	note, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if pinned && note.IsArchived {
		return nil, validate.NewFieldError("is_pinned", "archived_note_pinned", "archived notes cannot be pinned")
	}
	note.IsPinned = pinned
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// SetArchived 归档开关，归档时自动取消置顶
func (s *NoteService) SetArchived(ctx context.Context, userID, id int64, archived bool) (*models.Note, error) {
	note, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	note.IsArchived = archived
	if archived {
		note.IsPinned = false
	}
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Search 检索笔记，也用于普通列表
func (s *NoteService) Search(ctx context.Context, userID int64, req *types.SearchNotesRequest) (*types.ListNotesResponse, error) {
	search := &dao.NoteSearch{
		UserID:          userID,
		Terms:           dao.SearchTerms(req.Query, req.ExactMatch),
		SearchIn:        req.SearchIn,
		CategoryID:      req.CategoryID,
		TagIDs:          req.TagIDs,
		IncludeArchived: req.IncludeArchived,
		SortBy:          req.SortBy,
		Page:            req.Page,
		PageSize:        req.PageSize,
	}
	if search.Page <= 0 {
		search.Page = types.DefaultPage
	}
	if search.PageSize <= 0 {
		search.PageSize = types.DefaultPageSize
	}

	if req.DateFrom != "" {
		from, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return nil, validate.NewFieldError("date_from", "invalid_date", "date must be in YYYY-MM-DD format")
		}
		search.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return nil, validate.NewFieldError("date_to", "invalid_date", "date must be in YYYY-MM-DD format")
		}
		// 含当天
		end := to.AddDate(0, 0, 1)
		search.DateTo = &end
	}
	if req.IncludeShared {
		ids, err := s.sharings.SharedNoteIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		search.SharedNoteIDs = ids
	}

	notes, total, err := s.notes.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	return &types.ListNotesResponse{Notes: notes, Total: total}, nil
}

// SharedWithMe 共享给当前用户的笔记
func (s *NoteService) SharedWithMe(ctx context.Context, userID int64) ([]*models.Note, error) {
	return s.sharings.SharedWithUser(ctx, userID)
}

func (s *NoteService) validateBody(title, content string) (string, error) {
	if err := validate.NoteTitle(title); err != nil {
		return "", err
	}
	if err := validate.NoteContent(content); err != nil {
		return "", err
	}
	cleaned := sanitize.StripTags(content)
	// 清洗可能掏空正文，按原始校验口径兜底
	if err := validate.NoteContent(cleaned); err != nil {
		return "", err
	}
	return cleaned, nil
}

func (s *NoteService) checkCategory(ctx context.Context, ownerID int64, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categories.FindById(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validate.NewFieldError("category_id", "invalid_category", "category not found")
		}
		return err
	}
	if category.UserID != ownerID {
		return validate.NewFieldError("category_id", "invalid_category", "category not found")
	}
	return nil
}

func (s *NoteService) resolveTags(ctx context.Context, ownerID int64, tagIDs []int64) ([]*models.Tag, error) {
	ids := dedupIDs(tagIDs)
	if len(ids) > models.MaxTagsPerNote {
		return nil, validate.NewFieldError("tag_ids", "too_many_tags", "a note cannot have more than 10 tags")
	}
	tags, err := s.tags.FindOwned(ctx, ownerID, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, validate.NewFieldError("tag_ids", "invalid_tags", "one or more tags not found")
	}
	return tags, nil
}

// applyFlags 归档优先于置顶，二者互斥
func applyFlags(note *models.Note, pinned, archived bool) {
	note.IsArchived = archived
	note.IsPinned = pinned && !archived
}

// dedupIDs 去重并保持首次出现的顺序
func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// findViewable 归属者或被共享者可见，其余按不存在处理
func (s *NoteService) findViewable(ctx context.Context, userID, id int64) (*models.Note, *authz.Grant, error) {
	note, err := s.notes.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NotFound("note not found")
		}
		return nil, nil, err
	}
	if note.UserID == userID {
		return note, nil, nil
	}
	sharing, err := s.sharings.FindGrant(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NotFound("note not found")
		}
		return nil, nil, err
	}
	grant := &authz.Grant{UserID: sharing.SharedWithID, Permission: authz.Permission(sharing.Permission)}
	return note, grant, nil
}

func (s *NoteService) findEditable(ctx context.Context, userID, id int64) (*models.Note, error) {
	note, grant, err := s.findViewable(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if note.UserID == userID {
		return note, nil
	}
	actor := &authz.Actor{ID: userID}
	var grants []authz.Grant
	if grant != nil {
		grants = []authz.Grant{*grant}
	}
	if !authz.CanEdit(actor, note, grants) {
		return nil, response.Forbidden("you don't have permission to edit this note")
	}
	return note, nil
}

func (s *NoteService) findOwned(ctx context.Context, userID, id int64) (*models.Note, error) {
	note, _, err := s.findViewable(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, response.Forbidden("only the owner can change this note's state")
	}
	return note, nil
}
