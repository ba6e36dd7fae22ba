package service

import (
	"context"

	"notely/dao"
	"notely/pkg/validate"
)

// 每用户资源配额
const (
	MaxCategoriesPerUser  = 50
	MaxTagsPerUser        = 100
	MaxNotesPerUser       = 1000
	MaxAttachmentsPerUser = 100
	MaxContentBytes       = 10 << 20  // 全部笔记正文之和
	MaxAttachmentBytes    = 100 << 20 // 全部附件之和
)

// countExceeded 计数配额，存量达到上限即拒绝新增
func countExceeded(count, max int64) bool {
	return count >= max
}

// bytesExceeded 字节配额，按写入后的总量判断，delta 可为负
func bytesExceeded(total, delta, max int64) bool {
	return total+delta > max
}

// QuotaService 配额检查。先查后写，并发越界依赖上层约束兜底。
type QuotaService struct {
	notes       *dao.Notes
	categories  *dao.Categories
	tags        *dao.Tags
	attachments *dao.Attachments
}

func NewQuotaService(notes *dao.Notes, categories *dao.Categories, tags *dao.Tags, attachments *dao.Attachments) *QuotaService {
	return &QuotaService{notes: notes, categories: categories, tags: tags, attachments: attachments}
}

func (s *QuotaService) CheckCategoryCount(ctx context.Context, userID int64) error {
	count, err := s.categories.CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if countExceeded(count, MaxCategoriesPerUser) {
		return validate.NewQuotaError("categories", count, MaxCategoriesPerUser)
	}
	return nil
}

func (s *QuotaService) CheckTagCount(ctx context.Context, userID int64) error {
	count, err := s.tags.CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if countExceeded(count, MaxTagsPerUser) {
		return validate.NewQuotaError("tags", count, MaxTagsPerUser)
	}
	return nil
}

func (s *QuotaService) CheckNoteCount(ctx context.Context, userID int64) error {
	count, err := s.notes.CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if countExceeded(count, MaxNotesPerUser) {
		return validate.NewQuotaError("notes", count, MaxNotesPerUser)
	}
	return nil
}

// CheckContentBytes 校验正文总量。delta 为本次写入相对存量的变化量，可为负。
func (s *QuotaService) CheckContentBytes(ctx context.Context, userID int64, delta int64) error {
	total, err := s.notes.SumContentBytes(ctx, userID)
	if err != nil {
		return err
	}
	if bytesExceeded(total, delta, MaxContentBytes) {
		return validate.NewQuotaError("content_bytes", total+delta, MaxContentBytes)
	}
	return nil
}

// CheckAttachment 同时校验附件数量与总字节数
func (s *QuotaService) CheckAttachment(ctx context.Context, userID int64, size int64) error {
	count, err := s.attachments.CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if countExceeded(count, MaxAttachmentsPerUser) {
		return validate.NewQuotaError("attachments", count, MaxAttachmentsPerUser)
	}
	total, err := s.attachments.SumSizeByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if bytesExceeded(total, size, MaxAttachmentBytes) {
		return validate.NewQuotaError("attachment_bytes", total+size, MaxAttachmentBytes)
	}
	return nil
}
