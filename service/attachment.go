package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"notely/dao"
	"notely/models"
	"notely/pkg/log"
	"notely/pkg/response"
	"notely/pkg/snowflake"
	"notely/pkg/validate"
)

type AttachmentService struct {
	attachments *dao.Attachments
	noteSvc     *NoteService
	quota       *QuotaService
	oss         IOssService
}

func NewAttachmentService(attachments *dao.Attachments,
	noteSvc *NoteService, quota *QuotaService, oss IOssService) *AttachmentService {
	return &AttachmentService{attachments: attachments, noteSvc: noteSvc, quota: quota, oss: oss}
}

// Upload 校验大小与配额后把文件写入 OSS，再落附件记录
func (s *AttachmentService) Upload(ctx context.Context, userID, noteID int64, file *multipart.FileHeader) (*models.NoteAttachment, error) {
	note, err := s.noteSvc.findEditable(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if err := validate.FileUpload(file.Size); err != nil {
		return nil, err
	}
	// 配额按笔记归属者计
	if err := s.quota.CheckAttachment(ctx, note.UserID, file.Size); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	key := objectKey(file.Filename)
	if err := s.oss.UploadReader(ctx, key, src); err != nil {
		log.L.Error("attachment upload failed", zap.String("key", key), zap.Error(err))
		return nil, response.NewError(502, "failed to store attachment")
	}

	attachment := &models.NoteAttachment{
		ID:        snowflake.GenID(),
		NoteID:    note.ID,
		ObjectKey: key,
		FileName:  filepath.Base(file.Filename),
		FileSize:  file.Size,
		FileType:  file.Header.Get("Content-Type"),
	}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		// 元数据落库失败时回收已上传对象
		if derr := s.oss.Delete(ctx, key); derr != nil {
			log.L.Warn("orphan attachment object left behind", zap.String("key", key), zap.Error(derr))
		}
		return nil, err
	}
	return attachment, nil
}

// List 列出笔记附件，可见性随笔记
func (s *AttachmentService) List(ctx context.Context, userID, noteID int64) ([]*models.NoteAttachment, error) {
	note, _, err := s.noteSvc.findViewable(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	return s.attachments.FindByNote(ctx, note.ID)
}

// Download 打开附件内容流，调用方负责关闭
func (s *AttachmentService) Download(ctx context.Context, userID, noteID, attachmentID int64) (*models.NoteAttachment, io.ReadCloser, error) {
	note, _, err := s.noteSvc.findViewable(ctx, userID, noteID)
	if err != nil {
		return nil, nil, err
	}
	attachment, err := s.findOnNote(ctx, note.ID, attachmentID)
	if err != nil {
		return nil, nil, err
	}
	body, err := s.oss.DownloadReader(ctx, attachment.ObjectKey)
	if err != nil {
		log.L.Error("attachment download failed",
			zap.String("key", attachment.ObjectKey), zap.Error(err))
		return nil, nil, response.NewError(502, "failed to fetch attachment")
	}
	return attachment, body, nil
}

// Delete 删除附件记录，OSS 对象尽力回收
func (s *AttachmentService) Delete(ctx context.Context, userID, noteID, attachmentID int64) error {
	note, err := s.noteSvc.findEditable(ctx, userID, noteID)
	if err != nil {
		return err
	}
	attachment, err := s.findOnNote(ctx, note.ID, attachmentID)
	if err != nil {
		return err
	}
	if err := s.attachments.Delete(ctx, attachment.ID); err != nil {
		return err
	}
	if err := s.oss.Delete(ctx, attachment.ObjectKey); err != nil {
		log.L.Warn("attachment object cleanup failed",
			zap.String("key", attachment.ObjectKey), zap.Error(err))
	}
	return nil
}

func (s *AttachmentService) findOnNote(ctx context.Context, noteID, attachmentID int64) (*models.NoteAttachment, error) {
	attachment, err := s.attachments.FindById(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("attachment not found")
		}
		return nil, err
	}
	if attachment.NoteID != noteID {
		return nil, response.NotFound("attachment not found")
	}
	return attachment, nil
}

func objectKey(filename string) string {
	now := time.Now()
	return fmt.Sprintf("note_attachments/%s/%s%s",
		now.Format("2006/01/02"), uuid.NewString(), filepath.Ext(filename))
}
