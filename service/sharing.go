package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notely/dao"
	"notely/models"
	"notely/pkg/authz"
	"notely/pkg/response"
	"notely/pkg/snowflake"
	"notely/pkg/validate"
	"notely/types"
)

type SharingService struct {
	notes    *dao.Notes
	users    *dao.Users
	sharings *dao.Sharings
}

func NewSharingService(notes *dao.Notes, users *dao.Users, sharings *dao.Sharings) *SharingService {
	return &SharingService{notes: notes, users: users, sharings: sharings}
}

// Share 把笔记共享给指定用户。重复共享覆盖权限等级。
func (s *SharingService) Share(ctx context.Context, ownerID, noteID int64, req *types.ShareNoteRequest) (*types.ShareNoteResponse, error) {
	note, err := s.findOwnedNote(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	permission := authz.Permission(req.Permission)
	if req.Permission == "" {
		permission = authz.PermissionRead
	}
	if !permission.Valid() {
		return nil, validate.NewFieldError("permission", "invalid_permission", "permission must be read, edit or admin")
	}

	target, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validate.NewFieldError("username", "user_not_found", "user not found")
		}
		return nil, err
	}
	if target.ID == ownerID {
		return nil, validate.NewFieldError("username", "self_share", "you cannot share a note with yourself")
	}

	// 已有授权则只更新等级，不占新配额
	existing, err := s.sharings.FindGrant(ctx, note.ID, target.ID)
	if err == nil {
		existing.Permission = string(permission)
		if err := s.sharings.Save(ctx, existing); err != nil {
			return nil, err
		}
		return &types.ShareNoteResponse{ShareID: existing.ID, Username: target.Username, Permission: existing.Permission}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	count, err := s.sharings.CountByNote(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxSharesPerNote {
		return nil, validate.NewQuotaError("shares", count, models.MaxSharesPerNote)
	}

	sharing := &models.NoteSharing{
		ID:           snowflake.GenID(),
		NoteID:       note.ID,
		SharedWithID: target.ID,
		Permission:   string(permission),
	}
	if err := s.sharings.Create(ctx, sharing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validate.NewFieldError("username", "already_shared", "note is already shared with this user")
		}
		return nil, err
	}
	return &types.ShareNoteResponse{ShareID: sharing.ID, Username: target.Username, Permission: sharing.Permission}, nil
}

// Unshare 撤销某用户的授权
func (s *SharingService) Unshare(ctx context.Context, ownerID, noteID, sharedWithID int64) error {
	note, err := s.findOwnedNote(ctx, ownerID, noteID)
	if err != nil {
		return err
	}
	sharing, err := s.sharings.FindGrant(ctx, note.ID, sharedWithID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("sharing not found")
		}
		return err
	}
	return s.sharings.Delete(ctx, sharing.ID)
}

// List 列出一条笔记的全部授权，仅归属者可见
func (s *SharingService) List(ctx context.Context, ownerID, noteID int64) ([]*models.NoteSharing, error) {
	note, err := s.findOwnedNote(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}
	return s.sharings.FindByNote(ctx, note.ID)
}

// findOwnedNote 共享管理只开放给归属者，其他人按笔记不存在处理
func (s *SharingService) findOwnedNote(ctx context.Context, ownerID, noteID int64) (*models.Note, error) {
	note, err := s.notes.FindById(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("note not found")
		}
		return nil, err
	}
	if note.UserID != ownerID {
		return nil, response.NotFound("note not found")
	}
	return note, nil
}
