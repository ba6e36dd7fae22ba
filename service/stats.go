package service

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"notely/dao"
	"notely/types"
)

type StatsService struct {
	users       *dao.Users
	notes       *dao.Notes
	categories  *dao.Categories
	tags        *dao.Tags
	sharings    *dao.Sharings
	attachments *dao.Attachments
}

func NewStatsService(users *dao.Users, notes *dao.Notes, categories *dao.Categories,
	tags *dao.Tags, sharings *dao.Sharings, attachments *dao.Attachments) *StatsService {
	return &StatsService{
		users: users, notes: notes, categories: categories,
		tags: tags, sharings: sharings, attachments: attachments,
	}
}

// Dashboard 并发聚合当前用户的统计信息
func (s *StatsService) Dashboard(ctx context.Context, userID int64) (*types.DashboardResponse, error) {
	resp := &types.DashboardResponse{}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		count, err := s.notes.CountByOwner(ctx, userID)
		resp.NotesCount = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.notes.CountArchived(ctx, userID)
		resp.ArchivedNotes = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.categories.CountByOwner(ctx, userID)
		resp.CategoriesCount = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.tags.CountByOwner(ctx, userID)
		resp.TagsCount = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.sharings.CountSharedWith(ctx, userID)
		resp.SharedWithMe = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.categories.TopByNotes(ctx, userID, 5)
		if err != nil {
			return err
		}
		for _, row := range rows {
			resp.TopCategories = append(resp.TopCategories, &types.CategoryStat{
				ID: row.ID, Name: row.Name, NotesCount: row.NotesCount,
			})
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		notes, err := s.notes.Recent(ctx, userID, 5)
		resp.RecentNotes = notes
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	resp.ActiveNotes = resp.NotesCount - resp.ArchivedNotes
	return resp, nil
}

// AdminStats 全站统计，仅管理员可见
func (s *StatsService) AdminStats(ctx context.Context) (*types.AdminStatsResponse, error) {
	resp := &types.AdminStatsResponse{}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		count, err := s.users.CountAll(ctx)
		resp.UserCount = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.notes.CountAll(ctx)
		resp.NoteCount = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		total, err := s.attachments.SumSizeAll(ctx)
		resp.AttachmentBytes = total
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.notes.CountPerUser(ctx, 20)
		if err != nil {
			return err
		}
		for _, row := range rows {
			resp.TopUsers = append(resp.TopUsers, &types.UserNoteStat{
				UserID: row.UserID, Username: row.Username, NotesCount: row.NotesCount,
			})
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
