package service

import (
	"context"
	"fmt"

	"notely/dao"
	"notely/models"
	"notely/pkg/pdf"
)

type ExportService struct {
	notes   *dao.Notes
	noteSvc *NoteService
}

func NewExportService(notes *dao.Notes, noteSvc *NoteService) *ExportService {
	return &ExportService{notes: notes, noteSvc: noteSvc}
}

// ExportPDF 把笔记渲染成 PDF，可见性随笔记本身
func (s *ExportService) ExportPDF(ctx context.Context, userID, noteID int64) (string, []byte, error) {
	note, _, err := s.noteSvc.findViewable(ctx, userID, noteID)
	if err != nil {
		return "", nil, err
	}

	data, err := pdf.Render(toExportNote(note))
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("note_%d.pdf", note.ID), data, nil
}

// ExportAllPDF 把当前用户的全部笔记导出为一份 PDF，每条笔记一节
func (s *ExportService) ExportAllPDF(ctx context.Context, userID int64) (string, []byte, error) {
	notes, err := s.notes.FindByOwner(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	exports := make([]*pdf.ExportNote, 0, len(notes))
	for _, note := range notes {
		exports = append(exports, toExportNote(note))
	}
	data, err := pdf.RenderAll("My Notes", exports)
	if err != nil {
		return "", nil, err
	}
	return "notes.pdf", data, nil
}

func toExportNote(note *models.Note) *pdf.ExportNote {
	export := &pdf.ExportNote{
		ID:        note.ID,
		Title:     note.Title,
		Status:    noteStatus(note),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		Content:   note.Content,
	}
	if note.Category != nil {
		export.Category = note.Category.Name
	}
	for _, tag := range note.Tags {
		export.Tags = append(export.Tags, tag.Name)
	}
	return export
}

func noteStatus(note *models.Note) string {
	switch {
	case note.IsArchived:
		return "Archived"
	case note.IsPinned:
		return "Pinned"
	default:
		return "Active"
	}
}
