package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	now := time.Now()
	data, err := Render(&ExportNote{
		ID:        12345,
		Title:     "Meeting notes",
		Category:  "Work",
		Tags:      []string{"planning", "q3"},
		Status:    "Pinned",
		CreatedAt: now,
		UpdatedAt: now,
		Content:   "First paragraph.\n\nSecond paragraph with more text.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderAll(t *testing.T) {
	now := time.Now()
	notes := []*ExportNote{
		{ID: 1, Title: "First", Status: "Active", CreatedAt: now, UpdatedAt: now, Content: "one"},
		{ID: 2, Title: "Second", Status: "Archived", CreatedAt: now, UpdatedAt: now, Content: "two"},
	}
	data, err := RenderAll("My Notes", notes)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))

	// 没有笔记也要产出合法文档
	empty, err := RenderAll("My Notes", nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(empty[:4]))
}

func TestRenderEmptyMetadata(t *testing.T) {
	data, err := Render(&ExportNote{
		ID:        1,
		Title:     "Untitled",
		Status:    "Active",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Content:   "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
