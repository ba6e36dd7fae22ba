package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notely/models"
)

func TestNoteStatus(t *testing.T) {
	assert.Equal(t, "Active", noteStatus(&models.Note{}))
	assert.Equal(t, "Pinned", noteStatus(&models.Note{IsPinned: true}))
	assert.Equal(t, "Archived", noteStatus(&models.Note{IsArchived: true}))
	// 两个标记同时出现时按归档算
	assert.Equal(t, "Archived", noteStatus(&models.Note{IsPinned: true, IsArchived: true}))
}
