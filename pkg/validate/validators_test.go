package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok, "expected *FieldError, got %T", err)
	return fe.Code
}

func TestNoteTitle(t *testing.T) {
	assert.NoError(t, NoteTitle("Weekly planning"))

	assert.Equal(t, "text_too_short", fieldCode(t, NoteTitle("ab")))
	assert.Equal(t, "text_too_long", fieldCode(t, NoteTitle(strings.Repeat("a", 201))))
	assert.Equal(t, "blacklisted_word", fieldCode(t, NoteTitle("this is SPAM title")))
	assert.Equal(t, "html_not_allowed", fieldCode(t, NoteTitle("hello <b>world</b>")))
	assert.Equal(t, "contains_profanity", fieldCode(t, NoteTitle("some vulgar words")))
}

func TestNoteContent(t *testing.T) {
	assert.NoError(t, NoteContent("a perfectly normal note body"))

	assert.Equal(t, "text_too_short", fieldCode(t, NoteContent("abcd")))
	assert.Equal(t, "blacklisted_word", fieldCode(t, NoteContent("click here, great scam inside")))

	var urls []string
	for i := 0; i < 11; i++ {
		urls = append(urls, "http://example.com/page")
	}
	assert.Equal(t, "too_many_urls", fieldCode(t, NoteContent(strings.Join(urls, " "))))

	// 20 字符以内不触发大写检查
	assert.NoError(t, NoteContent("SHORT YELLING OK"))
	assert.Equal(t, "excessive_caps", fieldCode(t, NoteContent("THIS IS ALL VERY LOUD SHOUTING TEXT")))
}

func TestCategoryName(t *testing.T) {
	assert.NoError(t, CategoryName("Work Projects"))
	assert.NoError(t, CategoryName("2024_archive"))

	assert.Equal(t, "text_too_short", fieldCode(t, CategoryName("a")))
	assert.Equal(t, "blacklisted_word", fieldCode(t, CategoryName("test")))
	assert.Equal(t, "invalid_characters", fieldCode(t, CategoryName("work/projects")))
}

func TestTagName(t *testing.T) {
	assert.NoError(t, TagName("golang"))
	assert.NoError(t, TagName("to-read"))

	assert.Equal(t, "invalid_characters", fieldCode(t, TagName("two words")))
	assert.Equal(t, "tag_starts_with_number", fieldCode(t, TagName("1golang")))
	assert.Equal(t, "text_too_long", fieldCode(t, TagName(strings.Repeat("x", 51))))
}

func TestHTMLTagsAllowlist(t *testing.T) {
	assert.NoError(t, HTMLTags("content", "plain text"))
	assert.NoError(t, HTMLTags("content", "<b>bold</b> and <i>italic</i>", "b", "i"))
	assert.Error(t, HTMLTags("content", "<script>alert(1)</script>", "b", "i"))
	assert.Error(t, HTMLTags("content", "<b>bold</b>"))
}

func TestFileUpload(t *testing.T) {
	assert.NoError(t, FileUpload(MaxUploadSize))
	assert.Equal(t, "file_too_large", fieldCode(t, FileUpload(MaxUploadSize+1)))
}

func TestQuotaError(t *testing.T) {
	err := NewQuotaError("notes", 1000, 1000)
	assert.Equal(t, "quota_exceeded", err.Code())
	assert.Equal(t, int64(1000), err.Current)
	assert.Contains(t, err.Error(), "1000 of 1000")
}
