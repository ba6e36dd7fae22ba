package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	assert.Equal(t, "plain text", StripTags("plain text"))
	assert.Equal(t, "boldtext", StripTags("<b>bold</b>text"))
	assert.Equal(t, "alert(1)", StripTags("<script>alert(1)</script>"))
	assert.Equal(t, "", StripTags("<img src=x onerror=alert(1)>"))
}

// 清洗必须是幂等的：对结果再清洗一次不产生变化
func TestStripTagsIdempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"<b>bold</b> and <i>italic</i>",
		"&lt;b&gt;escaped&lt;/b&gt;",
		"a < b && b > c",
		"<div><p>nested</p></div>",
	}
	for _, input := range inputs {
		once := StripTags(input)
		assert.Equal(t, once, StripTags(once), "input %q", input)
	}
}
