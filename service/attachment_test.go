package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := objectKey("report.pdf")
	assert.True(t, strings.HasPrefix(key, "note_attachments/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	noExt := objectKey("README")
	assert.True(t, strings.HasPrefix(noExt, "note_attachments/"))
	assert.False(t, strings.Contains(noExt, ".."))

	// 同名文件生成不同的对象键
	assert.NotEqual(t, objectKey("a.txt"), objectKey("a.txt"))
}
