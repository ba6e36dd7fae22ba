package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags 去除正文中的所有标记。循环到不动点，保证二次清洗结果不变。
func StripTags(value string) string {
	for i := 0; i < 16; i++ {
		next := html.UnescapeString(strict.Sanitize(value))
		if next == value {
			return value
		}
		value = next
	}
	return value
}
