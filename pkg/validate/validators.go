package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const MaxUploadSize = 5 << 20 // 单个附件上限 5MB

var (
	titleBlacklist   = []string{"spam", "junk", "inappropriate", "offensive"}
	contentBlacklist = []string{"spam", "scam", "offensive", "inappropriate"}
	nameBlacklist    = []string{"spam", "junk", "test", "undefined", "none"}

	profanityPattern = regexp.MustCompile(`\b(profanity|obscene|vulgar|explicit)\b`)
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	htmlTagName      = regexp.MustCompile(`</?\s*([a-zA-Z0-9]+)`)
	urlPattern       = regexp.MustCompile(`https?://(?:[-\w.]|(?:%[\da-fA-F]{2}))+`)

	categoryNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s_-]+$`)
	tagNamePattern      = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	leadingDigitPattern = regexp.MustCompile(`^\d`)

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Blacklist 检查文本是否包含禁用词（大小写不敏感，子串匹配）
func Blacklist(field, value string, words []string) error {
	if value == "" {
		return nil
	}
	lower := strings.ToLower(value)
	for _, w := range words {
		if strings.Contains(lower, strings.ToLower(w)) {
			return NewFieldError(field, "blacklisted_word",
				fmt.Sprintf("text contains prohibited word: %s", w))
		}
	}
	return nil
}

// LengthRange 检查长度范围，max <= 0 表示无上限
func LengthRange(field, value string, min, max int) error {
	n := len([]rune(value))
	if min > 0 && n < min {
		return NewFieldError(field, "text_too_short",
			fmt.Sprintf("text is too short, minimum length is %d characters", min))
	}
	if max > 0 && n > max {
		return NewFieldError(field, "text_too_long",
			fmt.Sprintf("text is too long, maximum length is %d characters", max))
	}
	return nil
}

// Charset 检查文本是否只包含允许的字符
func Charset(field, value string, pattern *regexp.Regexp) error {
	if value == "" {
		return nil
	}
	if !pattern.MatchString(value) {
		return NewFieldError(field, "invalid_characters", "text contains invalid characters")
	}
	return nil
}

// Profanity 按词边界检查脏话词表
func Profanity(field, value string) error {
	if value == "" {
		return nil
	}
	if profanityPattern.MatchString(strings.ToLower(value)) {
		return NewFieldError(field, "contains_profanity", "text contains profanity")
	}
	return nil
}

// HTMLTags 检查 HTML 标签，allowedTags 之外的标签一律拒绝
func HTMLTags(field, value string, allowedTags ...string) error {
	if value == "" {
		return nil
	}
	if len(allowedTags) == 0 {
		if htmlTagPattern.MatchString(value) {
			return NewFieldError(field, "html_not_allowed", "text contains HTML tags, which are not allowed")
		}
		return nil
	}

	allowed := make(map[string]bool, len(allowedTags))
	for _, t := range allowedTags {
		allowed[strings.ToLower(t)] = true
	}
	for _, tag := range htmlTagPattern.FindAllString(value, -1) {
		m := htmlTagName.FindStringSubmatch(tag)
		if m == nil || !allowed[strings.ToLower(m[1])] {
			return NewFieldError(field, "html_not_allowed", "text contains HTML tags, which are not allowed")
		}
	}
	return nil
}

// NoteTitle 校验笔记标题
func NoteTitle(value string) error {
	if err := Blacklist("title", value, titleBlacklist); err != nil {
		return err
	}
	if err := LengthRange("title", value, 3, 200); err != nil {
		return err
	}
	if err := HTMLTags("title", value); err != nil {
		return err
	}
	return Profanity("title", value)
}

// NoteContent 校验笔记正文
func NoteContent(value string) error {
	if err := Blacklist("content", value, contentBlacklist); err != nil {
		return err
	}
	if err := LengthRange("content", value, 5, 0); err != nil {
		return err
	}
	if n := len(urlPattern.FindAllString(value, -1)); n > 10 {
		return NewFieldError("content", "too_many_urls",
			fmt.Sprintf("content contains too many URLs (%d), maximum allowed is 10", n))
	}
	if err := Profanity("content", value); err != nil {
		return err
	}
	// 超过 20 字符时检查大写占比，字母中超过 70% 大写视为刷屏
	if len([]rune(value)) > 20 {
		var upper, alpha int
		for _, r := range value {
			if unicode.IsLetter(r) {
				alpha++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if alpha > 0 && float64(upper)/float64(alpha) > 0.7 {
			return NewFieldError("content", "excessive_caps", "content contains excessive capitalization")
		}
	}
	return nil
}

// CategoryName 校验分类名
func CategoryName(value string) error {
	if err := Blacklist("name", value, nameBlacklist); err != nil {
		return err
	}
	if err := LengthRange("name", value, 2, 100); err != nil {
		return err
	}
	if err := Charset("name", value, categoryNamePattern); err != nil {
		return err
	}
	return Profanity("name", value)
}

// TagName 校验标签名，不允许空白字符且不能以数字开头
func TagName(value string) error {
	if err := Blacklist("name", value, nameBlacklist); err != nil {
		return err
	}
	if err := LengthRange("name", value, 2, 50); err != nil {
		return err
	}
	if err := Charset("name", value, tagNamePattern); err != nil {
		return err
	}
	if leadingDigitPattern.MatchString(value) {
		return NewFieldError("name", "tag_starts_with_number", "tag name cannot start with a number")
	}
	return Profanity("name", value)
}

// FileUpload 校验上传文件声明的大小
func FileUpload(size int64) error {
	if size > MaxUploadSize {
		return NewFieldError("file", "file_too_large", "file size cannot exceed 5MB")
	}
	return nil
}
