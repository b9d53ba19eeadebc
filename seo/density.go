package seo

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML 去掉 HTML 标签并反转义实体，标签位置替换为空格以免单词粘连。
func StripHTML(s string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(s, " "))
}

// Words 按非字母数字字符切分并转小写。
func Words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// KeywordDensity 计算关键词（可为多个单词）在文本中的密度，返回百分比。
// 密度 = 出现次数 * 关键词单词数 / 总单词数 * 100；文本或关键词为空时为 0。
func KeywordDensity(text, keyword string) float64 {
	words := Words(StripHTML(text))
	kw := Words(keyword)
	if len(words) == 0 || len(kw) == 0 || len(kw) > len(words) {
		return 0
	}

	occurrences := 0
	for i := 0; i+len(kw) <= len(words); i++ {
		match := true
		for j := range kw {
			if words[i+j] != kw[j] {
				match = false
				break
			}
		}
		if match {
			occurrences++
			i += len(kw) - 1
		}
	}
	return float64(occurrences*len(kw)) / float64(len(words)) * 100
}
