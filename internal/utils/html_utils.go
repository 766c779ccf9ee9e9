package utils

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

const excerptLimit = 150

// 摘要用的朴素标签剔除:任何 <...> 片段都算标签
// 不解码实体,也不特殊处理未闭合或嵌套的尖括号,与线上行为保持一致
var tagPattern = regexp.MustCompile(`<[^>]*>`)

var ugcPolicy = bluemonday.UGCPolicy()

func init() {
	// Allow images
	ugcPolicy.AllowImages()
	// Force links to open in new tab
	ugcPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	// Add noopener or noreferrer and follow security best practices
	ugcPolicy.RequireNoReferrerOnLinks(true)
}

// SanitizeUGC 清洗用户提交的富文本,移除脚本等潜在恶意内容
func SanitizeUGC(html string) string {
	return ugcPolicy.Sanitize(html)
}

// StripTags 移除内容中所有 <...> 片段
func StripTags(content string) string {
	return tagPattern.ReplaceAllString(content, "")
}

// MakeExcerpt 派生摘要:剔除标签后截取前 150 个字符,
// 被截断时追加字面量 "...",因此存储的摘要最长 153 个字符
func MakeExcerpt(content string) string {
	plain := StripTags(content)
	runes := []rune(plain)
	if len(runes) <= excerptLimit {
		return plain
	}
	return string(runes[:excerptLimit]) + "..."
}
