package utils

import (
	"strings"
	"testing"
)

func TestMakeExcerpt(t *testing.T) {
	// 无标签且未超长时原样返回
	if got := MakeExcerpt("Hello world"); got != "Hello world" {
		t.Errorf("Expected 'Hello world', got %q", got)
	}

	// 标签剔除
	if got := MakeExcerpt("<p>Hello <b>world</b></p>"); got != "Hello world" {
		t.Errorf("Expected 'Hello world', got %q", got)
	}

	// 恰好 150 个字符不截断
	exact := strings.Repeat("a", 150)
	if got := MakeExcerpt(exact); got != exact {
		t.Errorf("Expected unmodified 150-char text, got %d chars", len(got))
	}

	// 超长截断到 150 并追加省略号
	long := strings.Repeat("a", 200)
	got := MakeExcerpt(long)
	expected := strings.Repeat("a", 150) + "..."
	if got != expected {
		t.Errorf("Expected 150 chars + ellipsis, got %q", got)
	}
	if len(got) != 153 {
		t.Errorf("Expected excerpt length 153, got %d", len(got))
	}

	// 带标签的超长内容:先剔除标签再截断
	tagged := "<p>" + strings.Repeat("b", 200) + "</p>"
	got = MakeExcerpt(tagged)
	expected = strings.Repeat("b", 150) + "..."
	if got != expected {
		t.Errorf("Expected stripped text truncated to 150 + ellipsis, got %q", got)
	}
}

func TestStripTagsNaive(t *testing.T) {
	// 朴素剔除:正文里的尖括号对也会被当成标签
	if got := StripTags("5<6 and 7>2"); got != "52" {
		t.Errorf("Expected '52', got %q", got)
	}

	// 未闭合的 < 没有配对的 > 时保持原样
	if got := StripTags("a < b"); got != "a < b" {
		t.Errorf("Expected 'a < b', got %q", got)
	}

	// 不解码实体
	if got := StripTags("&lt;p&gt;text"); got != "&lt;p&gt;text" {
		t.Errorf("Expected entities untouched, got %q", got)
	}
}

func TestSanitizeUGC(t *testing.T) {
	got := SanitizeUGC("<p>Hi<script>alert(1)</script></p>")
	if strings.Contains(got, "script") {
		t.Errorf("Expected script tag removed, got %q", got)
	}
	if !strings.Contains(got, "<p>") || !strings.Contains(got, "Hi") {
		t.Errorf("Expected benign markup kept, got %q", got)
	}
}
