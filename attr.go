package distcheck

import (
	"regexp"
	"strings"
	"sync"
)

// Tag and attribute extraction works on raw markup with regular expressions
// rather than a parser. Generated output is trusted to be well formed;
// unusually formatted tags (unquoted values, attributes split by newlines
// inside the value) may be missed.

var (
	attrPatterns sync.Map // attribute name → *regexp.Regexp
	tagPatterns  sync.Map // tag name → *regexp.Regexp

	titleRe = regexp.MustCompile(`(?i)<title>([^<]+)</title>`)
)

// Attr returns the value of the first attribute called name in tag. The
// attribute name is matched case-insensitively and the value must be
// delimited by matching quotes. The value is returned trimmed; ok is false
// when the attribute is absent or its value is blank.
func Attr(tag, name string) (value string, ok bool) {
	m := attrPattern(name).FindStringSubmatch(tag)
	if m == nil {
		return "", false
	}
	value = m[1]
	if value == "" {
		value = m[2]
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// Tags returns the raw text of every opening <name ...> tag in html,
// in document order. The tag name is matched case-insensitively.
func Tags(html, name string) []string {
	return tagPattern(name).FindAllString(html, -1)
}

// TitleText returns the trimmed text of the first <title> element, or an
// empty string when there is none.
func TitleText(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func attrPattern(name string) *regexp.Regexp {
	key := strings.ToLower(name)
	if re, ok := attrPatterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(key) + `=(?:"([^"]*)"|'([^']*)')`)
	attrPatterns.Store(key, re)
	return re
}

func tagPattern(name string) *regexp.Regexp {
	key := strings.ToLower(name)
	if re, ok := tagPatterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)<` + regexp.QuoteMeta(key) + `\b[^>]*>`)
	tagPatterns.Store(key, re)
	return re
}
