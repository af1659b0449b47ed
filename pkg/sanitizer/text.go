package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	whitespaceRegex       = regexp.MustCompile(`\s+`)
	inlineWhitespaceRegex = regexp.MustCompile(`[^\S\n]+`)
	blankLinesRegex       = regexp.MustCompile(`\n{3,}`)

	strictPolicy = sync.OnceValue(bluemonday.StrictPolicy)
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces every run of whitespace, newlines included, with one space.
func CollapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// StripHTML removes every tag and returns plain text with entities decoded.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return html.UnescapeString(strictPolicy().Sanitize(s))
}

// RemoveControlChars drops control characters except newline and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			return -1
		}
		return r
	}, s)
}

// NormalizeNewlines converts CRLF and CR line endings to LF.
func NormalizeNewlines(s string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}

// TidyLines collapses spaces inside each line, trims every line and keeps at
// most one blank line between paragraphs.
func TidyLines(s string) string {
	s = inlineWhitespaceRegex.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(blankLinesRegex.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max < 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// SingleLine cleans a one-line form value such as a name or a title.
var SingleLine = Compose(NormalizeNewlines, StripHTML, RemoveControlChars, CollapseWhitespace, Trim)

// MultiLine cleans a free-text form value such as remarks, keeping paragraph breaks.
var MultiLine = Compose(NormalizeNewlines, StripHTML, RemoveControlChars, TidyLines)

// Slice applies transform to every element and drops the ones left empty.
func Slice(values []string, transform func(string) string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = transform(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
