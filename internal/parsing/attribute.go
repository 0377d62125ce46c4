package parsing

import (
	"iter"
	"strings"
	"unicode"
)

// Span is a half-open byte range into some text.
type Span struct {
	Start, End int
}

// Of returns the part of text covered by s.
func (s Span) Of(text string) string {
	return text[s.Start:s.End]
}

// Attribute is one "name[=value]" segment of a cookie string with both
// halves trimmed of surrounding whitespace.
type Attribute struct {
	Name     Span
	Value    Span
	HasValue bool
}

// Attributes iterates over the ";"-separated segments of text. The first
// yielded attribute is always the leading name=value pair, even for an
// empty text.
func Attributes(text string) iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		start := 0
		for {
			end := len(text)
			if i := strings.IndexByte(text[start:], ';'); i >= 0 {
				end = start + i
			}
			if !yield(cutAttribute(text, start, end)) || end == len(text) {
				return
			}
			start = end + 1
		}
	}
}

func cutAttribute(text string, start, end int) Attribute {
	eq := strings.IndexByte(text[start:end], '=')
	if eq < 0 {
		return Attribute{Name: trimSpan(text, start, end)}
	}
	eq += start
	return Attribute{
		Name:     trimSpan(text, start, eq),
		Value:    trimSpan(text, eq+1, end),
		HasValue: true,
	}
}

func trimSpan(text string, start, end int) Span {
	s := text[start:end]
	left := strings.TrimLeftFunc(s, unicode.IsSpace)
	start += len(s) - len(left)
	end = start + len(strings.TrimRightFunc(left, unicode.IsSpace))
	return Span{Start: start, End: end}
}
