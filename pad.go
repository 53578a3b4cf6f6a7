package strfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// measure decides how long a string is for width and precision purposes.
type measure interface {
	width(s string) int
	// truncate returns the longest prefix of s no longer than n.
	truncate(s string, n int) string
}

// runeMeasure counts code points.
type runeMeasure struct{}

func (runeMeasure) width(s string) int { return utf8.RuneCountInString(s) }

func (runeMeasure) truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// cellMeasure counts terminal cells.
type cellMeasure struct{}

func (cellMeasure) width(s string) int { return runewidth.StringWidth(s) }

func (cellMeasure) truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(s, n, "")
}

// pad writes s to b, truncated to spec.Precision and padded with spec.Fill up
// to spec.Width. Unspecified alignment pads on the right of the text.
func pad(b *strings.Builder, m measure, s string, spec Spec) error {
	return padAfter(b, m, "", s, spec)
}

// padAfter is pad with head written first. head is not truncated and does not
// count towards the width. Nothing is written when an error is returned.
func padAfter(b *strings.Builder, m measure, head, s string, spec Spec) error {
	n := m.width(s)
	if spec.Precision >= 0 && spec.Precision < n {
		s = m.truncate(s, spec.Precision)
		n = m.width(s)
	}
	if spec.Width > n && spec.Align == AlignEqual {
		return invalidf("'=' alignment not yet supported")
	}
	b.WriteString(head)
	if spec.Width <= n {
		b.WriteString(s)
		return nil
	}
	fill := string(spec.Fill)
	gap := spec.Width - n
	switch spec.Align {
	case AlignUnspecified, AlignLeft:
		b.WriteString(s)
		fillTo(b, m, fill, gap)
	case AlignRight:
		fillTo(b, m, fill, gap)
		b.WriteString(s)
	case AlignCenter:
		left := gap / 2
		fillTo(b, m, fill, left)
		b.WriteString(s)
		fillTo(b, m, fill, gap-left)
	default:
		panic(fmt.Sprintf("strfmt: unknown alignment %d", spec.Align))
	}
	return nil
}

// fillTo writes as many copies of fill as fit in n units and tops up with
// spaces when a wide fill leaves a remainder.
func fillTo(b *strings.Builder, m measure, fill string, n int) {
	w := max(m.width(fill), 1)
	b.WriteString(strings.Repeat(fill, n/w))
	b.WriteString(strings.Repeat(" ", n%w))
}
