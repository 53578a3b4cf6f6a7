package strfmt

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Alignment controls where fill goes when a value is shorter than its width.
type Alignment int

const (
	AlignUnspecified Alignment = iota // left for strings, right for numbers
	AlignLeft                         // <
	AlignCenter                       // ^
	AlignRight                        // >
	AlignEqual                        // =
)

// String returns the alignment token, or "" when unspecified.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignCenter:
		return "^"
	case AlignRight:
		return ">"
	case AlignEqual:
		return "="
	default:
		return ""
	}
}

// Sign is the sign option of a format specifier.
type Sign int

const (
	SignUnspecified Sign = iota
	SignPlus             // +
	SignMinus            // -
	SignSpace            // ' '
)

// Spec is a parsed format specifier: the part of a placeholder after the
// first colon. Width and Precision are -1 when absent and Type is 0 when
// absent.
type Spec struct {
	Fill      rune
	Align     Alignment
	Sign      Sign
	Alternate bool
	Width     int
	Thousands bool
	Precision int
	Type      rune
}

func defaultSpec() Spec {
	return Spec{Fill: ' ', Width: -1, Precision: -1}
}

func alignmentOf(c rune) (Alignment, bool) {
	switch c {
	case '<':
		return AlignLeft, true
	case '^':
		return AlignCenter, true
	case '>':
		return AlignRight, true
	case '=':
		return AlignEqual, true
	default:
		return AlignUnspecified, false
	}
}

func signOf(c byte) (Sign, bool) {
	switch c {
	case '+':
		return SignPlus, true
	case '-':
		return SignMinus, true
	case ' ':
		return SignSpace, true
	default:
		return SignUnspecified, false
	}
}

func isTypeCode(c byte) bool {
	return strings.IndexByte("boxXdeEfFgG%s?n", c) >= 0
}

// ParseSpec parses a format specifier such as "*^10.3s".
//
// The grammar is fill/align, sign, '#', legacy '0', width, ',', '.precision'
// and type, each optional and consumed in that order. Only the fill may be a
// multi-byte rune; everything after it is ASCII.
func ParseSpec(raw string) (Spec, error) {
	spec := defaultSpec()
	if raw == "" {
		return spec, nil
	}

	end := len(raw)
	pos := 0
	fillSpecified := false

	first, size := utf8.DecodeRuneInString(raw)
	if end > size {
		if a, ok := alignmentOf(rune(raw[size])); ok {
			spec.Fill = first
			spec.Align = a
			fillSpecified = true
			pos = size + 1
		}
	}
	if !fillSpecified {
		if a, ok := alignmentOf(first); ok {
			spec.Align = a
			pos = size
		}
	}

	if pos < end {
		if s, ok := signOf(raw[pos]); ok {
			spec.Sign = s
			pos++
		}
	}

	if pos < end && raw[pos] == '#' {
		spec.Alternate = true
		pos++
	}

	// Legacy zero padding: "08" means fill '0', align '='.
	if !fillSpecified && pos < end && raw[pos] == '0' {
		spec.Fill = '0'
		if spec.Align == AlignUnspecified {
			spec.Align = AlignEqual
		}
		pos++
	}

	n, consumed, ok := parseDigits(raw[pos:])
	if consumed > 0 {
		if !ok {
			return Spec{}, invalidf("overflow error when parsing width")
		}
		spec.Width = n
		pos += consumed
	}

	if pos < end && raw[pos] == ',' {
		spec.Thousands = true
		pos++
	}

	if pos < end && raw[pos] == '.' {
		pos++
		n, consumed, ok := parseDigits(raw[pos:])
		if consumed == 0 {
			return Spec{}, invalidf("Format specifier missing precision")
		}
		if !ok {
			return Spec{}, invalidf("overflow error when parsing precision")
		}
		spec.Precision = n
		pos += consumed
	}

	switch end - pos {
	case 0:
	case 1:
		c := raw[pos]
		if !isTypeCode(c) {
			return Spec{}, invalidf("Invalid type specifier: %q", rune(c))
		}
		spec.Type = rune(c)
	default:
		return Spec{}, invalidf("Invalid format specifier")
	}

	if spec.Thousands {
		switch spec.Type {
		case 0, 'd', 'e', 'f', 'g', 'E', 'G', '%', 'F':
		default:
			return Spec{}, invalidf("Invalid comma type: %c", spec.Type)
		}
	}
	return spec, nil
}

// maxDigits bounds width and precision. Padding and float digits are
// allocated up front, so larger values are rejected as overflow.
const maxDigits = 1 << 20

// parseDigits reads a run of ASCII digits from the start of s. It returns the
// value, the number of bytes consumed and whether the value is at most
// maxDigits.
func parseDigits(s string) (int, int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n > maxDigits {
		return 0, i, false
	}
	return n, i, true
}

// splitPlaceholder splits the text between braces into the identifier and
// the raw format specifier.
func splitPlaceholder(raw string) (string, string, error) {
	key, spec, _ := strings.Cut(raw, ":")
	if key == "" {
		return "", "", invalidf("must specify identifier")
	}
	return key, spec, nil
}
