package strfmt

import (
	"math"
	"strconv"
	"strings"
)

// Str renders s. Only the 's' type is accepted, and sign, '#' and ','
// are rejected.
func (p *Placeholder) Str(s string) error {
	spec := p.spec
	switch {
	case spec.Type != 0 && spec.Type != 's':
		return typeErrorf("Unknown format code %q for object of type 'str'", spec.Type)
	case spec.Alternate:
		return typeErrorf("Alternate form (#) not allowed in string format specifier")
	case spec.Thousands:
		return typeErrorf("Cannot specify ',' with 's'")
	case spec.Sign != SignUnspecified:
		return typeErrorf("Sign not allowed in string format specifier")
	}
	return pad(p.buf, p.measure, s, spec)
}

// Int renders a signed integer of any width.
func (p *Placeholder) Int(v int64) error {
	base, err := p.checkInt()
	if err != nil {
		return err
	}
	return p.finishInt(v >= 0, strconv.FormatInt(v, base))
}

// Uint renders an unsigned integer of any width.
func (p *Placeholder) Uint(v uint64) error {
	base, err := p.checkInt()
	if err != nil {
		return err
	}
	return p.finishInt(true, strconv.FormatUint(v, base))
}

func (p *Placeholder) checkInt() (int, error) {
	spec := p.spec
	var base int
	switch spec.Type {
	case 0:
		base = 10
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x', 'X':
		base = 16
	default:
		return 0, typeErrorf("Unknown format code %q for integer", spec.Type)
	}
	switch {
	case spec.Alternate && spec.Type == 0:
		return 0, typeErrorf("alternate ('#') cannot be used with type ' '")
	case spec.Precision >= 0:
		return 0, typeErrorf("precision not allowed for integers")
	case spec.Thousands:
		return 0, invalidf("thousands specifier not yet supported")
	case spec.Fill == '0' && spec.Align == AlignRight:
		return 0, invalidf("sign aware 0 padding not yet supported")
	}
	return base, nil
}

// radixPrefix returns 0b, 0o or 0x for the alternate form.
func (p *Placeholder) radixPrefix() string {
	if !p.spec.Alternate {
		return ""
	}
	switch p.spec.Type {
	case 'b':
		return "0b"
	case 'o':
		return "0o"
	case 'x', 'X':
		return "0x"
	}
	return ""
}

// finishInt pads digits. The '+' and radix prefix go in front of the
// padding and do not count towards the width.
func (p *Placeholder) finishInt(nonNegative bool, digits string) error {
	if p.spec.Type == 'X' {
		digits = strings.ToUpper(digits)
	}
	head := p.radixPrefix()
	if nonNegative && p.spec.Sign == SignPlus {
		head = "+" + head
	}
	return padAfter(p.buf, p.measure, head, digits, numericSpec(p.spec))
}

// Float32 renders a 32-bit float using the shortest representation that
// round-trips as a float32.
func (p *Placeholder) Float32(v float32) error {
	return p.float(float64(v), 32)
}

// Float64 renders a 64-bit float.
func (p *Placeholder) Float64(v float64) error {
	return p.float(v, 64)
}

func (p *Placeholder) float(v float64, bitSize int) error {
	spec := p.spec
	typ := spec.Type
	if typ == 0 {
		typ = 'f'
	}
	switch typ {
	case 'f', 'e', 'E':
	default:
		return typeErrorf("Unknown format code %q for float", typ)
	}
	switch {
	case spec.Alternate:
		return typeErrorf("Alternate form (#) not allowed for floats")
	case spec.Thousands:
		return invalidf("thousands specifier not yet supported")
	case spec.Fill == '0' && spec.Align == AlignRight:
		return invalidf("sign aware 0 padding not yet supported")
	}

	// -0.0 already carries its sign and gets no '+'.
	head := ""
	if v >= 0 && !math.Signbit(v) && spec.Sign == SignPlus {
		head = "+"
	}
	s := formatFloat(v, typ, spec.Precision, bitSize)

	// Precision is a digit count here, not a truncation length.
	spec = numericSpec(spec)
	spec.Precision = -1
	return padAfter(p.buf, p.measure, head, s, spec)
}

// formatFloat renders v in fixed ('f') or scientific ('e', 'E') notation.
// A negative prec selects the shortest round-trip digits. Exponents carry no
// '+' and no leading zeros: 4.24e1, 1e-7.
func formatFloat(v float64, typ rune, prec, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if typ == 'f' {
		return strconv.FormatFloat(v, 'f', prec, bitSize)
	}
	s := strconv.FormatFloat(v, 'e', prec, bitSize)
	mant, exp, _ := strings.Cut(s, "e")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	sep := "e"
	if typ == 'E' {
		sep = "E"
	}
	return mant + sep + exp
}

// numericSpec resolves unspecified alignment to right, the default for numbers.
func numericSpec(spec Spec) Spec {
	if spec.Align == AlignUnspecified {
		spec.Align = AlignRight
	}
	return spec
}
