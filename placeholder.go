package strfmt

import "strings"

// Handler renders one placeholder. It is called by [FormatWith] for every
// placeholder in the template, in order.
type Handler func(p *Placeholder) error

// Placeholder is a single {key:spec} occurrence being rendered. Its write
// methods append to the output of the call that created it, so it must not be
// kept after the handler returns.
//
// Str, Int, Uint, Float32 and Float64 write nothing when they return an
// error, so the handler may still call [Placeholder.Skip]. Earlier successful
// writes in the same handler are not rolled back.
type Placeholder struct {
	key     string
	pattern string
	spec    Spec
	buf     *strings.Builder
	measure measure
}

// Key returns the identifier before the colon.
func (p *Placeholder) Key() string { return p.key }

// Pattern returns the raw text between the braces.
func (p *Placeholder) Pattern() string { return p.pattern }

// Spec returns the parsed format specifier.
func (p *Placeholder) Spec() Spec { return p.spec }

// Fill returns the padding character, ' ' by default.
func (p *Placeholder) Fill() rune { return p.spec.Fill }

// Align returns the requested alignment.
func (p *Placeholder) Align() Alignment { return p.spec.Align }

// Sign returns the sign option.
func (p *Placeholder) Sign() Sign { return p.spec.Sign }

// Alternate reports whether '#' was given.
func (p *Placeholder) Alternate() bool { return p.spec.Alternate }

// Thousands reports whether ',' was given.
func (p *Placeholder) Thousands() bool { return p.spec.Thousands }

// Width returns the minimum field width, if one was given.
func (p *Placeholder) Width() (int, bool) {
	return p.spec.Width, p.spec.Width >= 0
}

// Precision returns the precision, if one was given.
func (p *Placeholder) Precision() (int, bool) {
	return p.spec.Precision, p.spec.Precision >= 0
}

// Type returns the type code, if one was given.
func (p *Placeholder) Type() (rune, bool) {
	return p.spec.Type, p.spec.Type != 0
}

// Skip writes the placeholder back to the output unchanged, braces included.
func (p *Placeholder) Skip() error {
	p.buf.WriteByte('{')
	p.buf.WriteString(p.pattern)
	p.buf.WriteByte('}')
	return nil
}
