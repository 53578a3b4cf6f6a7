// Package strfmt formats strings from templates with named placeholders,
// using the format-specifier mini-language of Python's str.format.
//
// A template mixes literal text with placeholders of the form {key} or
// {key:spec}. The central entry point is [Format], which resolves every key
// through a [Lookup]:
//
//	s, err := strfmt.Format("{name:>8}|{n:#x}", strfmt.Map[any]{
//		"name": "alice",
//		"n":    255,
//	})
//	// "   alice|0xff"
//
// Literal braces are written doubled: "{{" and "}}".
//
// # Format Specifiers
//
// The text after the first colon is parsed by [ParseSpec]:
//
//	[[fill]align][sign][#][0][width][,][.precision][type]
//
//   - align is one of < (left), ^ (center), > (right) or = (after sign)
//   - sign is +, - or a space; only + changes the output
//   - # adds a 0b, 0o or 0x prefix to binary, octal and hex integers
//   - a leading 0 is shorthand for fill '0' with '=' alignment
//   - precision truncates strings and sets the digits after the point for floats
//
// Strings accept the s type, integers b, o, x and X, and floats f, e and E.
// Without an explicit alignment, strings are left-aligned and numbers
// right-aligned.
//
// Thousands separators (,) and '=' alignment are recognized but not
// implemented; they are reported as [ErrInvalid].
//
// # Values
//
// [Placeholder.Value] renders strings, booleans, every integer and float
// kind, [encoding/json.Number], [fmt.Stringer] and error values. Implement
// [Formatter] to render a custom type.
//
// Lookups are provided for maps ([Map]), the environment ([Env]), decoded
// JSON, YAML and TOML documents ([Tree], [Decode]) and any function
// ([LookupFunc]). [Chain] combines them.
//
// # Custom Handlers
//
// [FormatWith] hands every placeholder to a [Handler] instead of a lookup.
// The handler reads the key and spec and writes the value itself:
//
//	out, err := strfmt.FormatWith(tmpl, func(p *strfmt.Placeholder) error {
//		if v, ok := vars[p.Key()]; ok {
//			return p.Float64(v)
//		}
//		return p.Skip()
//	})
//
// # Options
//
//   - [WithIgnoreMissing] echoes unknown placeholders instead of failing
//   - [WithDisplayWidth] measures width in terminal cells
//
// # Errors
//
// Every error wraps one of three sentinels:
//
//   - [ErrInvalid]: malformed template or specifier, or an unimplemented feature
//   - [ErrKey]: the lookup has no value for a key
//   - [ErrType]: the specifier does not apply to the value's kind
package strfmt
