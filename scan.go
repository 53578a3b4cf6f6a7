package strfmt

import "strings"

// scan walks tmpl once, copying literal text to the output, collapsing {{
// and }} escapes and calling h for every placeholder.
func scan(tmpl string, o options, h Handler) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl) * 2)

	var (
		reading bool // inside a placeholder
		closing bool // saw a lone '}' in literal text
		open    int  // byte offset of the placeholder's '{'
	)
	for i, c := range tmpl {
		switch {
		case closing && c != '}':
			return "", invalidf("Single '}' encountered in format string")
		case c == '{':
			switch {
			case reading && open == i-1:
				b.WriteByte('{')
				reading = false
			case !reading:
				reading = true
				open = i
			default:
				return "", invalidf("extra { found")
			}
		case c == '}':
			switch {
			case reading:
				if err := placeholder(&b, o, tmpl[open+1:i], h); err != nil {
					return "", err
				}
				reading = false
			case closing:
				b.WriteByte('}')
				closing = false
			default:
				closing = true
			}
		case !reading:
			b.WriteRune(c)
		}
	}
	if closing {
		return "", invalidf("Single '}' encountered in format string")
	}
	if reading {
		return "", invalidf("Expected '}' before end of string")
	}

	out := b.String()
	if b.Cap() > len(out) {
		out = strings.Clone(out)
	}
	return out, nil
}

func placeholder(b *strings.Builder, o options, raw string, h Handler) error {
	key, rawSpec, err := splitPlaceholder(raw)
	if err != nil {
		return err
	}
	spec, err := ParseSpec(rawSpec)
	if err != nil {
		return err
	}
	return h(&Placeholder{
		key:     key,
		pattern: raw,
		spec:    spec,
		buf:     b,
		measure: o.measure,
	})
}
