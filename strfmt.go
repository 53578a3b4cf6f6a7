package strfmt

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Error kinds. Every error returned by the package wraps exactly one of them.
var (
	// ErrInvalid reports a malformed template or format specifier, or a
	// recognized feature that is not implemented.
	ErrInvalid = errors.New("invalid format")
	// ErrKey reports a placeholder identifier the lookup does not know.
	ErrKey = errors.New("key error")
	// ErrType reports a specifier option that does not apply to the value's kind.
	ErrType = errors.New("type error")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func typeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

func keyError(key string) error {
	return fmt.Errorf("%w: Invalid key: %s", ErrKey, key)
}

// Option configures a single formatting call.
type Option func(*options)

type options struct {
	ignoreMissing bool
	measure       measure
}

func newOptions(opts []Option) options {
	o := options{measure: runeMeasure{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIgnoreMissing echoes placeholders whose identifier is unknown back into
// the output verbatim instead of failing with [ErrKey]. Invalid and type
// errors still abort.
func WithIgnoreMissing() Option {
	return func(o *options) { o.ignoreMissing = true }
}

// WithDisplayWidth measures width and precision in terminal cells instead of
// code points, so wide East Asian characters count as two.
func WithDisplayWidth() Option {
	return func(o *options) { o.measure = cellMeasure{} }
}

// Format renders tmpl, resolving each placeholder through l.
func Format(tmpl string, l Lookup, opts ...Option) (string, error) {
	o := newOptions(opts)
	return scan(tmpl, o, func(p *Placeholder) error {
		v, ok := l.Lookup(p.Key())
		if !ok {
			if o.ignoreMissing {
				return p.Skip()
			}
			return keyError(p.Key())
		}
		return p.Value(v)
	})
}

// FormatWith renders tmpl and calls h once for every placeholder. The handler
// writes the rendered value through the placeholder's methods.
func FormatWith(tmpl string, h Handler, opts ...Option) (string, error) {
	return scan(tmpl, newOptions(opts), h)
}

// Write formats tmpl and writes the result to w.
func Write(w io.Writer, tmpl string, l Lookup, opts ...Option) error {
	s, err := Format(tmpl, l, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// WriteIter renders tmpl once per lookup in seq and writes each result on its
// own line. It stops at the first error.
func WriteIter(w io.Writer, tmpl string, seq iter.Seq[Lookup], opts ...Option) error {
	for l := range seq {
		s, err := Format(tmpl, l, opts...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
