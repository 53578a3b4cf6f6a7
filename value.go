package strfmt

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Lookup resolves placeholder identifiers to values.
type Lookup interface {
	Lookup(key string) (any, bool)
}

// LookupFunc adapts a function to [Lookup].
type LookupFunc func(key string) (any, bool)

// Lookup calls f.
func (f LookupFunc) Lookup(key string) (any, bool) { return f(key) }

// Map is a [Lookup] over a plain map.
//
//	strfmt.Format("{name:>8}", strfmt.Map[string]{"name": "alice"})
type Map[V any] map[string]V

// Lookup returns m[key].
func (m Map[V]) Lookup(key string) (any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return v, true
}

// Chain returns a [Lookup] that asks each of ls in order and returns the
// first hit.
func Chain(ls ...Lookup) Lookup {
	return LookupFunc(func(key string) (any, bool) {
		for _, l := range ls {
			if l == nil {
				continue
			}
			if v, ok := l.Lookup(key); ok {
				return v, true
			}
		}
		return nil, false
	})
}

// Formatter is implemented by values that render themselves. It is checked
// before any built-in kind.
type Formatter interface {
	FormatPlaceholder(p *Placeholder) error
}

// Value renders v according to its kind: text, signed or unsigned integer, or
// float. Booleans, byte slices, errors and [fmt.Stringer] values render as
// text; a [json.Number] renders as an integer when it has no fraction.
func (p *Placeholder) Value(v any) error {
	switch v := v.(type) {
	case Formatter:
		return v.FormatPlaceholder(p)
	case string:
		return p.Str(v)
	case []byte:
		return p.Str(string(v))
	case bool:
		return p.Str(strconv.FormatBool(v))
	case int:
		return p.Int(int64(v))
	case int8:
		return p.Int(int64(v))
	case int16:
		return p.Int(int64(v))
	case int32:
		return p.Int(int64(v))
	case int64:
		return p.Int(v)
	case uint:
		return p.Uint(uint64(v))
	case uint8:
		return p.Uint(uint64(v))
	case uint16:
		return p.Uint(uint64(v))
	case uint32:
		return p.Uint(uint64(v))
	case uint64:
		return p.Uint(v)
	case uintptr:
		return p.Uint(uint64(v))
	case float32:
		return p.Float32(v)
	case float64:
		return p.Float64(v)
	case json.Number:
		return p.Value(number(v))
	case fmt.Stringer:
		return p.Str(v.String())
	case error:
		return p.Str(v.Error())
	case nil:
		return p.Str("null")
	default:
		return typeErrorf("unsupported value type %T", v)
	}
}

// number converts a JSON number to int64, uint64 or float64, preferring the
// integer kinds.
func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
