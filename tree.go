package strfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// ErrUnsupportedEncoding is returned for an unknown document encoding.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encoding names a document format a [Tree] can be decoded from.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
	TOML Encoding = "toml"
)

var encodings = []Encoding{JSON, YAML, TOML}

// String returns the encoding name.
func (e Encoding) String() string { return string(e) }

// Encodings returns all supported encodings.
func Encodings() []Encoding {
	out := make([]Encoding, len(encodings))
	copy(out, encodings)
	return out
}

// ParseEncoding parses an encoding name. "yml" is accepted for YAML.
func ParseEncoding(s string) (Encoding, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if s == "yml" {
		return YAML, nil
	}
	for _, e := range encodings {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}

// Decode parses a single document.
func Decode(enc Encoding, data []byte) (*Tree, error) {
	for t, err := range DecodeAll(enc, bytes.NewReader(data)) {
		return t, err
	}
	return NewTree(nil), nil
}

// DecodeAll parses every document in r: a stream of JSON values, the
// documents of a multi-document YAML file, or one TOML document. Iteration
// stops after the first error.
func DecodeAll(enc Encoding, r io.Reader) iter.Seq2[*Tree, error] {
	switch enc {
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	case TOML:
		return decodeTOML(r)
	default:
		return func(yield func(*Tree, error) bool) {
			yield(nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc))
		}
	}
}

// Tree is a [Lookup] over a decoded document. A key is first matched against
// the root object (or, for an array root, parsed as an index); failing that
// it is read as a dot-separated path such as "server.ports.0".
type Tree struct {
	root any
}

// NewTree wraps a decoded document made of maps, slices and scalars.
func NewTree(root any) *Tree {
	return &Tree{root: normalize(root)}
}

// Root returns the wrapped document.
func (t *Tree) Root() any { return t.root }

// Lookup resolves key against the document.
func (t *Tree) Lookup(key string) (any, bool) {
	if v, ok := child(t.root, key); ok {
		return leaf(v), true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}
	node := t.root
	for part := range strings.SplitSeq(key, ".") {
		next, ok := child(node, part)
		if !ok {
			return nil, false
		}
		node = next
	}
	return leaf(node), true
}

func child(node any, key string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[key]
		return v, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n) {
			return nil, false
		}
		return n[i], true
	default:
		return nil, false
	}
}

// leaf turns a node into something [Placeholder.Value] can render. Objects
// and arrays render as compact JSON.
func leaf(v any) any {
	switch v := v.(type) {
	case nil:
		return "null"
	case json.Number:
		return number(v)
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return v
	}
}

// normalize converts map[any]any (produced by YAML for non-string keys) into
// map[string]any throughout the document.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	default:
		return v
	}
}
