package strfmt

import (
	"io"
	"iter"

	toml "github.com/pelletier/go-toml/v2"
)

func decodeTOML(r io.Reader) iter.Seq2[*Tree, error] {
	return func(yield func(*Tree, error) bool) {
		var doc map[string]any
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			yield(nil, err)
			return
		}
		yield(NewTree(doc), nil)
	}
}
