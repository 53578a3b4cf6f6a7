package strfmt

import (
	"errors"
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

func decodeYAML(r io.Reader) iter.Seq2[*Tree, error] {
	return func(yield func(*Tree, error) bool) {
		dec := yaml.NewDecoder(r)
		for {
			var doc any
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(NewTree(doc), nil) {
				return
			}
		}
	}
}
