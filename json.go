package strfmt

import (
	"encoding/json"
	"errors"
	"io"
	"iter"
)

func decodeJSON(r io.Reader) iter.Seq2[*Tree, error] {
	return func(yield func(*Tree, error) bool) {
		dec := json.NewDecoder(r)
		dec.UseNumber()
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
