package strfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/strfmt"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		enc  strfmt.Encoding
		doc  string
		tmpl string
		want string
	}{
		"json": {
			enc:  strfmt.JSON,
			doc:  `{"name":"alice","n":42,"pi":3.5,"tags":["a","b"],"nested":{"x":1},"none":null}`,
			tmpl: "{name}|{n:#x}|{pi:.2}|{tags}|{nested.x}|{tags.1}|{none}|{nested}",
			want: `alice|0x2a|3.50|["a","b"]|1|b|null|{"x":1}`,
		},
		"json big unsigned": {
			enc:  strfmt.JSON,
			doc:  `{"n":18446744073709551615}`,
			tmpl: "{n:x}",
			want: "ffffffffffffffff",
		},
		"json array root": {
			enc:  strfmt.JSON,
			doc:  `["a","b"]`,
			tmpl: "{0}{1}",
			want: "ab",
		},
		"exact key wins over path": {
			enc:  strfmt.JSON,
			doc:  `{"a.b":"exact","a":{"b":"path"}}`,
			tmpl: "{a.b}",
			want: "exact",
		},
		"yaml": {
			enc:  strfmt.YAML,
			doc:  "name: bob\nport: 8080\nratio: 0.25\nenabled: true\nservers:\n  - host: a\n  - host: b\n",
			tmpl: "{name}:{port:>6}|{servers.1.host}|{enabled}|{ratio:e}",
			want: "bob:  8080|b|true|2.5e-1",
		},
		"yaml non-string keys": {
			enc:  strfmt.YAML,
			doc:  "1: one\ntwo: 2\n",
			tmpl: "{1} {two}",
			want: "one 2",
		},
		"toml": {
			enc:  strfmt.TOML,
			doc:  "title = \"t\"\n\n[server]\nport = 9000\nhosts = [\"x\", \"y\"]\n",
			tmpl: "{title}|{server.port:x}|{server.hosts.0}",
			want: "t|2328|x",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tree, err := strfmt.Decode(tt.enc, []byte(tt.doc))
			require.NoError(t, err)
			got, err := strfmt.Format(tt.tmpl, tree)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTreeMissing(t *testing.T) {
	t.Parallel()
	tree, err := strfmt.Decode(strfmt.JSON, []byte(`{"name":"alice","list":[1,2]}`))
	require.NoError(t, err)

	for _, key := range []string{"nope", "name.first", "list.2", "list.-1", "list.x", "list."} {
		_, ok := tree.Lookup(key)
		assert.False(t, ok, key)
	}

	_, err = strfmt.Format("{nope}", tree)
	require.ErrorIs(t, err, strfmt.ErrKey)
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()
	for _, enc := range []strfmt.Encoding{strfmt.JSON, strfmt.YAML} {
		tree, err := strfmt.Decode(enc, nil)
		require.NoError(t, err, enc)
		assert.Nil(t, tree.Root())
		_, ok := tree.Lookup("x")
		assert.False(t, ok)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	_, err := strfmt.Decode(strfmt.Encoding("xml"), []byte("<a/>"))
	require.ErrorIs(t, err, strfmt.ErrUnsupportedEncoding)

	_, err = strfmt.Decode(strfmt.JSON, []byte(`{"a":`))
	require.Error(t, err)

	_, err = strfmt.Decode(strfmt.TOML, []byte("a = "))
	require.Error(t, err)
}

func collect(t *testing.T, enc strfmt.Encoding, doc string) ([]string, error) {
	t.Helper()
	var out []string
	for tree, err := range strfmt.DecodeAll(enc, strings.NewReader(doc)) {
		if err != nil {
			return out, err
		}
		s, err := strfmt.Format("{n}", tree)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out, nil
}

func TestDecodeAll(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		enc  strfmt.Encoding
		doc  string
		want []string
	}{
		"json stream": {enc: strfmt.JSON, doc: "{\"n\":1} {\"n\":2}\n{\"n\":3}\n", want: []string{"1", "2", "3"}},
		"yaml docs":   {enc: strfmt.YAML, doc: "n: 1\n---\nn: 2\n", want: []string{"1", "2"}},
		"toml single": {enc: strfmt.TOML, doc: "n = 7\n", want: []string{"7"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := collect(t, tt.enc, tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAllStopsAtError(t *testing.T) {
	t.Parallel()
	got, err := collect(t, strfmt.JSON, `{"n":1} {bad`)
	require.Error(t, err)
	assert.Equal(t, []string{"1"}, got)
}

func TestDecodeAllBreak(t *testing.T) {
	t.Parallel()
	count := 0
	for _, err := range strfmt.DecodeAll(strfmt.YAML, strings.NewReader("n: 1\n---\nn: 2\n---\nn: 3\n")) {
		require.NoError(t, err)
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want strfmt.Encoding
		err  bool
	}{
		"json":      {in: "json", want: strfmt.JSON},
		"uppercase": {in: "JSON", want: strfmt.JSON},
		"extension": {in: ".yaml", want: strfmt.YAML},
		"yml":       {in: "yml", want: strfmt.YAML},
		"toml":      {in: "toml", want: strfmt.TOML},
		"unknown":   {in: "xml", err: true},
		"empty":     {in: "", err: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.ParseEncoding(tt.in)
			if tt.err {
				require.ErrorIs(t, err, strfmt.ErrUnsupportedEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodings(t *testing.T) {
	t.Parallel()
	got := strfmt.Encodings()
	assert.Equal(t, []strfmt.Encoding{strfmt.JSON, strfmt.YAML, strfmt.TOML}, got)

	got[0] = "changed"
	assert.Equal(t, strfmt.JSON, strfmt.Encodings()[0])
}

func TestNewTreeNormalizes(t *testing.T) {
	t.Parallel()
	tree := strfmt.NewTree(map[any]any{
		"inner": map[any]any{2: "two"},
		"list":  []any{map[any]any{"k": "v"}},
	})
	got, err := strfmt.Format("{inner.2}|{list.0.k}", tree)
	require.NoError(t, err)
	assert.Equal(t, "two|v", got)
}
