package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/strfmt"
	"github.com/bjaus/strfmt/internal/config"
	"github.com/bjaus/strfmt/internal/logging"
)

type rootOptions struct {
	sets          []string
	file          string
	encoding      string
	each          bool
	env           bool
	envPrefix     string
	ignoreMissing bool
	displayWidth  bool
	configPath    string
	verbosity     int
}

// NewRootCmd builds the strfmt command.
func NewRootCmd() *cobra.Command {
	var o rootOptions
	cmd := &cobra.Command{
		Use:   "strfmt [flags] TEMPLATE",
		Short: "Render a template with named placeholders",
		Long: `strfmt renders a template such as "{name:>10} {port:#x}" using the
format-specifier mini-language of Python's str.format.

Values come from, in order of precedence: --set flags, the document given
with --file, the [vars] table of the config file and, with --env, the
process environment.`,
		Example: `  strfmt -s name=alice -s n=255 '{name:^9}|{n:#x}'
  strfmt -f servers.yaml '{host}:{port}'
  strfmt -f events.json --each '{time} {level:<5} {msg}'
  strfmt --env 'home is {HOME}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.SetupLogger(cmd.ErrOrStderr(), o.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&o.sets, "set", "s", nil, "set a value as key=value; the value is read as a YAML scalar (repeatable)")
	flags.StringVarP(&o.file, "file", "f", "", "read values from a JSON, YAML or TOML document (- for stdin)")
	flags.StringVar(&o.encoding, "encoding", "", fmt.Sprintf("document encoding %v (default: from the file extension)", strfmt.Encodings()))
	flags.BoolVar(&o.each, "each", false, "render the template once per document in --file")
	flags.BoolVar(&o.env, "env", false, "fall back to environment variables")
	flags.StringVar(&o.envPrefix, "env-prefix", "", "only read environment variables with this prefix (implies --env)")
	flags.BoolVar(&o.ignoreMissing, "ignore-missing", false, "leave unknown placeholders in the output")
	flags.BoolVar(&o.displayWidth, "display-width", false, "measure width in terminal cells instead of characters")
	flags.StringVar(&o.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	cmd.PersistentFlags().CountVarP(&o.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	return cmd
}

func run(cmd *cobra.Command, o *rootOptions, tmpl string) error {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if o.ignoreMissing {
		opts = append(opts, strfmt.WithIgnoreMissing())
	}
	if o.displayWidth {
		opts = append(opts, strfmt.WithDisplayWidth())
	}

	sets, err := parseSets(o.sets)
	if err != nil {
		return err
	}

	var env strfmt.Lookup
	if o.env || o.envPrefix != "" {
		env = strfmt.EnvPrefix(o.envPrefix)
	}

	lookup := func(doc strfmt.Lookup) strfmt.Lookup {
		return strfmt.Chain(sets, doc, cfg.Lookup(), env)
	}
	out := cmd.OutOrStdout()

	if o.file == "" {
		if o.each {
			return errors.New("--each requires --file")
		}
		logger.Debug().Int("sets", len(o.sets)).Msg("Rendering without document")
		return render(out, tmpl, lookup(nil), opts)
	}

	enc, err := documentEncoding(o.file, o.encoding)
	if err != nil {
		return err
	}
	r, closeFn, err := openDocument(cmd, o.file)
	if err != nil {
		return err
	}
	defer closeFn()

	logger.Debug().Str("file", o.file).Stringer("encoding", enc).Bool("each", o.each).Msg("Reading document")

	if o.each {
		var decodeErr error
		docs := func(yield func(strfmt.Lookup) bool) {
			for tree, err := range strfmt.DecodeAll(enc, r) {
				if err != nil {
					decodeErr = fmt.Errorf("decode %s: %w", o.file, err)
					return
				}
				if !yield(lookup(tree)) {
					return
				}
			}
		}
		if err := strfmt.WriteIter(out, tmpl, docs, opts...); err != nil {
			return err
		}
		return decodeErr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", o.file, err)
	}
	tree, err := strfmt.Decode(enc, data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", o.file, err)
	}
	return render(out, tmpl, lookup(tree), opts)
}

func render(w io.Writer, tmpl string, l strfmt.Lookup, opts []strfmt.Option) error {
	s, err := strfmt.Format(tmpl, l, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// parseSets turns key=value flags into a lookup. Values that parse as a YAML
// number or boolean keep that type so numeric specifiers apply to them.
func parseSets(sets []string) (strfmt.Lookup, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	m := make(strfmt.Map[any], len(sets))
	for _, s := range sets {
		key, raw, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", s)
		}
		m[key] = scalar(raw)
	}
	return m, nil
}

func scalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case int, float64, bool:
		return v
	default:
		return raw
	}
}

func documentEncoding(file, name string) (strfmt.Encoding, error) {
	if name != "" {
		return strfmt.ParseEncoding(name)
	}
	if file == "-" {
		return strfmt.JSON, nil
	}
	enc, err := strfmt.ParseEncoding(filepath.Ext(file))
	if err != nil {
		return "", fmt.Errorf("%w (use --encoding)", err)
	}
	return enc, nil
}

func openDocument(cmd *cobra.Command, file string) (io.Reader, func(), error) {
	if file == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("open document: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
