package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"strings"

	ld "github.com/piprate/json-gold/ld"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/geoknoesis/rdf-go-jsonld/graph"
	"github.com/geoknoesis/rdf-go-jsonld/jsonld"
	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

type convertFlags struct {
	inputFormat string
	subject     string
	prefixes    map[string]string
	format      string
	compact     bool
	nativeTypes bool
	base        string
	output      string
}

func convertCmd(configPath, logLevel *string) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an N-Triples, N-Quads, Turtle or TriG document",
		Long: `Convert reads the named file, or stdin when no file is given, and writes
the result to stdout or --output.

The input format is taken from --input-format, which accepts a format name
or a media type, then from the file extension (.nt, .nq, .ttl, .trig).
Stdin is sniffed and defaults to N-Quads. Prefixes declared by Turtle and
TriG input are used when compacting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			logger := newLogger(cmd.ErrOrStderr(), *logLevel)
			return runConvert(cmd.Context(), cmd, args, flags, cfg, logger)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func (f *convertFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.inputFormat, "input-format", "i", "", "Input format (ntriples, nquads, turtle, trig) or media type")
	fs.StringVarP(&f.subject, "subject", "s", "", "Only convert the statements of this subject (IRI or _:label)")
	fs.StringToStringVarP(&f.prefixes, "prefix", "p", nil, "Namespace prefix, e.g. ex=http://example.org/ (repeatable)")
	fs.StringVarP(&f.format, "format", "f", formatJSONLD, "Output format (jsonld, nquads, ntriples)")
	fs.BoolVar(&f.compact, "compact", false, "Compact the JSON-LD output with the namespace prefixes")
	fs.BoolVar(&f.nativeTypes, "native-types", false, "Use native JSON numbers and booleans")
	fs.StringVar(&f.base, "base", "", "Base IRI of the output document")
	fs.StringVarP(&f.output, "output", "o", "", "Output file (default stdout)")
}

// apply overrides cfg with the flags set on the command line.
func (f *convertFlags) apply(cmd *cobra.Command, cfg *Config) {
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("compact") {
		cfg.Output.Compact = f.compact
	}
	if changed("native-types") {
		cfg.Output.NativeTypes = f.nativeTypes
	}
	if changed("base") {
		cfg.Output.Base = f.base
	}
	maps.Copy(cfg.Prefixes, f.prefixes)
}

func runConvert(ctx context.Context, cmd *cobra.Command, args []string, flags convertFlags, cfg Config, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	in := cmd.InOrStdin()
	name := ""
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in, name = file, args[0]
	}
	format, in, err := inputFormat(flags.inputFormat, name, in)
	if err != nil {
		return err
	}

	ds, prefixes, err := importInput(ctx, in, format, flags.subject, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("converted input", "input", name, "format", format, "graphs", len(ds.Graphs))

	out := cmd.OutOrStdout()
	if flags.output != "" {
		file, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	return writeDataset(ctx, out, ds, cfg, prefixes)
}

// inputFormat picks the input format from the flag, the file extension or,
// for stdin, the content itself. Undetectable stdin is read as N-Quads.
func inputFormat(flag, path string, in io.Reader) (rdf.Format, io.Reader, error) {
	if flag != "" {
		if format, ok := rdf.ParseFormat(flag); ok {
			return format, in, nil
		}
		format, err := rdf.FormatFromContentType(flag)
		if err != nil {
			return "", in, fmt.Errorf("%w: %s", rdf.ErrUnsupportedFormat, flag)
		}
		return format, in, nil
	}
	if path != "" {
		format, err := rdf.FormatFromPath(path)
		return format, in, err
	}
	format, replay, ok := rdf.DetectFormat(in)
	if !ok {
		format = rdf.FormatNQuads
	}
	return format, replay, nil
}

// importInput loads r into the in-memory store and picks the input shape:
// N-Quads and TriG become a dataset, N-Triples and Turtle a model carrying
// the configured prefixes, and a subject narrows either to that subject's
// statements. It also returns the prefixes to compact with: the ones the
// document declares, overridden by the configured ones.
//
// A subject is looked up in the default graph of a dataset only.
func importInput(ctx context.Context, r io.Reader, format rdf.Format, subject string, cfg Config, logger *slog.Logger) (*ld.RDFDataset, map[string]string, error) {
	var node rdf.Term
	if subject != "" {
		var err error
		if node, err = parseSubject(subject); err != nil {
			return nil, nil, err
		}
	}
	im := jsonld.NewImporter(append(cfg.importerOptions(), jsonld.WithLogger(logger))...)
	decodeOpts := rdf.DecodeOptions{DebugStatements: true}

	var (
		input    jsonld.Input
		prefixes map[string]string
	)
	if format.SupportsGraphs() {
		d, err := graph.LoadDataset(ctx, r, format, decodeOpts)
		if err != nil {
			return nil, nil, err
		}
		prefixes = d.Namespaces()
		input = jsonld.MultiGraph{Source: d}
		if node != nil {
			if n := d.NamedGraphCount(); n > 0 {
				logger.Info("subject is looked up in the default graph only", "subject", node.String(), "named_graphs", n)
			}
			input = jsonld.SingleSubject{Subject: node, Graph: d.Default()}
		}
	} else {
		m, err := graph.LoadModel(ctx, r, format, decodeOpts)
		if err != nil {
			return nil, nil, err
		}
		for prefix, iri := range cfg.Prefixes {
			m.SetPrefix(prefix, iri)
		}
		prefixes = m.Namespaces()
		input = jsonld.WholeModel{Model: m}
		if node != nil {
			input = jsonld.SingleSubject{Subject: node, Graph: m}
		}
	}
	maps.Copy(prefixes, cfg.Prefixes)
	ds, err := im.Import(input)
	if err != nil {
		return nil, nil, err
	}
	return ds, prefixes, nil
}

// parseSubject reads a subject given as _:label, <iri> or a bare IRI.
func parseSubject(value string) (rdf.Term, error) {
	if label, ok := strings.CutPrefix(value, "_:"); ok {
		if label == "" {
			return nil, fmt.Errorf("subject %q: blank node label missing", value)
		}
		return rdf.BlankNode{ID: label}, nil
	}
	iri := strings.TrimSuffix(strings.TrimPrefix(value, "<"), ">")
	if err := rdf.ValidateIRI(iri); err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}
	return rdf.IRI{Value: iri}, nil
}

// writeDataset serializes ds in the configured output format. prefixes
// extend the dataset's namespaces when compacting.
func writeDataset(ctx context.Context, w io.Writer, ds *ld.RDFDataset, cfg Config, prefixes map[string]string) error {
	switch strings.ToLower(cfg.Output.Format) {
	case formatNQuads:
		return jsonld.WriteNQuads(w, ds)
	case formatNTriples:
		enc, err := rdf.NewQuadEncoder(w, rdf.FormatNTriples)
		if err != nil {
			return err
		}
		if err := jsonld.EncodeDataset(enc, ds); err != nil {
			return fmt.Errorf("write ntriples: %w", err)
		}
		return enc.Close()
	}
	opts := jsonld.SerializeOptions{
		Base:           cfg.Output.Base,
		Compact:        cfg.Output.Compact,
		UseNativeTypes: cfg.Output.NativeTypes,
		UseRdfType:     cfg.Output.RdfType,
	}
	if opts.Compact {
		nsContext := jsonld.NamespaceContext(ds)
		for prefix, iri := range prefixes {
			if _, ok := nsContext[prefix]; !ok {
				nsContext[prefix] = iri
			}
		}
		opts.Context = nsContext
	}
	doc, err := jsonld.ToJSONLD(ctx, ds, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
