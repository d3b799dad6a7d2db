package rdf

import (
	"context"
	"io"
	"maps"
	"slices"
)

// QuadDecoder streams RDF quads from an input.
type QuadDecoder interface {
	// Next returns the next quad, or io.EOF when the input is exhausted.
	Next() (Quad, error)
	Err() error
	Close() error
}

// QuadEncoder writes RDF quads to an output.
type QuadEncoder interface {
	Write(Quad) error
	Flush() error
	Close() error
}

// QuadHandler processes quads in push mode.
type QuadHandler interface {
	Handle(Quad) error
}

// PrefixHandler is implemented by handlers that record the namespace
// prefixes a document declares.
type PrefixHandler interface {
	HandlePrefix(prefix, iri string)
}

// PrefixDecoder is a QuadDecoder for a format that declares namespace
// prefixes. Prefixes returns the declarations read so far; a redeclared
// prefix keeps its last IRI.
type PrefixDecoder interface {
	QuadDecoder
	Prefixes() map[string]string
}

// QuadHandlerFunc adapts a function to a QuadHandler.
type QuadHandlerFunc func(Quad) error

// Handle calls the underlying function.
func (h QuadHandlerFunc) Handle(q Quad) error { return h(q) }

// NewQuadDecoder returns a pull decoder for the given format.
func NewQuadDecoder(r io.Reader, format Format, opts DecodeOptions) (QuadDecoder, error) {
	switch format {
	case FormatNTriples, FormatNQuads:
		return newNTDecoder(r, format, normalizeDecodeOptions(opts)), nil
	case FormatTurtle, FormatTriG:
		return newTurtleDecoder(r, format, normalizeDecodeOptions(opts)), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// NewQuadEncoder returns a push encoder for the given format.
func NewQuadEncoder(w io.Writer, format Format) (QuadEncoder, error) {
	switch format {
	case FormatNTriples, FormatNQuads:
		return newNTEncoder(w, format), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ParseQuads decodes r and streams every quad to handler.
// If ctx is nil, context.Background() is used. When the format declares
// prefixes and handler is a PrefixHandler, the prefixes are reported after
// the last quad.
func ParseQuads(ctx context.Context, r io.Reader, format Format, opts DecodeOptions, handler QuadHandler) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx
	dec, err := NewQuadDecoder(r, format, opts)
	if err != nil {
		return err
	}
	defer dec.Close()
	for {
		quad, err := dec.Next()
		if err == io.EOF {
			reportPrefixes(dec, handler)
			return nil
		}
		if err != nil {
			return err
		}
		if err := handler.Handle(quad); err != nil {
			return err
		}
	}
}

// reportPrefixes hands the declared prefixes to handler in prefix order.
func reportPrefixes(dec QuadDecoder, handler QuadHandler) {
	pd, ok := dec.(PrefixDecoder)
	if !ok {
		return
	}
	ph, ok := handler.(PrefixHandler)
	if !ok {
		return
	}
	prefixes := pd.Prefixes()
	for _, prefix := range slices.Sorted(maps.Keys(prefixes)) {
		ph.HandlePrefix(prefix, prefixes[prefix])
	}
}
