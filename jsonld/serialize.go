package jsonld

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// SerializeOptions configures ToJSONLD.
type SerializeOptions struct {
	// Base is the document base IRI.
	Base string
	// Compact compacts the document. Without Context the dataset's
	// namespace prefixes become the compaction context.
	Compact bool
	// Context is an explicit compaction context.
	Context map[string]interface{}
	// UseNativeTypes converts xsd numbers and booleans to JSON values.
	UseNativeTypes bool
	// UseRdfType keeps rdf:type as a property instead of @type.
	UseRdfType bool
}

// WriteNQuads writes the dataset to w as N-Quads.
func WriteNQuads(w io.Writer, ds *ld.RDFDataset) error {
	nquads, err := serializeNQuads(ds)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, nquads)
	return err
}

// EncodeDataset writes the dataset through enc, the default graph first and
// then the named graphs in key order. The datatypes xsd:string and
// rdf:langString are implied and not written.
func EncodeDataset(enc rdf.QuadEncoder, ds *ld.RDFDataset) error {
	keys := make([]string, 0, len(ds.Graphs))
	for key := range ds.Graphs {
		if key != DefaultGraph {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	for _, key := range append([]string{DefaultGraph}, keys...) {
		for _, q := range ds.Graphs[key] {
			quad, err := quadFromNodes(q)
			if err != nil {
				return err
			}
			if err := enc.Write(quad); err != nil {
				return err
			}
		}
	}
	return enc.Flush()
}

func quadFromNodes(q *ld.Quad) (rdf.Quad, error) {
	var quad rdf.Quad
	var err error
	if quad.S, err = termFromNode(q.Subject); err != nil {
		return quad, err
	}
	predicate, ok := q.Predicate.(ld.IRI)
	if !ok {
		return quad, fmt.Errorf("%w: predicate %T", ErrInvalidInput, q.Predicate)
	}
	quad.P = rdf.IRI{Value: predicate.Value}
	if quad.O, err = termFromNode(q.Object); err != nil {
		return quad, err
	}
	if q.Graph != nil {
		if quad.G, err = termFromNode(q.Graph); err != nil {
			return quad, err
		}
	}
	return quad, nil
}

func termFromNode(node ld.Node) (rdf.Term, error) {
	switch v := node.(type) {
	case ld.IRI:
		return rdf.IRI{Value: v.Value}, nil
	case ld.BlankNode:
		return rdf.BlankNode{ID: strings.TrimPrefix(v.Attribute, "_:")}, nil
	case ld.Literal:
		lit := rdf.Literal{Lexical: v.Value, Lang: v.Language}
		if v.Datatype != ld.XSDString && v.Datatype != ld.RDFLangString {
			lit.Datatype = rdf.IRI{Value: v.Datatype}
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("%w: unsupported node %T", ErrInvalidInput, node)
	}
}

// ToJSONLD turns the dataset into a JSON-LD document.
func ToJSONLD(ctx context.Context, ds *ld.RDFDataset, opts SerializeOptions) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	nquads, err := serializeNQuads(ds)
	if err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions(opts.Base)
	goldOpts.Format = "application/n-quads"
	goldOpts.UseNativeTypes = opts.UseNativeTypes
	goldOpts.UseRdfType = opts.UseRdfType
	doc, err := proc.FromRDF(nquads, goldOpts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: fromRDF: %w", err)
	}
	if !opts.Compact {
		return doc, nil
	}
	compactCtx := opts.Context
	if compactCtx == nil {
		compactCtx = NamespaceContext(ds)
	}
	compacted, err := proc.Compact(doc, map[string]interface{}{"@context": compactCtx}, ld.NewJsonLdOptions(opts.Base))
	if err != nil {
		return nil, fmt.Errorf("jsonld: compact: %w", err)
	}
	return compacted, nil
}

// NamespaceContext returns the dataset's namespace prefixes as a JSON-LD
// context. The empty prefix becomes @vocab.
func NamespaceContext(ds *ld.RDFDataset) map[string]interface{} {
	nsCtx := make(map[string]interface{})
	for prefix, iri := range ds.GetNamespaces() {
		if prefix == "" {
			nsCtx["@vocab"] = iri
			continue
		}
		nsCtx[prefix] = iri
	}
	return nsCtx
}

func serializeNQuads(ds *ld.RDFDataset) (string, error) {
	serializer := &ld.NQuadRDFSerializer{}
	serialized, err := serializer.Serialize(ds)
	if err != nil {
		return "", err
	}
	nquads, ok := serialized.(string)
	if !ok {
		return "", fmt.Errorf("jsonld: unexpected N-Quads result %T", serialized)
	}
	return nquads, nil
}
