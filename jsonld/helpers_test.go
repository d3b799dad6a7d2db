package jsonld

import (
	"errors"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

const ex = "http://example.org/"

func iri(local string) rdf.IRI { return rdf.IRI{Value: ex + local} }

func blank(label string) rdf.BlankNode { return rdf.BlankNode{ID: label} }

func describeQuads(quads []*ld.Quad) []string {
	out := make([]string, 0, len(quads))
	for _, q := range quads {
		out = append(out, describeNode(q.Subject)+" "+describeNode(q.Predicate)+" "+describeNode(q.Object))
	}
	return out
}

func describeNode(n ld.Node) string {
	switch v := n.(type) {
	case ld.IRI:
		return "<" + v.Value + ">"
	case ld.BlankNode:
		return v.Attribute
	case ld.Literal:
		if v.Language != "" {
			return fmt.Sprintf("%q@%s", v.Value, v.Language)
		}
		return fmt.Sprintf("%q^^<%s>", v.Value, v.Datatype)
	default:
		return fmt.Sprintf("?%T", n)
	}
}

func countQuads(ds *ld.RDFDataset) int {
	n := 0
	for _, quads := range ds.Graphs {
		n += len(quads)
	}
	return n
}

// failingGraph returns its triples, then err.
type failingGraph struct {
	triples []rdf.Triple
	err     error
}

func (g failingGraph) Find(s, p, o rdf.Term) rdf.TripleIterator {
	return &failingIter{triples: g.triples, err: g.err}
}

type failingIter struct {
	triples []rdf.Triple
	err     error
	pos     int
	closed  bool
}

func (it *failingIter) Next() (rdf.Triple, error) {
	if it.pos < len(it.triples) {
		t := it.triples[it.pos]
		it.pos++
		return t, nil
	}
	return rdf.Triple{}, it.err
}

func (it *failingIter) Close() error {
	it.closed = true
	return nil
}

// fixedSource exposes graphs keyed by name in the given order.
type fixedSource struct {
	def    rdf.Graph
	names  []rdf.Term
	graphs map[rdf.Term]rdf.Graph
}

func (s fixedSource) DefaultGraph() rdf.Graph { return s.def }

func (s fixedSource) GraphNames() rdf.TermIterator { return &sliceTerms{terms: s.names} }

func (s fixedSource) NamedGraph(name rdf.Term) (rdf.Graph, error) {
	g, ok := s.graphs[name]
	if !ok {
		return nil, errors.New("no such graph")
	}
	return g, nil
}

type sliceTerms struct {
	terms []rdf.Term
	pos   int
}

func (it *sliceTerms) Next() (rdf.Term, error) {
	if it.pos >= len(it.terms) {
		return nil, io.EOF
	}
	t := it.terms[it.pos]
	it.pos++
	return t, nil
}

func (it *sliceTerms) Close() error { return nil }
