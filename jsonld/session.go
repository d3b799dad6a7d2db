package jsonld

import (
	"fmt"
	"log/slog"
	"strings"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// DefaultGraph is the dataset key of the default graph. It is not a legal IRI.
const DefaultGraph = "@default"

// Session is one conversion: a blank node namer plus the dataset being built.
type Session struct {
	namer   *BlankNodeNamer
	dataset *ld.RDFDataset
	opts    Options
	log     *slog.Logger
	quads   int
}

// NewSession returns a session with a fresh namer and an empty dataset.
func NewSession(opts ...Option) *Session {
	options := buildOptions(opts)
	return newSession(NewBlankNodeNamer(options.BlankNodePrefix), options)
}

// NewSessionWithNamer returns a session with an empty dataset that issues
// blank node names from namer. Sessions sharing a namer unify blank nodes
// that have the same source label.
func NewSessionWithNamer(namer *BlankNodeNamer, opts ...Option) *Session {
	return newSession(namer, buildOptions(opts))
}

func newSession(namer *BlankNodeNamer, opts Options) *Session {
	return &Session{
		namer:   namer,
		dataset: ld.NewRDFDataset(),
		opts:    opts,
		log:     opts.Logger,
	}
}

// Dataset returns the dataset built so far.
func (s *Session) Dataset() *ld.RDFDataset { return s.dataset }

// Namer returns the session's blank node namer.
func (s *Session) Namer() *BlankNodeNamer { return s.namer }

// QuadCount returns the number of quads appended by this session.
func (s *Session) QuadCount() int { return s.quads }

// Identify returns the identity string of a node: the IRI itself, or the
// generated identifier of a blank node.
func (s *Session) Identify(node rdf.Term) string {
	switch v := node.(type) {
	case rdf.IRI:
		return v.Value
	case rdf.BlankNode:
		return s.namer.Resolve(v.ID)
	default:
		return node.String()
	}
}

// nodeFor converts a subject or object node into a json-gold node.
func (s *Session) nodeFor(node rdf.Term) ld.Node {
	if _, ok := node.(rdf.BlankNode); ok {
		return ld.BlankNode{Attribute: s.Identify(node)}
	}
	return ld.IRI{Value: s.Identify(node)}
}

// objectFor converts any statement object into a json-gold node.
func (s *Session) objectFor(object rdf.Term) ld.Node {
	if lit, ok := object.(rdf.Literal); ok {
		return literalNode(lit)
	}
	return s.nodeFor(object)
}

// literalNode builds the literal payload. An empty language tag means no
// language; a missing datatype follows the RDF 1.1 defaults.
func literalNode(lit rdf.Literal) ld.Literal {
	datatype := lit.Datatype.Value
	if datatype == "" {
		if lit.Lang != "" {
			datatype = ld.RDFLangString
		} else {
			datatype = ld.XSDString
		}
	}
	return ld.Literal{Value: lit.Lexical, Datatype: datatype, Language: lit.Lang}
}

func (s *Session) append(key string, graph, subject ld.Node, predicate rdf.IRI, object ld.Node) {
	quad := &ld.Quad{
		Subject:   subject,
		Predicate: ld.IRI{Value: predicate.Value},
		Object:    object,
		Graph:     graph,
	}
	s.dataset.Graphs[key] = append(s.dataset.Graphs[key], quad)
	s.quads++
}

// partition returns the dataset key and graph node for a graph name. A nil
// name is the default graph, which has no graph node.
func (s *Session) partition(name rdf.Term) (string, ld.Node, error) {
	switch v := name.(type) {
	case nil:
		return DefaultGraph, nil, nil
	case rdf.IRI:
		// Keys starting with "_:" belong to renamed blank graphs.
		if v.Value == DefaultGraph || strings.HasPrefix(v.Value, "_:") {
			return "", nil, fmt.Errorf("%w: graph IRI %q clashes with a reserved dataset key", ErrInvalidInput, v.Value)
		}
		return v.Value, ld.IRI{Value: v.Value}, nil
	case rdf.BlankNode:
		id := s.Identify(v)
		return id, ld.BlankNode{Attribute: id}, nil
	default:
		return "", nil, fmt.Errorf("%w: graph name must be an IRI or blank node, got %s", ErrInvalidInput, name.Kind())
	}
}
