package graph

import (
	"errors"
	"fmt"
	"maps"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// ErrGraphNotFound is returned when a named graph does not exist.
var ErrGraphNotFound = errors.New("graph: named graph not found")

// Dataset is a default graph plus named graphs kept in first-seen order,
// together with the namespace prefixes declared by its source document.
type Dataset struct {
	def      *Graph
	named    map[rdf.Term]*Graph
	names    []rdf.Term
	prefixes map[string]string
}

// NewDataset returns a dataset with an empty default graph.
func NewDataset() *Dataset {
	return &Dataset{def: NewGraph(), named: make(map[rdf.Term]*Graph), prefixes: make(map[string]string)}
}

// Add inserts q into the graph named by q.G, or the default graph when q.G is nil.
func (d *Dataset) Add(q rdf.Quad) bool {
	if q.InDefaultGraph() {
		return d.def.Add(q.ToTriple())
	}
	return d.Graph(q.G).Add(q.ToTriple())
}

// Graph returns the named graph, creating it on first use.
func (d *Dataset) Graph(name rdf.Term) *Graph {
	g, ok := d.named[name]
	if !ok {
		g = NewGraph()
		d.named[name] = g
		d.names = append(d.names, name)
	}
	return g
}

// SetPrefix declares prefix as an abbreviation of iri.
func (d *Dataset) SetPrefix(prefix, iri string) {
	d.prefixes[prefix] = iri
}

// Namespaces returns a copy of the prefix to IRI mapping.
func (d *Dataset) Namespaces() map[string]string {
	return maps.Clone(d.prefixes)
}

// NamedGraphCount returns the number of named graphs.
func (d *Dataset) NamedGraphCount() int { return len(d.names) }

// Default returns the default graph.
func (d *Dataset) Default() *Graph { return d.def }

// DefaultGraph returns the default graph as an rdf.Graph.
func (d *Dataset) DefaultGraph() rdf.Graph { return d.def }

// GraphNames enumerates the named graph identifiers in first-seen order.
func (d *Dataset) GraphNames() rdf.TermIterator {
	return &termIter{terms: d.names}
}

// NamedGraph returns the graph identified by name.
func (d *Dataset) NamedGraph(name rdf.Term) (rdf.Graph, error) {
	g, ok := d.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrGraphNotFound, name)
	}
	return g, nil
}

// Len returns the number of quads across all graphs.
func (d *Dataset) Len() int {
	n := d.def.Len()
	for _, g := range d.named {
		n += g.Len()
	}
	return n
}
