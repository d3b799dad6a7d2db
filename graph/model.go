package graph

import (
	"maps"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// Model is a graph plus the namespace prefixes declared for it.
type Model struct {
	*Graph
	prefixes map[string]string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Graph: NewGraph(), prefixes: make(map[string]string)}
}

// SetPrefix declares prefix as an abbreviation of iri, replacing any
// previous declaration of the same prefix.
func (m *Model) SetPrefix(prefix, iri string) {
	m.prefixes[prefix] = iri
}

// Namespaces returns a copy of the prefix to IRI mapping.
func (m *Model) Namespaces() map[string]string {
	return maps.Clone(m.prefixes)
}

// Resource is a subject node together with the graph it lives in.
type Resource struct {
	node rdf.Term
	home rdf.Graph
}

// NewResource binds node to home.
func NewResource(node rdf.Term, home rdf.Graph) Resource {
	return Resource{node: node, home: home}
}

// Node returns the subject node.
func (r Resource) Node() rdf.Term { return r.node }

// Home returns the graph the node's statements are read from.
func (r Resource) Home() rdf.Graph { return r.home }
