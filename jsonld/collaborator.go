package jsonld

import "github.com/geoknoesis/rdf-go-jsonld/rdf"

// Model is a whole graph together with its namespace prefixes.
type Model interface {
	rdf.Graph
	// Subjects enumerates each distinct subject once.
	Subjects() rdf.TermIterator
	// Namespaces returns the prefix to IRI mapping.
	Namespaces() map[string]string
}

// Source is a multi-graph dataset.
type Source interface {
	DefaultGraph() rdf.Graph
	// GraphNames enumerates the identifying node of every named graph.
	GraphNames() rdf.TermIterator
	NamedGraph(name rdf.Term) (rdf.Graph, error)
}

// Resource is a subject node bound to the graph its statements are read from.
type Resource interface {
	Node() rdf.Term
	Home() rdf.Graph
}
