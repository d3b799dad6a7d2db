// Package graph is an in-memory RDF store: graphs, models carrying namespace
// prefixes, and datasets made of a default graph plus named graphs.
//
// Graphs keep insertion order and set semantics: adding a triple that is
// already present is a no-op. Enumeration is lazy and pull-based through the
// rdf.TripleIterator and rdf.TermIterator contracts.
//
// The types here are not safe for concurrent mutation.
package graph
