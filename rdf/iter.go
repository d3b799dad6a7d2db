package rdf

// TripleIterator is a single forward pass over triples.
// Next returns io.EOF once the sequence is exhausted.
type TripleIterator interface {
	Next() (Triple, error)
	Close() error
}

// TermIterator is a single forward pass over terms.
// Next returns io.EOF once the sequence is exhausted.
type TermIterator interface {
	Next() (Term, error)
	Close() error
}

// Graph is a set of triples that can be searched by pattern.
type Graph interface {
	// Find enumerates the triples matching the pattern. A nil term is a
	// wildcard; Find(nil, nil, nil) enumerates the whole graph.
	Find(s, p, o Term) TripleIterator
}
