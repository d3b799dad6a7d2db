package graph

import (
	"io"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// Graph is an insertion-ordered in-memory triple set.
type Graph struct {
	triples   []rdf.Triple
	seen      map[rdf.Triple]struct{}
	bySubject map[rdf.Term][]int
	subjects  []rdf.Term
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:      make(map[rdf.Triple]struct{}),
		bySubject: make(map[rdf.Term][]int),
	}
}

// Add inserts t and reports whether it was not already present.
func (g *Graph) Add(t rdf.Triple) bool {
	if _, ok := g.seen[t]; ok {
		return false
	}
	g.seen[t] = struct{}{}
	if _, ok := g.bySubject[t.S]; !ok {
		g.subjects = append(g.subjects, t.S)
	}
	g.bySubject[t.S] = append(g.bySubject[t.S], len(g.triples))
	g.triples = append(g.triples, t)
	return true
}

// Contains reports whether t is in the graph.
func (g *Graph) Contains(t rdf.Triple) bool {
	_, ok := g.seen[t]
	return ok
}

// Len returns the number of triples.
func (g *Graph) Len() int { return len(g.triples) }

// Find implements rdf.Graph.
func (g *Graph) Find(s, p, o rdf.Term) rdf.TripleIterator {
	it := &tripleIter{g: g, s: s, p: p, o: o}
	if s != nil {
		it.candidates = g.bySubject[s]
		it.indexed = true
	}
	return it
}

// Subjects enumerates the distinct subjects in first-seen order.
func (g *Graph) Subjects() rdf.TermIterator {
	return &termIter{terms: g.subjects}
}

// Resource binds node to this graph.
func (g *Graph) Resource(node rdf.Term) Resource {
	return Resource{node: node, home: g}
}

type tripleIter struct {
	g          *Graph
	s, p, o    rdf.Term
	candidates []int
	indexed    bool
	pos        int
	closed     bool
}

func (it *tripleIter) Next() (rdf.Triple, error) {
	for !it.closed {
		var t rdf.Triple
		if it.indexed {
			if it.pos >= len(it.candidates) {
				break
			}
			t = it.g.triples[it.candidates[it.pos]]
		} else {
			if it.pos >= len(it.g.triples) {
				break
			}
			t = it.g.triples[it.pos]
		}
		it.pos++
		if matches(t, it.s, it.p, it.o) {
			return t, nil
		}
	}
	return rdf.Triple{}, io.EOF
}

func (it *tripleIter) Close() error {
	it.closed = true
	return nil
}

func matches(t rdf.Triple, s, p, o rdf.Term) bool {
	if s != nil && s != t.S {
		return false
	}
	if p != nil && p != rdf.Term(t.P) {
		return false
	}
	if o != nil && o != t.O {
		return false
	}
	return true
}

type termIter struct {
	terms  []rdf.Term
	pos    int
	closed bool
}

func (it *termIter) Next() (rdf.Term, error) {
	if it.closed || it.pos >= len(it.terms) {
		return nil, io.EOF
	}
	term := it.terms[it.pos]
	it.pos++
	return term, nil
}

func (it *termIter) Close() error {
	it.closed = true
	return nil
}
