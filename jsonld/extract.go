package jsonld

import (
	"io"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// ImportResource appends every statement whose subject is subject to the
// default graph, in the order g enumerates them.
func (s *Session) ImportResource(subject rdf.Term, g rdf.Graph) error {
	subj := s.nodeFor(subject)
	it := g.Find(subject, nil, nil)
	defer it.Close()
	for {
		t, err := it.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.append(DefaultGraph, nil, subj, t.P, s.objectFor(t.O))
	}
}

// ImportGraph appends every statement of g to the partition of name. A nil
// name is the default graph; a blank name goes through the session namer.
func (s *Session) ImportGraph(g rdf.Graph, name rdf.Term) error {
	key, node, err := s.partition(name)
	if err != nil {
		return err
	}
	it := g.Find(nil, nil, nil)
	defer it.Close()
	before := s.quads
	for {
		t, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		s.append(key, node, s.nodeFor(t.S), t.P, s.objectFor(t.O))
	}
	s.log.Debug("imported graph", "graph", key, "quads", s.quads-before)
	return nil
}

// ImportDataset imports the default graph of src under DefaultGraph, then
// every named graph under its own name.
func (s *Session) ImportDataset(src Source) error {
	if def := src.DefaultGraph(); def != nil {
		if err := s.ImportGraph(def, nil); err != nil {
			return err
		}
	}
	names := src.GraphNames()
	defer names.Close()
	for {
		name, err := names.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !s.importable(name) {
			continue
		}
		g, err := src.NamedGraph(name)
		if err != nil {
			return err
		}
		if err := s.ImportGraph(g, name); err != nil {
			return err
		}
	}
}

// ImportModel copies the namespace prefixes of m into the dataset and then
// imports the statements of each subject of m.
func (s *Session) ImportModel(m Model) error {
	for prefix, iri := range m.Namespaces() {
		s.dataset.SetNamespace(prefix, iri)
	}
	subjects := m.Subjects()
	defer subjects.Close()
	for {
		subject, err := subjects.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.ImportResource(subject, m); err != nil {
			return err
		}
	}
}

// importable reports whether a named graph is imported. Graphs named by
// a literal are skipped, as are blank-named graphs under BlankGraphSkip.
func (s *Session) importable(name rdf.Term) bool {
	if !rdf.IsNode(name) {
		kind := "none"
		if name != nil {
			kind = name.Kind().String()
		}
		s.log.Debug("skipping named graph", "name", name, "kind", kind)
		return false
	}
	if _, blank := name.(rdf.BlankNode); blank && s.opts.BlankGraphs == BlankGraphSkip {
		s.log.Debug("skipping named graph", "name", name, "policy", s.opts.BlankGraphs)
		return false
	}
	return true
}
