package graph

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// ErrNamedGraphInModel is returned when a model is loaded from input that
// places statements in a named graph.
var ErrNamedGraphInModel = errors.New("graph: named graph statement in model input")

// LoadModel decodes r into a new model. Prefixes declared by the document
// (Turtle @prefix and PREFIX) become the model's namespaces.
func LoadModel(ctx context.Context, r io.Reader, format rdf.Format, opts rdf.DecodeOptions) (*Model, error) {
	l := modelLoader{m: NewModel()}
	if err := rdf.ParseQuads(ctx, r, format, opts, l); err != nil {
		return nil, err
	}
	return l.m, nil
}

// LoadDataset decodes r into a new dataset, keeping declared prefixes.
func LoadDataset(ctx context.Context, r io.Reader, format rdf.Format, opts rdf.DecodeOptions) (*Dataset, error) {
	l := datasetLoader{d: NewDataset()}
	if err := rdf.ParseQuads(ctx, r, format, opts, l); err != nil {
		return nil, err
	}
	return l.d, nil
}

type modelLoader struct {
	m *Model
}

func (l modelLoader) Handle(q rdf.Quad) error {
	if !q.InDefaultGraph() {
		return fmt.Errorf("%w: %s", ErrNamedGraphInModel, q.G)
	}
	l.m.Add(q.ToTriple())
	return nil
}

func (l modelLoader) HandlePrefix(prefix, iri string) { l.m.SetPrefix(prefix, iri) }

type datasetLoader struct {
	d *Dataset
}

func (l datasetLoader) Handle(q rdf.Quad) error {
	l.d.Add(q)
	return nil
}

func (l datasetLoader) HandlePrefix(prefix, iri string) { l.d.SetPrefix(prefix, iri) }
