package jsonld

import (
	"fmt"
	"reflect"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// Input is the shape of data handed to Importer.Import. It is one of Empty,
// SingleSubject, WholeModel or MultiGraph.
type Input interface {
	shape() string
}

// Empty imports nothing and yields an empty dataset.
type Empty struct{}

// SingleSubject imports the statements of one subject from its home graph.
type SingleSubject struct {
	Subject rdf.Term
	Graph   rdf.Graph
}

// WholeModel imports every subject of a model plus its namespace prefixes.
type WholeModel struct {
	Model Model
}

// MultiGraph imports a default graph and all named graphs of a source.
type MultiGraph struct {
	Source Source
}

func (Empty) shape() string         { return "empty" }
func (SingleSubject) shape() string { return "subject" }
func (WholeModel) shape() string    { return "model" }
func (MultiGraph) shape() string    { return "dataset" }

// Importer converts graph inputs into JSON-LD datasets.
type Importer struct {
	opts  Options
	namer *BlankNodeNamer
}

// NewImporter returns an importer configured by opts.
func NewImporter(opts ...Option) *Importer {
	options := buildOptions(opts)
	im := &Importer{opts: options}
	if options.SharedSession {
		im.namer = NewBlankNodeNamer(options.BlankNodePrefix)
	}
	return im
}

// Import converts in into a new dataset. A nil Input behaves like Empty.
// Unsupported shapes fail with ErrInvalidInput and return no dataset.
func (im *Importer) Import(in Input) (*ld.RDFDataset, error) {
	if in == nil {
		in = Empty{}
	}
	s := im.newSession()
	var err error
	switch v := in.(type) {
	case Empty:
	case SingleSubject:
		if isNil(v.Subject) || isNil(v.Graph) {
			return nil, fmt.Errorf("%w: subject input without subject or graph", ErrInvalidInput)
		}
		if !rdf.IsNode(v.Subject) {
			return nil, fmt.Errorf("%w: subject must be an IRI or blank node, got %s", ErrInvalidInput, v.Subject.Kind())
		}
		err = s.ImportResource(v.Subject, v.Graph)
	case WholeModel:
		if isNil(v.Model) {
			return nil, fmt.Errorf("%w: model input without model", ErrInvalidInput)
		}
		err = s.ImportModel(v.Model)
	case MultiGraph:
		if isNil(v.Source) {
			return nil, fmt.Errorf("%w: dataset input without source", ErrInvalidInput)
		}
		err = s.ImportDataset(v.Source)
	default:
		return nil, fmt.Errorf("%w: unsupported input %T", ErrInvalidInput, in)
	}
	if err != nil {
		return nil, err
	}
	im.opts.Logger.Debug("imported RDF input",
		"shape", in.shape(),
		"graphs", len(s.dataset.Graphs),
		"quads", s.quads,
		"blank_nodes", s.namer.Len(),
	)
	return s.dataset, nil
}

// Parse converts an untyped input. It accepts nil, any Input, a Source, a
// Model or a Resource, and fails with ErrInvalidInput for anything else.
//
// Typed nil pointers are rejected like any other unusable input.
func (im *Importer) Parse(input interface{}) (*ld.RDFDataset, error) {
	if input != nil && isNil(input) {
		return nil, fmt.Errorf("%w: nil %T", ErrInvalidInput, input)
	}
	switch v := input.(type) {
	case nil:
		return im.Import(Empty{})
	case Input:
		return im.Import(v)
	case Source:
		return im.Import(MultiGraph{Source: v})
	case Model:
		return im.Import(WholeModel{Model: v})
	case Resource:
		return im.Import(SingleSubject{Subject: v.Node(), Graph: v.Home()})
	default:
		return nil, fmt.Errorf("%w: expected a model, resource or dataset, got %T", ErrInvalidInput, input)
	}
}

// isNil reports whether v is nil or a nil pointer, map, slice or func
// wrapped in an interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func (im *Importer) newSession() *Session {
	namer := im.namer
	if namer == nil {
		namer = NewBlankNodeNamer(im.opts.BlankNodePrefix)
	}
	return newSession(namer, im.opts)
}
