package jsonld_test

import (
	"fmt"

	"github.com/geoknoesis/rdf-go-jsonld/graph"
	"github.com/geoknoesis/rdf-go-jsonld/jsonld"
	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

func ExampleImporter_Import() {
	d := graph.NewDataset()
	d.Add(rdf.Quad{
		S: rdf.BlankNode{ID: "alice"},
		P: rdf.IRI{Value: "http://xmlns.com/foaf/0.1/name"},
		O: rdf.Literal{Lexical: "Alice"},
	})
	d.Add(rdf.Quad{
		S: rdf.BlankNode{ID: "alice"},
		P: rdf.IRI{Value: "http://xmlns.com/foaf/0.1/age"},
		O: rdf.Literal{Lexical: "42", Datatype: rdf.IRI{Value: "http://www.w3.org/2001/XMLSchema#integer"}},
		G: rdf.IRI{Value: "http://example.org/people"},
	})

	ds, err := jsonld.NewImporter().Import(jsonld.MultiGraph{Source: d})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, name := range []string{jsonld.DefaultGraph, "http://example.org/people"} {
		for _, q := range ds.Graphs[name] {
			fmt.Println(name, q.Subject.GetValue(), q.Predicate.GetValue(), q.Object.GetValue())
		}
	}

	// Output:
	// @default _:t1 http://xmlns.com/foaf/0.1/name Alice
	// http://example.org/people _:t1 http://xmlns.com/foaf/0.1/age 42
}

func ExampleImporter_Parse() {
	_, err := jsonld.NewImporter().Parse(42)
	fmt.Println(jsonld.Code(err))

	// Output:
	// INVALID_INPUT
}
