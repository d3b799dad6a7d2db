// Package jsonld converts RDF graphs into JSON-LD datasets.
//
// The conversion accepts one of four input shapes (see Input): nothing at
// all, a single subject bound to the graph it lives in, a whole model with
// its namespace prefixes, or a multi-graph source with a default graph and
// named graphs. The result is a json-gold *ld.RDFDataset keyed by graph name,
// with the default graph stored under DefaultGraph.
//
// Blank nodes are renamed to session-local identifiers (_:t1, _:t2, ...).
// IRIs are copied verbatim. A Session holds the blank node names and the
// dataset being built; Importer creates a fresh Session per call unless
// WithSharedSession is given.
//
// Example:
//
//	model := graph.NewModel()
//	model.SetPrefix("ex", "http://example.org/")
//	model.Add(rdf.Triple{S: rdf.IRI{Value: "http://example.org/s"}, P: rdf.IRI{Value: "http://example.org/p"}, O: rdf.Literal{Lexical: "v"}})
//
//	ds, err := jsonld.NewImporter().Import(jsonld.WholeModel{Model: model})
//	if err != nil {
//	    // handle error
//	}
//	doc, err := jsonld.ToJSONLD(ctx, ds, jsonld.SerializeOptions{Compact: true})
//
// Neither Session nor a shared-session Importer is safe for concurrent use.
package jsonld
