// Package rdf provides the RDF term model and the codecs used to feed graphs
// into the JSON-LD importer.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Terms are small comparable values: IRI, BlankNode and Literal. Two terms are
// equal when they compare equal with ==, which makes them usable as map keys
// and as Find patterns in the graph package.
//
// Supported formats:
//   - N-Triples (statements without a graph term)
//   - N-Quads (statements with an optional graph term)
//   - Turtle (prefixes, base, lists, collections and literal shorthands)
//   - TriG (Turtle plus graph blocks)
//
// Turtle and TriG decoders implement PrefixDecoder; ParseQuads passes the
// declared prefixes to a handler that implements PrefixHandler.
//
// Example (decoding quads):
//
//	dec, err := rdf.NewQuadDecoder(strings.NewReader(input), rdf.FormatNQuads, rdf.DecodeOptions{})
//	if err != nil {
//	    // handle error
//	}
//	defer dec.Close()
//
//	for {
//	    quad, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process quad.S, quad.P, quad.O, quad.G
//	}
//
// RDF-star quoted triples are rejected by all decoders. Relative IRIs are
// resolved against the Turtle base and rejected when no base applies (see
// ValidateIRI). DetectFormat tells the formats apart from a sample.
package rdf
