package jsonld

import (
	"testing"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

const xsdInteger = "http://www.w3.org/2001/XMLSchema#integer"

func TestIdentifyIRIVerbatim(t *testing.T) {
	s := NewSession()
	for _, value := range []string{ex + "s", "urn:x", "not an iri at all", ""} {
		for i := 0; i < 3; i++ {
			if got := s.Identify(rdf.IRI{Value: value}); got != value {
				t.Fatalf("identify(%q) = %q", value, got)
			}
		}
	}
	if s.Namer().Len() != 0 {
		t.Fatalf("IRIs must not touch the namer")
	}
}

func TestIdentifyBlankNodes(t *testing.T) {
	s := NewSession()
	a1 := s.Identify(blank("a"))
	a2 := s.Identify(blank("a"))
	b := s.Identify(blank("b"))
	if a1 != a2 {
		t.Fatalf("same label resolved to %s and %s", a1, a2)
	}
	if a1 == b {
		t.Fatalf("different labels share %s", a1)
	}
}

func TestLiteralNode(t *testing.T) {
	tests := []struct {
		name string
		in   rdf.Literal
		want ld.Literal
	}{
		{
			name: "plain",
			in:   rdf.Literal{Lexical: "v"},
			want: ld.Literal{Value: "v", Datatype: ld.XSDString},
		},
		{
			name: "empty language is no language",
			in:   rdf.Literal{Lexical: "v", Lang: ""},
			want: ld.Literal{Value: "v", Datatype: ld.XSDString},
		},
		{
			name: "language",
			in:   rdf.Literal{Lexical: "chat", Lang: "fr"},
			want: ld.Literal{Value: "chat", Datatype: ld.RDFLangString, Language: "fr"},
		},
		{
			name: "datatype",
			in:   rdf.Literal{Lexical: "1", Datatype: rdf.IRI{Value: xsdInteger}},
			want: ld.Literal{Value: "1", Datatype: xsdInteger},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := literalNode(tt.in); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSessionsSharingNamer(t *testing.T) {
	namer := NewBlankNodeNamer("")
	first := NewSessionWithNamer(namer)
	second := NewSessionWithNamer(namer)
	if first.Identify(blank("x")) != second.Identify(blank("x")) {
		t.Fatal("sessions sharing a namer must agree on labels")
	}
	if first.Dataset() == second.Dataset() {
		t.Fatal("sessions must not share datasets")
	}
}
