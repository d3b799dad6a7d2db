package rdf

import (
	"io"
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Format
		wantOK bool
	}{
		{"triples", "# header\n<http://example.org/s> <http://example.org/p> \"o\" .\n", FormatNTriples, true},
		{"quads", "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n_:b <http://example.org/p> \"x\"@en _:g .\n", FormatNQuads, true},
		{"empty", "\n# only a comment\n", "", false},
		{"json", "{\"@id\": \"x\"}\n", "", false},
		{"json array", "[\n  {\"@id\": \"x\"}\n]\n", "", false},
		{"turtle", "@prefix ex: <http://example.org/> .\nex:s ex:p \"o\" .\n", FormatTurtle, true},
		{"turtle multiline", "<http://example.org/s>\n  <http://example.org/p> \"o\" .\n", FormatTurtle, true},
		{"trig", "@prefix ex: <http://example.org/> .\nex:g {\n  ex:s ex:p ex:o .\n}\n", FormatTriG, true},
		{"trig default block", "{\n  <http://example.org/s> <http://example.org/p> <http://example.org/o> .\n}\n", FormatTriG, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replay, ok := DetectFormat(strings.NewReader(tt.input))
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("DetectFormat() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
			data, err := io.ReadAll(replay)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.input {
				t.Fatalf("replayed %q, want %q", data, tt.input)
			}
		})
	}
}

func TestDetectFormatSamplesPrefix(t *testing.T) {
	line := "<http://example.org/s> <http://example.org/p> \"" + strings.Repeat("x", 100) + "\" .\n"
	input := strings.Repeat(line, 100) + "<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .\n"
	got, replay, ok := DetectFormat(strings.NewReader(input))
	if !ok || got != FormatNTriples {
		t.Fatalf("DetectFormat() = %q, %v", got, ok)
	}
	data, _ := io.ReadAll(replay)
	if len(data) != len(input) {
		t.Fatalf("replayed %d bytes, want %d", len(data), len(input))
	}
}
