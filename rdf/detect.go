package rdf

import (
	"bufio"
	"io"
	"strings"
)

const detectSampleBytes = 4096

// DetectFormat sniffs the start of r and reports its RDF format. The
// returned reader replays the sampled bytes, so callers decode from it
// instead of r. Line-based samples are N-Quads when a graph term appears
// and N-Triples otherwise. Other samples are TriG when they contain a
// graph block and Turtle otherwise; ok is false for empty or JSON input.
func DetectFormat(r io.Reader) (Format, io.Reader, bool) {
	br := bufio.NewReaderSize(r, detectSampleBytes)
	sample, _ := br.Peek(detectSampleBytes)

	lines := strings.Split(string(sample), "\n")
	if len(sample) == detectSampleBytes && len(lines) > 1 {
		// the last line may be cut off
		lines = lines[:len(lines)-1]
	}
	found := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quad, err := parseNTLine(line, FormatNQuads)
		if err != nil {
			format, ok := sniffTurtle(string(sample))
			return format, br, ok
		}
		if quad.G != nil {
			return FormatNQuads, br, true
		}
		found = true
	}
	if !found {
		return "", br, false
	}
	return FormatNTriples, br, true
}

// sniffTurtle classifies a sample that is not line-based RDF.
func sniffTurtle(sample string) (Format, bool) {
	trimmed := strings.TrimLeft(sample, " \t\r\n")
	if trimmed == "" {
		return "", false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		rest := strings.TrimLeft(trimmed[1:], " \t\r\n")
		if rest == "" || rest[0] == '"' || rest[0] == '{' || rest[0] == ']' || rest[0] == '}' {
			return "", false
		}
	}
	if strings.Contains(sample, "{") {
		return FormatTriG, true
	}
	return FormatTurtle, true
}
