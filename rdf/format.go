package rdf

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies RDF serialization formats.
type Format string

const (
	FormatNTriples Format = "ntriples"
	FormatNQuads   Format = "nquads"
	FormatTurtle   Format = "turtle"
	FormatTriG     Format = "trig"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ntriples", "nt", "n-triples":
		return FormatNTriples, true
	case "nquads", "nq", "n-quads":
		return FormatNQuads, true
	case "turtle", "ttl":
		return FormatTurtle, true
	case "trig":
		return FormatTriG, true
	default:
		return "", false
	}
}

// FormatFromPath infers the format from a filename extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		return FormatNTriples, nil
	case ".nq":
		return FormatNQuads, nil
	case ".ttl":
		return FormatTurtle, nil
	case ".trig":
		return FormatTriG, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format for path %s", ErrUnsupportedFormat, path)
	}
}

// FormatFromContentType infers the format from a media type.
func FormatFromContentType(contentType string) (Format, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch mediaType {
	case "application/n-triples":
		return FormatNTriples, nil
	case "application/n-quads":
		return FormatNQuads, nil
	case "text/turtle", "application/x-turtle":
		return FormatTurtle, nil
	case "application/trig", "application/x-trig":
		return FormatTriG, nil
	default:
		return "", fmt.Errorf("%w: unknown content type %s", ErrUnsupportedFormat, contentType)
	}
}

// SupportsGraphs reports whether the format carries graph names.
func (f Format) SupportsGraphs() bool {
	return f == FormatNQuads || f == FormatTriG
}
