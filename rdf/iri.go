package rdf

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidIRI is returned for IRIs that are not absolute or contain
// characters an IRI reference may not carry unescaped.
var ErrInvalidIRI = errors.New("invalid IRI")

// ValidateIRI checks that iri is an absolute IRI with a well-formed scheme.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("%w: empty", ErrInvalidIRI)
	}
	for i, r := range iri {
		if r <= 0x20 {
			return fmt.Errorf("%w: control or space character at offset %d", ErrInvalidIRI, i)
		}
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
			return fmt.Errorf("%w: character %q at offset %d", ErrInvalidIRI, r, i)
		}
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIRI, err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("%w: relative IRI %s", ErrInvalidIRI, iri)
	}
	return nil
}
