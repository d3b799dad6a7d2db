package jsonld

import (
	"strconv"
	"strings"
)

// DefaultBlankNodePrefix is the prefix of generated blank node identifiers.
const DefaultBlankNodePrefix = "_:t"

// BlankNodeNamer maps source blank node labels to generated identifiers.
// Identifiers are never reused or reassigned; uniqueness holds only within
// one namer.
type BlankNodeNamer struct {
	prefix  string
	counter int
	names   map[string]string
}

// NewBlankNodeNamer returns a namer issuing prefix1, prefix2, ...
// An empty prefix selects DefaultBlankNodePrefix; a prefix without the
// "_:" marker gets it prepended.
func NewBlankNodeNamer(prefix string) *BlankNodeNamer {
	if prefix == "" {
		prefix = DefaultBlankNodePrefix
	}
	if !strings.HasPrefix(prefix, "_:") {
		prefix = "_:" + prefix
	}
	return &BlankNodeNamer{prefix: prefix, names: make(map[string]string)}
}

// Resolve returns the identifier for label, issuing a new one on first use.
func (n *BlankNodeNamer) Resolve(label string) string {
	if id, ok := n.names[label]; ok {
		return id
	}
	n.counter++
	id := n.prefix + strconv.Itoa(n.counter)
	n.names[label] = id
	return id
}

// Lookup returns the identifier issued for label, if any.
func (n *BlankNodeNamer) Lookup(label string) (string, bool) {
	id, ok := n.names[label]
	return id, ok
}

// Len returns the number of identifiers issued so far.
func (n *BlankNodeNamer) Len() int { return n.counter }
