package rdf

import (
	"bufio"
	"errors"
	"io"
	"maps"
	"net/url"
	"strconv"
	"strings"
)

const (
	rdfNS      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdNS      = "http://www.w3.org/2001/XMLSchema#"
	rdfType    = rdfNS + "type"
	rdfFirst   = rdfNS + "first"
	rdfRest    = rdfNS + "rest"
	rdfNil     = rdfNS + "nil"
	xsdInteger = xsdNS + "integer"
	xsdDecimal = xsdNS + "decimal"
	xsdDouble  = xsdNS + "double"
	xsdBoolean = xsdNS + "boolean"
)

// unitEnd records what terminated a top-level unit of Turtle or TriG input.
type unitEnd uint8

const (
	endDot         unitEnd = iota // '.'
	endOpenBlock                  // '{'
	endCloseBlock                 // a lone '}'
	endBeforeClose                // statement text followed by '}'
	endDirective                  // IRI closing a SPARQL-style PREFIX or BASE
	endEOF
)

// turtleUnit is one statement, directive or graph block delimiter with
// comments stripped. line and col locate its first byte.
type turtleUnit struct {
	text string
	line int
	col  int
	end  unitEnd
}

// position maps an offset in the unit text to an input line and column.
func (u turtleUnit) position(offset int) (int, int) {
	line, col := u.line, u.col
	for i := 0; i < offset && i < len(u.text); i++ {
		if u.text[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// lineAt returns the text of the unit line containing offset.
func (u turtleUnit) lineAt(offset int) string {
	if offset > len(u.text) {
		offset = len(u.text)
	}
	start := strings.LastIndexByte(u.text[:offset], '\n') + 1
	end := strings.IndexByte(u.text[offset:], '\n')
	if end < 0 {
		return strings.TrimSpace(u.text[start:])
	}
	return strings.TrimSpace(u.text[start : offset+end])
}

type turtleDecoder struct {
	reader   *bufio.Reader
	opts     DecodeOptions
	format   Format
	prefixes map[string]string
	base     string
	graph    Term
	inBlock  bool
	pending  []Quad

	line      int
	col       int
	lineBytes int
	count     int64
	err       error

	// Labels written in the document and labels generated for anonymous
	// nodes share one namespace; relabeled maps a written label that
	// collides with a generated one to its replacement.
	blank     int
	used      map[string]struct{}
	generated map[string]struct{}
	relabeled map[string]string
}

func newTurtleDecoder(r io.Reader, format Format, opts DecodeOptions) *turtleDecoder {
	return &turtleDecoder{
		reader:    bufio.NewReader(r),
		opts:      opts,
		format:    format,
		prefixes:  make(map[string]string),
		line:      1,
		col:       1,
		used:      make(map[string]struct{}),
		generated: make(map[string]struct{}),
		relabeled: make(map[string]string),
	}
}

// Prefixes returns the prefixes declared so far.
func (d *turtleDecoder) Prefixes() map[string]string {
	return maps.Clone(d.prefixes)
}

func (d *turtleDecoder) Next() (Quad, error) {
	if d.err != nil {
		return Quad{}, d.err
	}
	for len(d.pending) == 0 {
		if err := d.opts.Context.Err(); err != nil {
			d.err = err
			return Quad{}, err
		}
		unit, err := d.readUnit()
		if err == io.EOF {
			if d.inBlock {
				d.err = &ParseError{Format: d.format, Line: d.line, Column: d.col, Err: errors.New("unterminated graph block")}
				return Quad{}, d.err
			}
			return Quad{}, io.EOF
		}
		if err != nil {
			d.err = &ParseError{Format: d.format, Line: d.line, Column: d.col, Err: err}
			return Quad{}, d.err
		}
		if err := d.handleUnit(unit); err != nil {
			d.err = d.wrapAt(unit, err)
			return Quad{}, d.err
		}
	}
	if d.opts.MaxStatements > 0 && d.count >= d.opts.MaxStatements {
		d.err = &ParseError{Format: d.format, Line: d.line, Err: ErrStatementLimitExceeded}
		return Quad{}, d.err
	}
	quad := d.pending[0]
	d.pending = d.pending[1:]
	d.count++
	return quad, nil
}

func (d *turtleDecoder) Err() error { return d.err }

func (d *turtleDecoder) Close() error { return nil }

func (d *turtleDecoder) wrapAt(unit turtleUnit, err error) error {
	offset := 0
	var perr *ParseError
	if errors.As(err, &perr) {
		if perr.Column > 0 {
			offset = perr.Column - 1
		}
		err = perr.Err
	}
	line, col := unit.position(offset)
	out := &ParseError{Format: d.format, Line: line, Column: col, Err: err}
	if d.opts.DebugStatements {
		out.Statement = unit.lineAt(offset)
	}
	return out
}

func (d *turtleDecoder) handleUnit(unit turtleUnit) error {
	cursor := &turtleCursor{ntCursor: ntCursor{input: unit.text}, d: d}
	switch unit.end {
	case endOpenBlock:
		return d.openBlock(cursor)
	case endCloseBlock:
		if !d.inBlock {
			return cursor.errorf("unexpected '}'")
		}
		d.inBlock = false
		d.graph = nil
		return nil
	case endDirective:
		return cursor.parseDirective()
	case endBeforeClose:
		if !d.inBlock {
			return cursor.errorf("unexpected '}'")
		}
	case endEOF:
		return cursor.errorf("expected '.' at end of statement")
	}
	if strings.HasPrefix(unit.text, "@prefix") || strings.HasPrefix(unit.text, "@base") {
		if d.inBlock {
			return cursor.errorf("directive inside graph block")
		}
		return cursor.parseDirective()
	}
	if err := cursor.parseTriples(); err != nil {
		return err
	}
	for _, triple := range cursor.triples {
		d.pending = append(d.pending, triple.ToQuadInGraph(d.graph))
	}
	return nil
}

// openBlock starts a TriG graph block. The unit holds the optional GRAPH
// keyword and label preceding '{'.
func (d *turtleDecoder) openBlock(c *turtleCursor) error {
	if d.format != FormatTriG {
		return c.errorf("graph blocks are only allowed in TriG")
	}
	if d.inBlock {
		return c.errorf("nested graph block")
	}
	keyword := false
	if word := firstWord(c.input); strings.EqualFold(word, "GRAPH") {
		c.pos = len(word)
		keyword = true
	}
	c.skipWS()
	var graph Term
	switch {
	case c.pos >= len(c.input):
		if keyword {
			return c.errorf("graph label missing")
		}
	case strings.HasPrefix(c.input[c.pos:], "["):
		c.pos++
		if !c.consume(']') {
			return c.errorf("expected ']'")
		}
		graph = d.newBlank()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		label, err := c.parseBlankLabel()
		if err != nil {
			return err
		}
		graph = label
	default:
		iri, err := c.parseIRITerm()
		if err != nil {
			return err
		}
		graph = iri
	}
	if !c.atEnd() {
		return c.errorf("unexpected content before '{'")
	}
	d.graph = graph
	d.inBlock = true
	return nil
}

// newBlank returns a fresh label that does not clash with any label
// written in the document.
func (d *turtleDecoder) newBlank() BlankNode {
	for {
		d.blank++
		id := "b" + strconv.Itoa(d.blank)
		if _, taken := d.used[id]; taken {
			continue
		}
		d.generated[id] = struct{}{}
		return BlankNode{ID: id}
	}
}

// label maps a label written in the document to its blank node.
func (d *turtleDecoder) label(id string) BlankNode {
	if renamed, ok := d.relabeled[id]; ok {
		return BlankNode{ID: renamed}
	}
	if _, clash := d.generated[id]; clash {
		fresh := d.newBlank()
		d.relabeled[id] = fresh.ID
		return fresh
	}
	d.used[id] = struct{}{}
	return BlankNode{ID: id}
}

// resolve resolves a relative IRI reference against the current base.
func (d *turtleDecoder) resolve(ref string) string {
	return resolveIRI(d.base, ref)
}

func resolveIRI(base, ref string) string {
	if base == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil || r.Scheme != "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func (d *turtleDecoder) readByte() (byte, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '\n' {
		d.line++
		d.col = 1
		d.lineBytes = 0
		return b, nil
	}
	d.col++
	d.lineBytes++
	if d.opts.MaxLineBytes > 0 && d.lineBytes > d.opts.MaxLineBytes {
		return 0, ErrLineTooLong
	}
	return b, nil
}

// unreadByte steps back over the last byte, which is never a newline.
func (d *turtleDecoder) unreadByte() {
	if err := d.reader.UnreadByte(); err == nil {
		d.col--
		d.lineBytes--
	}
}

func (d *turtleDecoder) peekIs(want ...byte) bool {
	next, err := d.reader.Peek(len(want))
	if err != nil {
		return false
	}
	return string(next) == string(want)
}

// skip consumes n bytes that peekIs has already seen.
func (d *turtleDecoder) skip(n int, buf *strings.Builder) error {
	for range n {
		b, err := d.readByte()
		if err != nil {
			return err
		}
		buf.WriteByte(b)
	}
	return nil
}

func (d *turtleDecoder) skipComment() error {
	for {
		b, err := d.readByte()
		if err != nil || b == '\n' {
			return err
		}
	}
}

func (d *turtleDecoder) skipSpace() error {
	for {
		b, err := d.readByte()
		if err != nil {
			return err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
		case '#':
			if err := d.skipComment(); err != nil {
				return err
			}
		default:
			d.unreadByte()
			return nil
		}
	}
}

// readUnit reads the next top-level unit. Strings, IRIs and bracketed
// terms are kept whole; comments become line breaks.
func (d *turtleDecoder) readUnit() (turtleUnit, error) {
	if err := d.skipSpace(); err != nil {
		return turtleUnit{}, err
	}
	unit := turtleUnit{line: d.line, col: d.col}
	var (
		buf   strings.Builder
		quote byte
		long  bool
		inIRI bool
		depth int
		prev  byte
	)
	done := func(end unitEnd) (turtleUnit, error) {
		unit.text = buf.String()
		unit.end = end
		return unit, nil
	}
	for {
		b, err := d.readByte()
		if err == io.EOF {
			return done(endEOF)
		}
		if err != nil {
			return unit, err
		}
		switch {
		case quote != 0:
			buf.WriteByte(b)
			switch {
			case b == '\\':
				err = d.skip(1, &buf)
			case b == quote && !long:
				quote = 0
			case b == quote && d.peekIs(quote, quote):
				err = d.skip(2, &buf)
				quote = 0
			}
		case inIRI:
			buf.WriteByte(b)
			if b == '>' {
				inIRI = false
				if depth == 0 && isSPARQLDirective(buf.String()) {
					return done(endDirective)
				}
			}
		case b == '#' && prev != '\\':
			err = d.skipComment()
			buf.WriteByte('\n')
			b = '\n'
		case b == '<':
			buf.WriteByte(b)
			if d.peekIs('<') {
				err = d.skip(1, &buf)
			} else {
				inIRI = true
			}
		case (b == '"' || b == '\'') && prev != '\\':
			buf.WriteByte(b)
			quote = b
			long = d.peekIs(b, b)
			if long {
				err = d.skip(2, &buf)
			}
		case b == '[' || b == '(':
			depth++
			buf.WriteByte(b)
		case b == ']' || b == ')':
			depth--
			buf.WriteByte(b)
		case b == '{' && depth == 0:
			return done(endOpenBlock)
		case b == '}' && depth == 0:
			if strings.TrimSpace(buf.String()) == "" {
				return done(endCloseBlock)
			}
			d.unreadByte()
			return done(endBeforeClose)
		case b == '.' && depth == 0 && !(isNameByte(prev) && d.nextIsNameByte()):
			return done(endDot)
		default:
			buf.WriteByte(b)
		}
		if err == io.EOF {
			return done(endEOF)
		}
		if err != nil {
			return unit, err
		}
		if d.opts.MaxStatementBytes > 0 && buf.Len() > d.opts.MaxStatementBytes {
			return unit, ErrStatementTooLong
		}
		prev = b
	}
}

func (d *turtleDecoder) nextIsNameByte() bool {
	next, err := d.reader.Peek(1)
	return err == nil && isNameByte(next[0])
}

func isSPARQLDirective(text string) bool {
	word := firstWord(text)
	return strings.EqualFold(word, "PREFIX") || strings.EqualFold(word, "BASE")
}

func firstWord(text string) string {
	text = strings.TrimLeft(text, " \t\r\n")
	if i := strings.IndexAny(text, " \t\r\n<"); i >= 0 {
		return text[:i]
	}
	return text
}

// isNameByte reports whether ch may appear in a prefix, local name or
// blank node label. Bytes of multi-byte UTF-8 sequences are accepted.
func isNameByte(ch byte) bool {
	return isAlnum(ch) || ch == '_' || ch == '-' || ch >= 0x80
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// turtleCursor parses the terms of one unit.
type turtleCursor struct {
	ntCursor
	d       *turtleDecoder
	triples []Triple
}

func (c *turtleCursor) atEnd() bool {
	c.skipWS()
	return c.pos >= len(c.input)
}

func (c *turtleCursor) peek() byte {
	if c.pos < len(c.input) {
		return c.input[c.pos]
	}
	return 0
}

// wordEnds reports whether no name character follows offset n.
func (c *turtleCursor) wordEnds(n int) bool {
	at := c.pos + n
	return at >= len(c.input) || !isNameByte(c.input[at]) && c.input[at] != ':'
}

func (c *turtleCursor) emit(s Term, p IRI, o Term) {
	c.triples = append(c.triples, Triple{S: s, P: p, O: o})
}

func (c *turtleCursor) parseDirective() error {
	word := firstWord(c.input)
	c.pos = len(word)
	switch strings.ToLower(strings.TrimPrefix(word, "@")) {
	case "prefix":
		c.skipWS()
		start := c.pos
		for c.pos < len(c.input) && (isNameByte(c.input[c.pos]) || c.input[c.pos] == '.') {
			c.pos++
		}
		prefix := c.input[start:c.pos]
		if c.peek() != ':' {
			return c.errorf("expected ':' after prefix name")
		}
		c.pos++
		iri, err := c.parseIRIRef()
		if err != nil {
			return err
		}
		if !c.atEnd() {
			return c.errorf("unexpected content after prefix declaration")
		}
		c.d.prefixes[prefix] = iri.Value
		return nil
	case "base":
		iri, err := c.parseIRIRef()
		if err != nil {
			return err
		}
		if !c.atEnd() {
			return c.errorf("unexpected content after base declaration")
		}
		c.d.base = iri.Value
		return nil
	}
	return c.errorf("unknown directive %q", word)
}

func (c *turtleCursor) parseTriples() error {
	c.skipWS()
	if c.peek() == '[' {
		subject, err := c.parseBlankNodePropertyList()
		if err != nil {
			return err
		}
		if c.atEnd() {
			return nil
		}
		if err := c.parsePredicateObjectList(subject); err != nil {
			return err
		}
	} else {
		subject, err := c.parseSubject()
		if err != nil {
			return err
		}
		if err := c.parsePredicateObjectList(subject); err != nil {
			return err
		}
	}
	if !c.atEnd() {
		return c.errorf("unexpected content in statement")
	}
	return nil
}

func (c *turtleCursor) parseSubject() (Term, error) {
	c.skipWS()
	switch ch := c.peek(); {
	case c.pos >= len(c.input):
		return nil, c.errorf("subject missing")
	case ch == '(':
		return c.parseCollection()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankLabel()
	case ch == '"' || ch == '\'' || isDigit(ch) || ch == '+' || ch == '-':
		return nil, c.errorf("literal not allowed as subject")
	default:
		return c.parseIRITerm()
	}
}

func (c *turtleCursor) parsePredicateObjectList(subject Term) error {
	for {
		c.skipWS()
		var predicate IRI
		if c.peek() == 'a' && c.wordEnds(1) {
			c.pos++
			predicate = IRI{Value: rdfType}
		} else {
			iri, err := c.parseIRITerm()
			if err != nil {
				return err
			}
			predicate = iri
		}
		if err := c.parseObjectList(subject, predicate); err != nil {
			return err
		}
		if !c.consume(';') {
			return nil
		}
		for c.consume(';') {
		}
		if c.atEnd() || c.peek() == ']' {
			return nil
		}
	}
}

func (c *turtleCursor) parseObjectList(subject Term, predicate IRI) error {
	for {
		object, err := c.parseObject()
		if err != nil {
			return err
		}
		c.emit(subject, predicate, object)
		if !c.consume(',') {
			return nil
		}
	}
}

func (c *turtleCursor) parseObject() (Term, error) {
	c.skipWS()
	ch := c.peek()
	switch {
	case c.pos >= len(c.input):
		return nil, c.errorf("object missing")
	case ch == '[':
		return c.parseBlankNodePropertyList()
	case ch == '(':
		return c.parseCollection()
	case ch == '"' || ch == '\'':
		return c.parseTurtleLiteral()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankLabel()
	case isDigit(ch) || ch == '+' || ch == '-' || ch == '.':
		return c.parseNumber()
	case strings.HasPrefix(c.input[c.pos:], "true") && c.wordEnds(4):
		c.pos += 4
		return Literal{Lexical: "true", Datatype: IRI{Value: xsdBoolean}}, nil
	case strings.HasPrefix(c.input[c.pos:], "false") && c.wordEnds(5):
		c.pos += 5
		return Literal{Lexical: "false", Datatype: IRI{Value: xsdBoolean}}, nil
	default:
		return c.parseIRITerm()
	}
}

// parseIRITerm reads an IRI reference or a prefixed name.
func (c *turtleCursor) parseIRITerm() (IRI, error) {
	c.skipWS()
	if strings.HasPrefix(c.input[c.pos:], "<<") {
		return IRI{}, c.errorf("quoted triples are not supported")
	}
	if c.peek() == '<' {
		return c.parseIRIRef()
	}
	return c.parsePrefixedName()
}

func (c *turtleCursor) parseIRIRef() (IRI, error) {
	raw, err := c.readIRIRef()
	if err != nil {
		return IRI{}, err
	}
	value := c.d.resolve(raw)
	if err := ValidateIRI(value); err != nil {
		return IRI{}, c.errorf("%w", err)
	}
	return IRI{Value: value}, nil
}

func (c *turtleCursor) parsePrefixedName() (IRI, error) {
	start := c.pos
	for c.pos < len(c.input) && (isNameByte(c.input[c.pos]) || c.input[c.pos] == '.') {
		c.pos++
	}
	prefix := c.input[start:c.pos]
	if c.peek() != ':' {
		c.pos = start
		return IRI{}, c.errorf("expected IRI or prefixed name")
	}
	c.pos++
	var local strings.Builder
	trailingDots := 0
scan:
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		switch {
		case ch == '\\':
			if c.pos+1 >= len(c.input) || !strings.ContainsRune("_~.-!$&'()*+,;=/?#@%", rune(c.input[c.pos+1])) {
				return IRI{}, c.errorf("invalid escape in local name")
			}
			local.WriteByte(c.input[c.pos+1])
			c.pos += 2
			trailingDots = 0
		case ch == '%':
			if c.pos+2 >= len(c.input) || !isHex(c.input[c.pos+1]) || !isHex(c.input[c.pos+2]) {
				return IRI{}, c.errorf("invalid percent encoding in local name")
			}
			local.WriteString(c.input[c.pos : c.pos+3])
			c.pos += 3
			trailingDots = 0
		case ch == '.':
			local.WriteByte(ch)
			c.pos++
			trailingDots++
		case isNameByte(ch) || ch == ':':
			local.WriteByte(ch)
			c.pos++
			trailingDots = 0
		default:
			break scan
		}
	}
	c.pos -= trailingDots
	name := local.String()
	name = name[:len(name)-trailingDots]

	namespace, ok := c.d.prefixes[prefix]
	if !ok {
		c.pos = start
		return IRI{}, c.errorf("unknown prefix %q", prefix)
	}
	value := namespace + name
	if err := ValidateIRI(value); err != nil {
		return IRI{}, c.errorf("%w", err)
	}
	return IRI{Value: value}, nil
}

func (c *turtleCursor) parseBlankLabel() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && (isNameByte(c.input[c.pos]) || c.input[c.pos] == '.') {
		c.pos++
	}
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return c.d.label(c.input[start:c.pos]), nil
}

func (c *turtleCursor) parseBlankNodePropertyList() (Term, error) {
	c.pos++
	node := c.d.newBlank()
	if c.consume(']') {
		return node, nil
	}
	if err := c.parsePredicateObjectList(node); err != nil {
		return nil, err
	}
	if !c.consume(']') {
		return nil, c.errorf("expected ']'")
	}
	return node, nil
}

func (c *turtleCursor) parseCollection() (Term, error) {
	c.pos++
	var items []Term
	for {
		if c.atEnd() {
			return nil, c.errorf("unterminated collection")
		}
		if c.peek() == ')' {
			c.pos++
			break
		}
		item, err := c.parseObject()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return IRI{Value: rdfNil}, nil
	}
	head := c.d.newBlank()
	node := head
	for i, item := range items {
		c.emit(node, IRI{Value: rdfFirst}, item)
		if i == len(items)-1 {
			c.emit(node, IRI{Value: rdfRest}, IRI{Value: rdfNil})
			break
		}
		next := c.d.newBlank()
		c.emit(node, IRI{Value: rdfRest}, next)
		node = next
	}
	return head, nil
}

func (c *turtleCursor) parseTurtleLiteral() (Term, error) {
	quote := c.peek()
	long := strings.HasPrefix(c.input[c.pos:], strings.Repeat(string(quote), 3))
	if long {
		c.pos += 3
	} else {
		c.pos++
	}
	lexical, err := c.readString(quote, long)
	if err != nil {
		return nil, err
	}
	switch {
	case c.peek() == '@':
		lang, err := c.readLangTag()
		if err != nil {
			return nil, err
		}
		return Literal{Lexical: lexical, Lang: lang}, nil
	case strings.HasPrefix(c.input[c.pos:], "^^"):
		c.pos += 2
		datatype, err := c.parseIRITerm()
		if err != nil {
			return nil, err
		}
		return Literal{Lexical: lexical, Datatype: datatype}, nil
	}
	return Literal{Lexical: lexical}, nil
}

// parseNumber reads an integer, decimal or double literal.
func (c *turtleCursor) parseNumber() (Term, error) {
	start := c.pos
	if ch := c.peek(); ch == '+' || ch == '-' {
		c.pos++
	}
	digits := c.scanDigits()
	datatype := xsdInteger
	if c.peek() == '.' && c.pos+1 < len(c.input) && isDigit(c.input[c.pos+1]) {
		c.pos++
		digits += c.scanDigits()
		datatype = xsdDecimal
	}
	if digits == 0 {
		c.pos = start
		return nil, c.errorf("malformed number")
	}
	if ch := c.peek(); ch == 'e' || ch == 'E' {
		c.pos++
		if ch := c.peek(); ch == '+' || ch == '-' {
			c.pos++
		}
		if c.scanDigits() == 0 {
			return nil, c.errorf("malformed exponent")
		}
		datatype = xsdDouble
	}
	if !c.wordEnds(0) {
		return nil, c.errorf("unexpected character %q after number", c.peek())
	}
	return Literal{Lexical: c.input[start:c.pos], Datatype: IRI{Value: datatype}}, nil
}

func (c *turtleCursor) scanDigits() int {
	start := c.pos
	for c.pos < len(c.input) && isDigit(c.input[c.pos]) {
		c.pos++
	}
	return c.pos - start
}

func isHex(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

var _ PrefixDecoder = (*turtleDecoder)(nil)
