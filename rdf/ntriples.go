package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type ntDecoder struct {
	reader *bufio.Reader
	opts   DecodeOptions
	format Format
	line   int
	count  int64
	err    error
}

func newNTDecoder(r io.Reader, format Format, opts DecodeOptions) *ntDecoder {
	return &ntDecoder{reader: bufio.NewReader(r), format: format, opts: opts}
}

func (d *ntDecoder) Next() (Quad, error) {
	if d.err != nil {
		return Quad{}, d.err
	}
	for {
		if err := d.opts.Context.Err(); err != nil {
			d.err = err
			return Quad{}, err
		}
		raw, err := d.readLine()
		if err != nil {
			if err != io.EOF {
				d.err = err
			}
			return Quad{}, err
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if d.opts.MaxStatements > 0 && d.count >= d.opts.MaxStatements {
			d.err = d.wrap(line, 0, ErrStatementLimitExceeded)
			return Quad{}, d.err
		}
		quad, err := parseNTLine(line, d.format)
		if err != nil {
			column := 0
			var perr *ParseError
			if errors.As(err, &perr) {
				column = perr.Column
				err = perr.Err
			}
			d.err = d.wrap(line, column, err)
			return Quad{}, d.err
		}
		d.count++
		return quad, nil
	}
}

func (d *ntDecoder) wrap(line string, column int, err error) error {
	perr := &ParseError{Format: d.format, Line: d.line, Column: column, Err: err}
	if d.opts.DebugStatements {
		perr.Statement = line
	}
	return perr
}

func (d *ntDecoder) Err() error { return d.err }

func (d *ntDecoder) Close() error {
	return nil
}

func (d *ntDecoder) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return "", err
	}
	d.line++
	if d.opts.MaxLineBytes > 0 && len(line) > d.opts.MaxLineBytes {
		return "", &ParseError{Format: d.format, Line: d.line, Err: ErrLineTooLong}
	}
	return line, nil
}

func parseNTLine(line string, format Format) (Quad, error) {
	cursor := &ntCursor{input: line}
	subject, err := cursor.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	predicate, err := cursor.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	object, err := cursor.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}

	var graph Term
	cursor.skipWS()
	if cursor.pos < len(cursor.input) && cursor.input[cursor.pos] != '.' {
		if format != FormatNQuads {
			return Quad{}, cursor.errorf("graph term not allowed in N-Triples")
		}
		graph, err = cursor.parseTerm(false)
		if err != nil {
			return Quad{}, err
		}
	}
	if !cursor.consume('.') {
		return Quad{}, cursor.errorf("expected '.' at end of statement")
	}
	cursor.skipWS()
	if cursor.pos < len(cursor.input) && cursor.input[cursor.pos] != '#' {
		return Quad{}, cursor.errorf("unexpected content after '.'")
	}
	return Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

type ntCursor struct {
	input string
	pos   int
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return nil, c.errorf("quoted triples are not supported")
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token")
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	value, err := c.readIRIRef()
	if err != nil {
		return IRI{}, err
	}
	if err := ValidateIRI(value); err != nil {
		return IRI{}, c.errorf("%w", err)
	}
	return IRI{Value: value}, nil
}

// readIRIRef reads <...> at the cursor and decodes its unicode escapes.
func (c *ntCursor) readIRIRef() (string, error) {
	if !c.consume('<') {
		return "", c.errorf("expected IRI")
	}
	var builder strings.Builder
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		if c.input[c.pos] == '\\' {
			r, err := c.parseUnicodeEscape()
			if err != nil {
				return "", err
			}
			builder.WriteRune(r)
			continue
		}
		builder.WriteByte(c.input[c.pos])
		c.pos++
	}
	if c.pos >= len(c.input) {
		return "", c.errorf("unterminated IRI")
	}
	c.pos++
	return builder.String(), nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A label may contain '.' but must not end with it.
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.pos++
	lexical, err := c.readString('"', false)
	if err != nil {
		return Literal{}, err
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "@"):
		lang, err := c.readLangTag()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Lang: lang}, nil
	case strings.HasPrefix(c.input[c.pos:], "^^"):
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

// readString reads the string body after its opening quote and consumes
// the closing quote. A long string ends at three quotes and may span lines.
func (c *ntCursor) readString(quote byte, long bool) (string, error) {
	closing := strings.Repeat(string(quote), 3)
	var builder strings.Builder
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		switch {
		case ch == quote && !long:
			c.pos++
			return builder.String(), nil
		case ch == quote && strings.HasPrefix(c.input[c.pos:], closing):
			c.pos += 3
			return builder.String(), nil
		case ch == '\\':
			if err := c.readEscape(&builder); err != nil {
				return "", err
			}
		case !long && (ch == '\n' || ch == '\r'):
			return "", c.errorf("line break in string")
		default:
			builder.WriteByte(ch)
			c.pos++
		}
	}
	return "", c.errorf("unterminated literal")
}

// readEscape decodes the string escape at the cursor into builder.
func (c *ntCursor) readEscape(builder *strings.Builder) error {
	if c.pos+1 >= len(c.input) {
		return c.errorf("unterminated escape")
	}
	switch next := c.input[c.pos+1]; next {
	case 'u', 'U':
		r, err := c.parseUnicodeEscape()
		if err != nil {
			return err
		}
		builder.WriteRune(r)
		return nil
	case 'n':
		builder.WriteByte('\n')
	case 't':
		builder.WriteByte('\t')
	case 'r':
		builder.WriteByte('\r')
	case 'b':
		builder.WriteByte('\b')
	case 'f':
		builder.WriteByte('\f')
	case '"', '\'', '\\':
		builder.WriteByte(next)
	default:
		return c.errorf("invalid escape \\%c", next)
	}
	c.pos += 2
	return nil
}

// readLangTag reads @tag at the cursor.
func (c *ntCursor) readLangTag() (string, error) {
	c.pos++
	start := c.pos
	for c.pos < len(c.input) && (isAlnum(c.input[c.pos]) || c.input[c.pos] == '-') {
		c.pos++
	}
	if start == c.pos {
		return "", c.errorf("language tag missing")
	}
	return c.input[start:c.pos], nil
}

// parseUnicodeEscape reads \uXXXX or \UXXXXXXXX at the cursor.
func (c *ntCursor) parseUnicodeEscape() (rune, error) {
	if c.pos+1 >= len(c.input) {
		return 0, c.errorf("unterminated escape")
	}
	size := 0
	switch c.input[c.pos+1] {
	case 'u':
		size = 4
	case 'U':
		size = 8
	default:
		return 0, c.errorf("invalid escape \\%c", c.input[c.pos+1])
	}
	start := c.pos + 2
	if start+size > len(c.input) {
		return 0, c.errorf("short unicode escape")
	}
	code, err := strconv.ParseUint(c.input[start:start+size], 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return 0, c.errorf("invalid unicode escape")
	}
	c.pos = start + size
	return rune(code), nil
}

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return &ParseError{Column: c.pos + 1, Err: fmt.Errorf(format, args...)}
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '<', '"':
		return true
	default:
		return false
	}
}

func isAlnum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

type ntEncoder struct {
	writer *bufio.Writer
	format Format
	err    error
}

func newNTEncoder(w io.Writer, format Format) *ntEncoder {
	return &ntEncoder{writer: bufio.NewWriter(w), format: format}
}

func (e *ntEncoder) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return fmt.Errorf("%s: missing statement fields", e.format)
	}
	if q.G != nil && e.format != FormatNQuads {
		return fmt.Errorf("%s: graph term not allowed", e.format)
	}
	line := renderTerm(q.S) + " " + renderIRI(q.P) + " " + renderTerm(q.O)
	if q.G != nil {
		line += " " + renderTerm(q.G)
	}
	line += " .\n"
	if _, err := e.writer.WriteString(line); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *ntEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.writer.Flush()
}

func (e *ntEncoder) Close() error {
	return e.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		quoted := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return quoted + "@" + value.Lang
		}
		if value.Datatype.Value != "" {
			return quoted + "^^" + renderIRI(value.Datatype)
		}
		return quoted
	default:
		return ""
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(value string) string {
	return literalEscaper.Replace(value)
}
